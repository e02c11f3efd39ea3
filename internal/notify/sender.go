package notify

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

// Sender é o canal externo de entrega (e-mail/SMS). Injetado na varredura;
// falha de envio fica contida na fila, nunca volta para o agendamento.
type Sender interface {
	Send(task models.NotificationTask) error
}

// SMTPSender entrega por SMTP sem autenticação (Mailpit/MailHog em dev,
// relay interno em produção).
type SMTPSender struct {
	addr string
	from string
}

func NewSMTPSender(host, port, from string) *SMTPSender {
	host = strings.TrimSpace(host)
	port = strings.TrimSpace(port)
	from = strings.TrimSpace(from)
	if from == "" {
		from = "no-reply@studio.local"
	}
	return &SMTPSender{
		addr: fmt.Sprintf("%s:%s", host, port),
		from: from,
	}
}

func (s *SMTPSender) Send(task models.NotificationTask) error {
	msg := buildMessage(s.from, task.Recipient, subjectFor(task.Type), task.Payload)
	return smtp.SendMail(s.addr, nil, s.from, []string{task.Recipient}, []byte(msg))
}

func subjectFor(taskType string) string {
	switch taskType {
	case TypeClientConfirmation:
		return "Recebemos a sua reserva"
	case TypeClientStatusUpdate:
		return "Atualização da sua reserva"
	case TypeStaffNewBooking:
		return "Nova reserva recebida"
	case TypeStaffCancellation:
		return "Reserva cancelada pelo cliente"
	default:
		return "Notificação de agendamento"
	}
}

func buildMessage(from, to, subject, body string) string {
	// Mensagem RFC 5322 mínima; o conteúdo renderizado fica por conta do
	// colaborador de templates, aqui vai o payload bruto.
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from,
		to,
		subject,
		body,
	)
}
