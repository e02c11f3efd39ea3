package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
)

// Mensagens humanas por código de negócio.
var businessMessages = map[string]string{
	httperr.CodeSlotAlreadyBooked:      "Esse horário acabou de ser reservado.",
	httperr.CodeConcurrentModification: "O agendamento foi alterado por outra operação. Recarregue e tente de novo.",
	httperr.CodeInvalidTransition:      "Transição de status inválida.",
	httperr.CodeMissingDeclineReason:   "Recusar exige um motivo.",
	httperr.CodeAlreadyCancelled:       "Esse agendamento já foi cancelado.",
	httperr.CodeCannotCancel:           "Esse agendamento não pode mais ser cancelado.",
	httperr.CodeAppointmentNotFound:    "Agendamento não encontrado.",
	httperr.CodeOutsideWorkingHours:    "Horário fora do expediente.",
	httperr.CodeInvalidDateOrTime:      "Data ou hora inválida.",
	httperr.CodeNoSlotsAvailable:       "Nenhum horário disponível no período.",
}

// respondBusiness traduz erros de negócio do núcleo para o envelope HTTP.
// Conflitos viram 409, not-found vira 404, o resto de validação vira 400;
// qualquer outra coisa é falha de infraestrutura.
func respondBusiness(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	message := businessMessages[code]
	if message == "" {
		message = "Operação inválida."
	}

	switch code {
	case httperr.CodeSlotAlreadyBooked,
		httperr.CodeConcurrentModification,
		httperr.CodeAlreadyCancelled,
		httperr.CodeCannotCancel:
		httperr.Conflict(c, code, message)

	case httperr.CodeAppointmentNotFound,
		httperr.CodeNoSlotsAvailable:
		httperr.NotFound(c, code, message)

	default:
		httperr.BadRequest(c, code, message)
	}
}
