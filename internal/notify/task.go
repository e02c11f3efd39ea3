package notify

import "context"

// Tipos de notificação disparados pelo ciclo de vida do agendamento.
const (
	TypeClientConfirmation = "client_booking_confirmation"
	TypeClientStatusUpdate = "client_status_update"
	TypeStaffNewBooking    = "staff_new_booking"
	TypeStaffCancellation  = "staff_cancellation"
)

// Status persistidos da tarefa.
const (
	StatusPending = "pending"
	StatusSent    = "sent"
	StatusFailed  = "failed"
)

// Task é o que os usecases enfileiram; o payload vira JSON opaco na tabela.
type Task struct {
	Type      string
	Recipient string
	Payload   map[string]any
}

// Enqueuer é o que o núcleo transacional enxerga da fila: insert síncrono,
// sempre emitido depois do commit do evento que o originou.
type Enqueuer interface {
	Enqueue(ctx context.Context, t Task) error
}
