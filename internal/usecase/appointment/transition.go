package appointment

import (
	"context"
	"log"

	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
	"github.com/BruksfildServices01/studio-scheduler/internal/notify"
)

// TransitionStatus aplica uma transição do ciclo de vida sobre um
// agendamento existente, com disciplina de versão otimista: a aresta é
// validada antes de qualquer escrita, e o update condiciona na versão lida.
type TransitionStatus struct {
	repo  domain.Repository
	queue notify.Enqueuer
}

func NewTransitionStatus(
	repo domain.Repository,
	queue notify.Enqueuer,
) *TransitionStatus {
	return &TransitionStatus{
		repo:  repo,
		queue: queue,
	}
}

func (uc *TransitionStatus) Execute(
	ctx context.Context,
	appointmentID uint,
	to domain.Status,
	reason string,
	notes string,
	actor domain.Actor,
) (*models.Appointment, error) {

	if !domain.IsValid(to) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}

	if err := domain.ValidateTransition(domain.Status(ap.Status), to, reason); err != nil {
		return nil, err
	}

	declineReason := ""
	if to == domain.StatusDeclined {
		declineReason = reason
	}

	if err := uc.repo.UpdateStatusVersioned(ctx, ap, to, declineReason, actor, notes); err != nil {
		return nil, err
	}

	uc.enqueueTransitionNotification(ctx, ap)

	return ap, nil
}

// Transições decididas pela equipe notificam o cliente; conclusão não gera
// notificação.
func (uc *TransitionStatus) enqueueTransitionNotification(ctx context.Context, ap *models.Appointment) {
	if ap.ClientEmail == "" {
		return
	}

	switch domain.Status(ap.Status) {
	case domain.StatusConfirmed, domain.StatusDeclined, domain.StatusCancelled:
		// segue
	default:
		return
	}

	payload := bookingPayload(ap)
	if ap.DeclineReason != "" {
		payload["decline_reason"] = ap.DeclineReason
	}

	if err := uc.queue.Enqueue(ctx, notify.Task{
		Type:      notify.TypeClientStatusUpdate,
		Recipient: ap.ClientEmail,
		Payload:   payload,
	}); err != nil {
		log.Println("notify enqueue error:", err)
	}
}
