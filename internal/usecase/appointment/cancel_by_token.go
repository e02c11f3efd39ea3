package appointment

import (
	"context"
	"log"

	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
	"github.com/BruksfildServices01/studio-scheduler/internal/notify"
)

// CancelByToken é o cancelamento iniciado pelo cliente: endereçado pelo
// token de cancelamento, restrito a pending|confirmed → cancelled.
type CancelByToken struct {
	repo       domain.Repository
	queue      notify.Enqueuer
	staffEmail string
}

func NewCancelByToken(
	repo domain.Repository,
	queue notify.Enqueuer,
	staffEmail string,
) *CancelByToken {
	return &CancelByToken{
		repo:       repo,
		queue:      queue,
		staffEmail: staffEmail,
	}
}

func (uc *CancelByToken) Execute(
	ctx context.Context,
	token string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByToken(ctx, token)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}

	switch domain.Status(ap.Status) {
	case domain.StatusCancelled:
		return nil, httperr.ErrBusiness(httperr.CodeAlreadyCancelled)
	case domain.StatusDeclined, domain.StatusCompleted:
		return nil, httperr.ErrBusiness(httperr.CodeCannotCancel)
	}

	if err := uc.repo.UpdateStatusVersioned(
		ctx,
		ap,
		domain.StatusCancelled,
		"",
		domain.ActorClient,
		"cancelado pelo cliente",
	); err != nil {
		return nil, err
	}

	if err := uc.queue.Enqueue(ctx, notify.Task{
		Type:      notify.TypeStaffCancellation,
		Recipient: uc.staffEmail,
		Payload:   bookingPayload(ap),
	}); err != nil {
		log.Println("notify enqueue error:", err)
	}

	return ap, nil
}
