package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-scheduler/internal/dto"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
)

// GetAppointmentByToken devolve o subconjunto seguro para o portador do
// token de cancelamento.
type GetAppointmentByToken struct {
	repo domain.Repository
}

func NewGetAppointmentByToken(repo domain.Repository) *GetAppointmentByToken {
	return &GetAppointmentByToken{repo: repo}
}

func (uc *GetAppointmentByToken) Execute(
	ctx context.Context,
	token string,
) (*dto.PublicAppointmentDTO, error) {

	ap, err := uc.repo.GetAppointmentByToken(ctx, token)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}

	return &dto.PublicAppointmentDTO{
		Date:            ap.Date,
		StartTime:       ap.StartTime,
		Status:          ap.Status,
		ClientName:      ap.ClientName,
		ServiceCategory: ap.ServiceCategory,
		DeclineReason:   ap.DeclineReason,
		CreatedAt:       ap.CreatedAt,
	}, nil
}
