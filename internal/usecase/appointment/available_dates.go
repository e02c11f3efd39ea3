package appointment

import (
	"context"

	"github.com/BruksfildServices01/studio-scheduler/internal/dto"
	"github.com/BruksfildServices01/studio-scheduler/internal/timezone"
)

// AvailableDates varre a janela [hoje, hoje+dias) e mantém apenas as datas
// com pelo menos um slot livre.
type AvailableDates struct {
	availability *GetAvailability
	tz           string
}

func NewAvailableDates(availability *GetAvailability, tz string) *AvailableDates {
	return &AvailableDates{
		availability: availability,
		tz:           tz,
	}
}

func (uc *AvailableDates) Execute(
	ctx context.Context,
	windowDays int,
) ([]dto.DateAvailabilityDTO, error) {

	today := timezone.NowIn(uc.tz)

	out := make([]dto.DateAvailabilityDTO, 0, windowDays)
	for i := 0; i < windowDays; i++ {
		dateStr := today.AddDate(0, 0, i).Format(timezone.LayoutDate)

		slots, err := uc.availability.Execute(ctx, dateStr)
		if err != nil {
			return nil, err
		}

		if len(slots) > 0 {
			out = append(out, dto.DateAvailabilityDTO{
				Date:  dateStr,
				Slots: slots,
			})
		}
	}

	return out, nil
}
