package appointment

import (
	"context"

	"github.com/BruksfildServices01/studio-scheduler/internal/dto"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/timezone"
)

// NextAvailableSlot varre as datas em ordem e devolve o primeiro par
// (data, slot mais cedo) dentro do horizonte configurado.
type NextAvailableSlot struct {
	availability *GetAvailability
	tz           string
	horizonDays  int
}

func NewNextAvailableSlot(availability *GetAvailability, tz string, horizonDays int) *NextAvailableSlot {
	return &NextAvailableSlot{
		availability: availability,
		tz:           tz,
		horizonDays:  horizonDays,
	}
}

func (uc *NextAvailableSlot) Execute(ctx context.Context) (*dto.NextSlotDTO, error) {
	today := timezone.NowIn(uc.tz)

	for i := 0; i < uc.horizonDays; i++ {
		dateStr := today.AddDate(0, 0, i).Format(timezone.LayoutDate)

		slots, err := uc.availability.Execute(ctx, dateStr)
		if err != nil {
			return nil, err
		}

		if len(slots) > 0 {
			return &dto.NextSlotDTO{
				Date: dateStr,
				Time: slots[0],
			}, nil
		}
	}

	return nil, httperr.ErrBusiness(httperr.CodeNoSlotsAvailable)
}
