package appointment

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/timezone"
)

// GetAvailability deriva os slots reserváveis de uma data. Consulta
// consultiva, sem mutação: a exclusão autoritativa acontece na transação
// de reserva.
type GetAvailability struct {
	repo        domain.Repository
	slotMinutes int
}

func NewGetAvailability(repo domain.Repository, slotMinutes int) *GetAvailability {
	return &GetAvailability{
		repo:        repo,
		slotMinutes: slotMinutes,
	}
}

// DaySlots devolve a grade completa do dia: vazia se a data está bloqueada
// ou o dia da semana não é útil.
func (uc *GetAvailability) DaySlots(
	ctx context.Context,
	dateStr string,
) ([]string, error) {

	day, err := time.Parse(timezone.LayoutDate, dateStr)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDateOrTime)
	}

	blocked, err := uc.repo.IsDateBlocked(ctx, dateStr)
	if err != nil {
		return nil, err
	}
	if blocked {
		return []string{}, nil
	}

	sd, err := uc.repo.GetScheduleDay(ctx, int(day.Weekday()))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []string{}, nil
		}
		return nil, err
	}
	if !sd.IsWorkingDay {
		return []string{}, nil
	}

	slots := schedule.GenerateDaySlots(sd.StartTime, sd.EndTime, uc.slotMinutes)
	if slots == nil {
		slots = []string{}
	}
	return slots, nil
}

// Execute devolve a grade do dia menos os horários já ocupados por
// agendamentos vivos.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	dateStr string,
) ([]string, error) {

	grid, err := uc.DaySlots(ctx, dateStr)
	if err != nil {
		return nil, err
	}
	if len(grid) == 0 {
		return grid, nil
	}

	occupied, err := uc.repo.ListOccupiedTimes(ctx, dateStr)
	if err != nil {
		return nil, err
	}

	return schedule.Difference(grid, occupied), nil
}

// IsSlotAvailable testa pertencimento contra os slots livres da data.
func (uc *GetAvailability) IsSlotAvailable(
	ctx context.Context,
	dateStr string,
	timeStr string,
) (bool, error) {

	free, err := uc.Execute(ctx, dateStr)
	if err != nil {
		return false, err
	}
	return schedule.Contains(free, timeStr), nil
}
