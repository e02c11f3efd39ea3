package appointment

import (
	"context"
	"log"
	"time"

	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
	"github.com/BruksfildServices01/studio-scheduler/internal/notify"
	"github.com/BruksfildServices01/studio-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type ReserveSlotInput struct {
	ClientName  string
	ClientPhone string
	ClientEmail string

	ServiceCategory string

	Date string
	Time string

	Notes string
}

// ======================================================
// USE CASE
// ======================================================

// ReserveSlot é o único caminho de mutação que cria uma reserva.
type ReserveSlot struct {
	repo         domain.Repository
	availability *GetAvailability
	queue        notify.Enqueuer
	staffEmail   string
}

func NewReserveSlot(
	repo domain.Repository,
	availability *GetAvailability,
	queue notify.Enqueuer,
	staffEmail string,
) *ReserveSlot {
	return &ReserveSlot{
		repo:         repo,
		availability: availability,
		queue:        queue,
		staffEmail:   staffEmail,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ReserveSlot) Execute(
	ctx context.Context,
	in ReserveSlotInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Data / hora bem formadas
	// --------------------------------------------------
	if _, err := time.Parse(timezone.LayoutDate, in.Date); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDateOrTime)
	}
	if _, err := time.Parse(timezone.LayoutTime, in.Time); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDateOrTime)
	}

	// --------------------------------------------------
	// 2️⃣ Checagem consultiva: grade do dia
	// --------------------------------------------------
	grid, err := uc.availability.DaySlots(ctx, in.Date)
	if err != nil {
		return nil, err
	}
	if !schedule.Contains(grid, in.Time) {
		return nil, httperr.ErrBusiness(httperr.CodeOutsideWorkingHours)
	}

	// --------------------------------------------------
	// 3️⃣ Checagem consultiva: ocupação
	// --------------------------------------------------
	// poupa uma transação quando o slot já está tomado; a checagem
	// autoritativa acontece dentro de CreateAppointmentExclusive
	free, err := uc.availability.Execute(ctx, in.Date)
	if err != nil {
		return nil, err
	}
	if !schedule.Contains(free, in.Time) {
		return nil, httperr.ErrBusiness(httperr.CodeSlotAlreadyBooked)
	}

	// --------------------------------------------------
	// 4️⃣ Criação exclusiva (lock + índice único)
	// --------------------------------------------------
	ap := &models.Appointment{
		ClientName:        in.ClientName,
		ClientPhone:       in.ClientPhone,
		ClientEmail:       in.ClientEmail,
		ServiceCategory:   in.ServiceCategory,
		Date:              in.Date,
		StartTime:         in.Time,
		Status:            string(domain.InitialStatus()),
		CancellationToken: domain.NewCancellationToken(),
		Version:           1,
		Notes:             in.Notes,
	}

	if err := uc.repo.CreateAppointmentExclusive(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Notificações (pós-commit, nunca falham a reserva)
	// --------------------------------------------------
	uc.enqueueBookingNotifications(ctx, ap)

	return ap, nil
}

func (uc *ReserveSlot) enqueueBookingNotifications(ctx context.Context, ap *models.Appointment) {
	payload := bookingPayload(ap)

	if ap.ClientEmail != "" {
		if err := uc.queue.Enqueue(ctx, notify.Task{
			Type:      notify.TypeClientConfirmation,
			Recipient: ap.ClientEmail,
			Payload:   payload,
		}); err != nil {
			log.Println("notify enqueue error:", err)
		}
	}

	if err := uc.queue.Enqueue(ctx, notify.Task{
		Type:      notify.TypeStaffNewBooking,
		Recipient: uc.staffEmail,
		Payload:   payload,
	}); err != nil {
		log.Println("notify enqueue error:", err)
	}
}

func bookingPayload(ap *models.Appointment) map[string]any {
	return map[string]any{
		"appointment_id":   ap.ID,
		"client_name":      ap.ClientName,
		"service_category": ap.ServiceCategory,
		"date":             ap.Date,
		"time":             ap.StartTime,
		"status":           ap.Status,
	}
}
