package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-scheduler/internal/history"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db     *gorm.DB
	ledger *history.Ledger
}

func NewAppointmentGormRepository(db *gorm.DB, ledger *history.Ledger) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db, ledger: ledger}
}

// --------------------------------------------------
// Reserva (criação exclusiva)
// --------------------------------------------------

// CreateAppointmentExclusive serializa reservas concorrentes do mesmo slot:
// SELECT ... FOR UPDATE sobre as linhas vivas do (data, hora) dentro da
// transação, e o índice único parcial como retaguarda para a janela em que
// não existe linha para travar.
func (r *AppointmentGormRepository) CreateAppointmentExclusive(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var ids []uint
		if err := tx.Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"date = ? AND start_time = ? AND status IN ?",
				ap.Date, ap.StartTime, domain.LiveStatuses(),
			).
			Pluck("id", &ids).Error; err != nil {
			return err
		}

		if len(ids) > 0 {
			return httperr.ErrBusiness(httperr.CodeSlotAlreadyBooked)
		}

		if err := tx.Create(ap).Error; err != nil {
			if isUniqueViolation(err) {
				return httperr.ErrBusiness(httperr.CodeSlotAlreadyBooked)
			}
			return err
		}

		return r.ledger.Append(
			tx,
			ap.ID,
			"",
			ap.Status,
			string(domain.ActorClient),
			"",
		)
	})
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// --------------------------------------------------
// Leitura
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) GetAppointmentByToken(
	ctx context.Context,
	token string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("cancellation_token = ?", token).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

// --------------------------------------------------
// Transição de estado (versão otimista)
// --------------------------------------------------

func (r *AppointmentGormRepository) UpdateStatusVersioned(
	ctx context.Context,
	ap *models.Appointment,
	to domain.Status,
	declineReason string,
	changedBy domain.Actor,
	notes string,
) error {

	expected := ap.Version
	oldStatus := ap.Status

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		res := tx.Model(&models.Appointment{}).
			Where("id = ? AND version = ?", ap.ID, expected).
			Updates(map[string]any{
				"status":         string(to),
				"decline_reason": declineReason,
				"version":        expected + 1,
			})

		if res.Error != nil {
			return res.Error
		}

		// zero linhas: um escritor concorrente já avançou a versão
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness(httperr.CodeConcurrentModification)
		}

		return r.ledger.Append(
			tx,
			ap.ID,
			oldStatus,
			string(to),
			string(changedBy),
			notes,
		)
	})

	if err != nil {
		return err
	}

	ap.Status = string(to)
	ap.DeclineReason = declineReason
	ap.Version = expected + 1

	return nil
}

// --------------------------------------------------
// Disponibilidade
// --------------------------------------------------

func (r *AppointmentGormRepository) GetScheduleDay(
	ctx context.Context,
	weekday int,
) (*models.ScheduleDay, error) {

	var day models.ScheduleDay
	if err := r.db.WithContext(ctx).
		Where("weekday = ?", weekday).
		First(&day).Error; err != nil {
		return nil, err
	}
	return &day, nil
}

func (r *AppointmentGormRepository) IsDateBlocked(
	ctx context.Context,
	date string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.BlockedDate{}).
		Where("date = ?", date).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AppointmentGormRepository) ListOccupiedTimes(
	ctx context.Context,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("date = ? AND status IN ?", date, domain.LiveStatuses()).
		Order("start_time ASC").
		Pluck("start_time", &times).Error; err != nil {
		return nil, err
	}
	return times, nil
}

// --------------------------------------------------
// Listagens (equipe)
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	startDate string,
	endDate string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", startDate, endDate).
		Order("date ASC, start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
