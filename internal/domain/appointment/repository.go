package appointment

import (
	"context"

	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

type Repository interface {
	// -------- Reserva (caminho exclusivo de criação) --------

	// CreateAppointmentExclusive insere o agendamento garantindo, dentro da
	// mesma transação, que nenhum agendamento vivo ocupa o mesmo
	// (data, hora). Em conflito retorna slot_already_booked sem escrita
	// parcial. Também grava a entrada inicial do histórico.
	CreateAppointmentExclusive(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Leitura --------
	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	GetAppointmentByToken(
		ctx context.Context,
		token string,
	) (*models.Appointment, error)

	// -------- Transição de estado --------

	// UpdateStatusVersioned aplica a transição com checagem otimista: o
	// update condiciona na versão lida em ap.Version; zero linhas afetadas
	// vira concurrent_modification. Grava o histórico na mesma transação e,
	// em caso de sucesso, reflete o novo estado em ap.
	UpdateStatusVersioned(
		ctx context.Context,
		ap *models.Appointment,
		to Status,
		declineReason string,
		changedBy Actor,
		notes string,
	) error

	// -------- Disponibilidade (leituras derivadas) --------
	GetScheduleDay(
		ctx context.Context,
		weekday int,
	) (*models.ScheduleDay, error)

	IsDateBlocked(
		ctx context.Context,
		date string,
	) (bool, error)

	ListOccupiedTimes(
		ctx context.Context,
		date string,
	) ([]string, error)

	// -------- Listagens (equipe) --------
	ListAppointmentsForDay(
		ctx context.Context,
		date string,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		startDate string,
		endDate string,
	) ([]models.Appointment, error)
}
