package history

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

// Ledger grava e lê a trilha de transições. Somente append: linhas nunca são
// atualizadas depois de inseridas.
type Ledger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// Append insere a entrada usando o handle recebido, normalmente a transação
// em andamento — o histórico do agendamento entra no mesmo commit que a
// mudança de estado.
func (l *Ledger) Append(
	tx *gorm.DB,
	appointmentID uint,
	oldStatus string,
	newStatus string,
	changedBy string,
	notes string,
) error {

	entry := models.AppointmentHistory{
		AppointmentID: appointmentID,
		OldStatus:     oldStatus,
		NewStatus:     newStatus,
		ChangedBy:     changedBy,
		Notes:         notes,
	}

	return tx.Create(&entry).Error
}

// ListForAppointment devolve a trilha completa em ordem temporal.
func (l *Ledger) ListForAppointment(
	ctx context.Context,
	appointmentID uint,
) ([]models.AppointmentHistory, error) {

	var entries []models.AppointmentHistory
	if err := l.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		Order("created_at ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}
