package notify

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

// Queue é o armazenamento das tarefas de notificação sobre o banco
// relacional. Implementa Enqueuer (lado transacional) e TaskStore
// (lado da varredura).
type Queue struct {
	db *gorm.DB
}

func NewQueue(db *gorm.DB) *Queue {
	return &Queue{db: db}
}

// --------------------------------------------------
// Enfileiramento (pós-commit, síncrono)
// --------------------------------------------------

func (q *Queue) Enqueue(ctx context.Context, t Task) error {
	var payload string
	if t.Payload != nil {
		if b, err := json.Marshal(t.Payload); err == nil {
			payload = string(b)
		}
	}

	task := models.NotificationTask{
		Type:      t.Type,
		Recipient: t.Recipient,
		Payload:   payload,
		Status:    StatusPending,
	}

	return q.db.WithContext(ctx).Create(&task).Error
}

// --------------------------------------------------
// Varredura
// --------------------------------------------------

func (q *Queue) FetchDue(ctx context.Context, limit int, now time.Time) ([]models.NotificationTask, error) {
	var tasks []models.NotificationTask
	if err := q.db.WithContext(ctx).
		Where(
			"status = ? AND (next_attempt_at IS NULL OR next_attempt_at <= ?)",
			StatusPending, now,
		).
		Order("created_at ASC").
		Limit(limit).
		Find(&tasks).Error; err != nil {
		return nil, err
	}

	return tasks, nil
}

func (q *Queue) MarkSent(ctx context.Context, id uint, at time.Time) error {
	return q.db.WithContext(ctx).
		Model(&models.NotificationTask{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":  StatusSent,
			"sent_at": at,
		}).Error
}

func (q *Queue) MarkFailure(
	ctx context.Context,
	id uint,
	attempts int,
	lastError string,
	nextAttemptAt *time.Time,
	terminal bool,
) error {

	values := map[string]any{
		"attempts":        attempts,
		"last_error":      lastError,
		"next_attempt_at": nextAttemptAt,
	}
	if terminal {
		values["status"] = StatusFailed
	}

	return q.db.WithContext(ctx).
		Model(&models.NotificationTask{}).
		Where("id = ?", id).
		Updates(values).Error
}

// --------------------------------------------------
// Recuperação operacional
// --------------------------------------------------

// ResetFailed devolve tarefas failed para pending com contador zerado,
// para a próxima varredura recolhê-las.
func (q *Queue) ResetFailed(ctx context.Context) (int64, error) {
	res := q.db.WithContext(ctx).
		Model(&models.NotificationTask{}).
		Where("status = ?", StatusFailed).
		Updates(map[string]any{
			"status":          StatusPending,
			"attempts":        0,
			"last_error":      "",
			"next_attempt_at": nil,
		})

	return res.RowsAffected, res.Error
}

// PurgeOlderThan apaga tarefas terminais criadas antes do corte.
func (q *Queue) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := q.db.WithContext(ctx).
		Where("status IN ? AND created_at < ?", []string{StatusSent, StatusFailed}, cutoff).
		Delete(&models.NotificationTask{})

	return res.RowsAffected, res.Error
}

func (q *Queue) ListByStatus(ctx context.Context, status string, limit int) ([]models.NotificationTask, error) {
	query := q.db.WithContext(ctx).Model(&models.NotificationTask{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var tasks []models.NotificationTask
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Find(&tasks).Error; err != nil {
		return nil, err
	}

	return tasks, nil
}
