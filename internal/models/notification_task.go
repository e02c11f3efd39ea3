package models

import "time"

// Tarefa de notificação desacoplada da transação que a originou.
// Mutada somente pela varredura periódica; terminal quando sent ou failed.
type NotificationTask struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Type      string `gorm:"size:50;not null" json:"type"`
	Recipient string `gorm:"size:100;not null" json:"recipient"`
	Payload   string `gorm:"type:text" json:"payload"`

	Status string `gorm:"size:20;default:'pending';index" json:"status"`

	Attempts  int    `json:"attempts"`
	LastError string `gorm:"size:500" json:"last_error,omitempty"`

	NextAttemptAt *time.Time `gorm:"index" json:"next_attempt_at,omitempty"`
	SentAt        *time.Time `json:"sent_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
