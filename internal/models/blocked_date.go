package models

import (
	"time"

	"gorm.io/gorm"
)

// Data do calendário excluída de agendamento, independente do expediente semanal.
type BlockedDate struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date   string `gorm:"size:10;not null;index" json:"date"`
	Reason string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
