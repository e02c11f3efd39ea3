package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientPhone string `gorm:"size:20" json:"client_phone"`
	ClientEmail string `gorm:"size:100" json:"client_email"`

	ServiceCategory string `gorm:"size:50" json:"service_category"`

	Date      string `gorm:"size:10;not null;index:idx_appointments_slot" json:"date"`
	StartTime string `gorm:"size:5;not null;index:idx_appointments_slot" json:"start_time"`

	Status        string `gorm:"size:20;default:'pending'" json:"status"`
	DeclineReason string `gorm:"size:255" json:"decline_reason,omitempty"`

	// capability de portador: quem possui o token pode cancelar
	CancellationToken string `gorm:"size:64;uniqueIndex" json:"-"`

	// versão otimista, incrementada a cada transição aceita
	Version int `gorm:"not null;default:1" json:"version"`

	Notes string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
