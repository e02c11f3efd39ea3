package models

import "time"

// Trilha de auditoria do agendamento: append-only, nunca atualizada.
// Removida apenas em cascata quando o agendamento é apagado por pedido
// administrativo de exclusão de dados.
type AppointmentHistory struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint        `gorm:"not null;index" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	OldStatus string `gorm:"size:20" json:"old_status"`
	NewStatus string `gorm:"size:20;not null" json:"new_status"`

	ChangedBy string `gorm:"size:20;not null" json:"changed_by"`
	Notes     string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}
