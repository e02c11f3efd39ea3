package models

import "time"

// Um registro por dia da semana (0 = domingo ... 6 = sábado).
// Cardinalidade fixa: o seed garante exatamente 7 linhas.
type ScheduleDay struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Weekday int `gorm:"uniqueIndex;not null" json:"weekday"`

	IsWorkingDay bool   `json:"is_working_day"`
	StartTime    string `gorm:"size:5" json:"start_time"`
	EndTime      string `gorm:"size:5" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
