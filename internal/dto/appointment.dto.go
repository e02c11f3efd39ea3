package dto

import "time"

type AppointmentListDTO struct {
	ID              uint   `json:"id"`
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	Status          string `json:"status"`
	ClientName      string `json:"client_name"`
	ClientPhone     string `json:"client_phone"`
	ServiceCategory string `json:"service_category"`
	Version         int    `json:"version"`
}

// Subconjunto seguro exposto ao portador do token de cancelamento.
type PublicAppointmentDTO struct {
	Date            string    `json:"date"`
	StartTime       string    `json:"start_time"`
	Status          string    `json:"status"`
	ClientName      string    `json:"client_name"`
	ServiceCategory string    `json:"service_category"`
	DeclineReason   string    `json:"decline_reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type DateAvailabilityDTO struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

type NextSlotDTO struct {
	Date string `json:"date"`
	Time string `json:"time"`
}
