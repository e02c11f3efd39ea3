package httperr

import "errors"

// Códigos de negócio retornados pelo núcleo de agendamento.
const (
	CodeSlotAlreadyBooked      = "slot_already_booked"
	CodeConcurrentModification = "concurrent_modification"
	CodeInvalidTransition      = "invalid_transition"
	CodeMissingDeclineReason   = "missing_decline_reason"
	CodeAlreadyCancelled       = "already_cancelled"
	CodeCannotCancel           = "cannot_cancel"
	CodeAppointmentNotFound    = "appointment_not_found"
	CodeOutsideWorkingHours    = "outside_working_hours"
	CodeInvalidDateOrTime      = "invalid_date_or_time"
	CodeNoSlotsAvailable       = "no_slots_available"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extrai o código de negócio, se houver.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
