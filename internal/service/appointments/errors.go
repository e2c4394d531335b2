package appointments

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("appointments: invalid input data")

	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("appointments: appointment not found")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("appointments: internal error")
)
