package create_appointment

import "errors"

var (
	// ErrInvalidInput is returned on malformed client data
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrPropertyNotFound is returned when the property does not exist
	// or is hidden from the public site
	ErrPropertyNotFound = errors.New("create_appointment: property not found")

	// ErrDateInPast is returned when the requested visit day is before today
	ErrDateInPast = errors.New("create_appointment: date is in the past")

	// ErrDayNotConfigured is returned when the administrator has not opened
	// the requested day for this appointment type. Distinct from ErrDayFull:
	// an unconfigured day was never bookable.
	ErrDayNotConfigured = errors.New("create_appointment: day not configured for this appointment type")

	// ErrDayFull is returned when the day has no remaining capacity.
	// Wrapped with the current booked/max counts for user feedback.
	ErrDayFull = errors.New("create_appointment: day at full capacity")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("create_appointment: internal error")
)
