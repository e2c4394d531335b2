package availability

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("availability: invalid input data")

	// ErrDayNotFound is returned when the capacity record does not exist
	ErrDayNotFound = errors.New("availability: available day not found")

	// ErrDayAlreadyConfigured is returned when a record for the same
	// date and appointment type already exists
	ErrDayAlreadyConfigured = errors.New("availability: day already configured for this appointment type")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("availability: internal error")
)
