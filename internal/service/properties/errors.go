package properties

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("properties: invalid input data")

	// ErrPropertyNotFound is returned when the property does not exist,
	// or is hidden and the caller is not an administrator
	ErrPropertyNotFound = errors.New("properties: property not found")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("properties: internal error")
)
