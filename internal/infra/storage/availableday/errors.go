package availableday

import "errors"

var (
	// ErrDayNotFound is returned when no record exists for the requested
	// day or (date, type) pair
	ErrDayNotFound = errors.New("availableday.repository: available day not found")

	// ErrDayAlreadyConfigured is returned when a record for the same
	// (date, type) pair already exists
	ErrDayAlreadyConfigured = errors.New("availableday.repository: day already configured for this appointment type")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("availableday.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("availableday.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("availableday.repository: failed to scan row")
)
