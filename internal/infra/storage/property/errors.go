package property

import "errors"

var (
	// ErrPropertyNotFound is returned when the property does not exist
	ErrPropertyNotFound = errors.New("property.repository: property not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("property.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("property.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("property.repository: failed to scan row")
)
