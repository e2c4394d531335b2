package gcaltoken

import "errors"

var (
	// ErrTokenNotFound is returned when no Google API token is stored
	ErrTokenNotFound = errors.New("gcaltoken.repository: google api token not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("gcaltoken.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("gcaltoken.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("gcaltoken.repository: failed to scan row")
)
