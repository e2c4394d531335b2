package googlecalendar

import "errors"

var (
	// ErrNoToken is returned when no Google API token has been provisioned
	ErrNoToken = errors.New("googlecalendar client: no api token configured")

	// ErrUnauthorized is returned when the access token is rejected even
	// after a refresh attempt
	ErrUnauthorized = errors.New("googlecalendar client: unauthorized")

	// ErrInvalidResponse is returned on an unexpected calendar api response
	ErrInvalidResponse = errors.New("googlecalendar client: invalid response")

	// ErrInternal is returned on internal client errors
	ErrInternal = errors.New("googlecalendar client: internal error")
)
