package mailer

import "errors"

var (
	// ErrSendFailed is returned when the SMTP delivery fails
	ErrSendFailed = errors.New("mailer: failed to send notification email")
)
