package domain

// Default configuration values
const (
	// DefaultMaxCapacity appointments per day and type when the
	// administrator configures a day without an explicit cap
	DefaultMaxCapacity = 3
)

// Business validation constants
const (
	MinMaxCapacity       = 1
	MaxMaxCapacity       = 50
	MaxAdminNotesLength  = 500
	MaxClientNameLength  = 200
	MinClientPhoneDigits = 10
)

// Visit durations used for the external calendar event
const (
	NormalVisitDurationMinutes   = 45
	PriorityVisitDurationMinutes = 90
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
