package googlecalendar

// Event colors used in the administrator's calendar: red for priority
// visits, blue for normal ones (matching the legacy calendar setup).
const (
	colorPriority = "11"
	colorNormal   = "9"
)

// eventDateTime start or end of a calendar event
type eventDateTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

// eventAttendee invited participant
type eventAttendee struct {
	Email string `json:"email"`
}

// eventReminderOverride a single reminder rule
type eventReminderOverride struct {
	Method  string `json:"method"`
	Minutes int    `json:"minutes"`
}

// eventReminders reminder configuration of an event
type eventReminders struct {
	UseDefault bool                    `json:"useDefault"`
	Overrides  []eventReminderOverride `json:"overrides"`
}

// eventRequest calendar event creation payload
type eventRequest struct {
	Summary     string          `json:"summary"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
	Start       eventDateTime   `json:"start"`
	End         eventDateTime   `json:"end"`
	Attendees   []eventAttendee `json:"attendees,omitempty"`
	Reminders   eventReminders  `json:"reminders"`
	ColorID     string          `json:"colorId"`
}

// eventResponse created calendar event
type eventResponse struct {
	ID       string `json:"id"`
	HTMLLink string `json:"htmlLink"`
}

// tokenResponse OAuth2 token refresh response
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}
