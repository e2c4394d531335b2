package domain

import (
	"time"
)

// AppointmentType distinguishes a plain property viewing from a priority
// visit that includes credit advisory
type AppointmentType string

const (
	TypeNormal   AppointmentType = "normal"
	TypePriority AppointmentType = "priority"
)

// Valid reports whether the value is a known appointment type
func (t AppointmentType) Valid() bool {
	return t == TypeNormal || t == TypePriority
}

// CreditType financing option declared by a priority client
type CreditType string

const (
	CreditInfonavit CreditType = "infonavit"
	CreditFovissste CreditType = "fovissste"
	CreditBancario  CreditType = "bancario"
	CreditContado   CreditType = "contado"
)

// Valid reports whether the value is a known credit type
func (c CreditType) Valid() bool {
	switch c {
	case CreditInfonavit, CreditFovissste, CreditBancario, CreditContado:
		return true
	}
	return false
}

// Appointment represents a client's booked property viewing.
// MonthlyIncome and CreditType are set only for priority appointments.
// GoogleEventID is a back-reference to the external calendar event; it is
// the only field mutated after creation.
type Appointment struct {
	ID         int64
	PropertyID int64

	ClientName  string
	ClientEmail string
	ClientPhone string

	ScheduledAt     time.Time
	AppointmentType AppointmentType

	MonthlyIncome *float64
	CreditType    *CreditType

	GoogleEventID *string

	CreatedAt time.Time
}

// IsPriority reports whether the appointment carries credit-advisory data
func (a *Appointment) IsPriority() bool {
	return a.AppointmentType == TypePriority
}

// VisitDurationMinutes returns the visit length used for the calendar event
func (a *Appointment) VisitDurationMinutes() int {
	if a.IsPriority() {
		return PriorityVisitDurationMinutes
	}
	return NormalVisitDurationMinutes
}

// AppointmentsFilter filter for the administrative appointment listing
type AppointmentsFilter struct {
	PropertyID *int64           // nil = all properties
	StartDate  *time.Time       // nil = no lower bound
	EndDate    *time.Time       // nil = no upper bound
	Type       *AppointmentType // nil = both types
}
