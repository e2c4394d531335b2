package create_appointment

import (
	"time"

	"github.com/habitatum/HBT-AppointmentService/internal/domain"
	"github.com/habitatum/HBT-AppointmentService/pkg/types"
)

// Request booking request model
type Request struct {
	PropertyID int64 // property the client wants to visit

	ClientName  string
	ClientEmail string
	ClientPhone string

	VisitDate time.Time        // requested day (time portion ignored)
	VisitTime types.TimeString // visit start time, e.g. "10:00"

	AppointmentType domain.AppointmentType

	// Credit advisory data, required for priority appointments and
	// forbidden for normal ones
	MonthlyIncome *float64
	CreditType    *domain.CreditType
}

// Response created appointment model
type Response struct {
	ID           int64
	PropertyID   int64
	PropertyName string

	ClientName  string
	ClientEmail string
	ClientPhone string

	ScheduledAt     time.Time
	AppointmentType domain.AppointmentType

	MonthlyIncome *float64
	CreditType    *domain.CreditType

	GoogleEventID *string

	// RemainingCapacity slots left on the day after this booking
	RemainingCapacity int

	CreatedAt time.Time
}
