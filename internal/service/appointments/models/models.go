package models

import (
	"time"

	"github.com/habitatum/HBT-AppointmentService/internal/domain"
)

// Request models

// ListRequest filter for the administrative appointment listing.
// All fields are optional.
type ListRequest struct {
	PropertyID *int64                  `json:"propertyId,omitempty"`
	StartDate  *time.Time              `json:"startDate,omitempty"`
	EndDate    *time.Time              `json:"endDate,omitempty"`
	Type       *domain.AppointmentType `json:"type,omitempty"`
}

// ToDomainFilter converts the request into the repository filter
func (r *ListRequest) ToDomainFilter() domain.AppointmentsFilter {
	return domain.AppointmentsFilter{
		PropertyID: r.PropertyID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		Type:       r.Type,
	}
}

// Response models

// AppointmentResponse administrative view of one appointment
type AppointmentResponse struct {
	ID           int64  `json:"id"`
	PropertyID   int64  `json:"propertyId"`
	PropertyName string `json:"propertyName,omitempty"`

	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
	ClientPhone string `json:"clientPhone"`

	ScheduledAt     time.Time              `json:"scheduledAt"`
	AppointmentType domain.AppointmentType `json:"appointmentType"`

	MonthlyIncome *float64           `json:"monthlyIncome,omitempty"`
	CreditType    *domain.CreditType `json:"creditType,omitempty"`

	GoogleEventID *string `json:"googleEventId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// AppointmentListResponse list of appointments
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Conversion helpers

// FromDomainAppointment converts the domain model into the DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:              a.ID,
		PropertyID:      a.PropertyID,
		ClientName:      a.ClientName,
		ClientEmail:     a.ClientEmail,
		ClientPhone:     a.ClientPhone,
		ScheduledAt:     a.ScheduledAt,
		AppointmentType: a.AppointmentType,
		MonthlyIncome:   a.MonthlyIncome,
		CreditType:      a.CreditType,
		GoogleEventID:   a.GoogleEventID,
		CreatedAt:       a.CreatedAt,
	}
}
