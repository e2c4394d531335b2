package models

import (
	"time"

	"github.com/habitatum/HBT-AppointmentService/internal/domain"
)

// Request models

// CreateDayRequest request to open a day for bookings
type CreateDayRequest struct {
	Date            time.Time              `json:"date"`
	AppointmentType domain.AppointmentType `json:"appointmentType"`
	MaxCapacity     int                    `json:"maxCapacity"` // 0 = use the default capacity
	AdminNotes      *string                `json:"adminNotes,omitempty"`
}

// UpdateDayRequest request to adjust a configured day.
// All fields are optional, only provided values are updated.
type UpdateDayRequest struct {
	MaxCapacity *int    `json:"maxCapacity,omitempty"`
	AdminNotes  *string `json:"adminNotes,omitempty"`
}

// MonthRequest request for the per-month availability grid
type MonthRequest struct {
	Year            int                    `json:"year"`
	Month           time.Month             `json:"month"`
	AppointmentType domain.AppointmentType `json:"appointmentType"`
}

// Response models

// DayStatusResponse public availability status of one day for one
// appointment type
type DayStatusResponse struct {
	Date            string                 `json:"date"` // YYYY-MM-DD
	AppointmentType domain.AppointmentType `json:"appointmentType"`

	Configured        bool `json:"configured"`
	MaxCapacity       int  `json:"maxCapacity"`
	BookedCount       int  `json:"bookedCount"`
	RemainingCapacity int  `json:"remainingCapacity"`

	// Available is true only for a configured, non-past day with
	// remaining capacity
	Available bool `json:"available"`
	IsPast    bool `json:"isPast"`
}

// AvailableDayResponse administrative view of a capacity record
type AvailableDayResponse struct {
	ID              int64                  `json:"id"`
	Date            string                 `json:"date"` // YYYY-MM-DD
	AppointmentType domain.AppointmentType `json:"appointmentType"`
	MaxCapacity     int                    `json:"maxCapacity"`
	AdminNotes      *string                `json:"adminNotes,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}

// AvailableDayListResponse list of capacity records
type AvailableDayListResponse struct {
	Days []AvailableDayResponse `json:"days"`
}

// MonthOverviewResponse availability grid for one month
type MonthOverviewResponse struct {
	Year            int                    `json:"year"`
	Month           int                    `json:"month"`
	AppointmentType domain.AppointmentType `json:"appointmentType"`
	Days            []DayStatusResponse    `json:"days"`
}

// Conversion helpers

// FromDomainDay converts the domain model into the admin DTO
func FromDomainDay(d *domain.AvailableDay) *AvailableDayResponse {
	if d == nil {
		return nil
	}

	return &AvailableDayResponse{
		ID:              d.ID,
		Date:            d.Date.Format(domain.DateFormat),
		AppointmentType: d.AppointmentType,
		MaxCapacity:     d.MaxCapacity,
		AdminNotes:      d.AdminNotes,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}
