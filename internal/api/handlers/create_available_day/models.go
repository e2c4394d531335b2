package create_available_day

import (
	"time"

	"github.com/habitatum/HBT-AppointmentService/internal/domain"
	"github.com/habitatum/HBT-AppointmentService/internal/service/availability/models"
)

// CreateAvailableDayRequest HTTP request model
type CreateAvailableDayRequest struct {
	Date            string  `json:"date"` // "2026-03-15"
	AppointmentType string  `json:"appointmentType"`
	MaxCapacity     int     `json:"maxCapacity,omitempty"` // 0 = default
	AdminNotes      *string `json:"adminNotes,omitempty"`
}

// ToServiceRequest converts the HTTP request into the service model,
// parsing the date string
func (r *CreateAvailableDayRequest) ToServiceRequest() (*models.CreateDayRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &models.CreateDayRequest{
		Date:            date,
		AppointmentType: domain.AppointmentType(r.AppointmentType),
		MaxCapacity:     r.MaxCapacity,
		AdminNotes:      r.AdminNotes,
	}, nil
}
