package create_appointment

import (
	"errors"
	"fmt"
	"time"

	"github.com/habitatum/HBT-AppointmentService/internal/domain"
	createAppointment "github.com/habitatum/HBT-AppointmentService/internal/usecase/create_appointment"
	"github.com/habitatum/HBT-AppointmentService/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid visit date")
	errInvalidTime = errors.New("invalid visit time")
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
	ClientPhone string `json:"clientPhone"`

	VisitDate string `json:"visitDate"` // "2026-03-15"
	VisitTime string `json:"visitTime"` // "10:00"

	AppointmentType string `json:"appointmentType"` // "normal" | "priority"

	MonthlyIncome *float64 `json:"monthlyIncome,omitempty"`
	CreditType    *string  `json:"creditType,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID           int64  `json:"id"`
	PropertyID   int64  `json:"propertyId"`
	PropertyName string `json:"propertyName"`

	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
	ClientPhone string `json:"clientPhone"`

	VisitDate       string `json:"visitDate"`
	VisitTime       string `json:"visitTime"`
	AppointmentType string `json:"appointmentType"`

	MonthlyIncome *float64 `json:"monthlyIncome,omitempty"`
	CreditType    *string  `json:"creditType,omitempty"`

	GoogleEventID *string `json:"googleEventId,omitempty"`

	RemainingCapacity int `json:"remainingCapacity"`

	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model,
// parsing the date and time strings
func (r *CreateAppointmentRequest) ToUseCaseRequest(propertyID int64) (*createAppointment.Request, error) {
	visitDate, err := time.Parse(domain.DateFormat, r.VisitDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	visitTime, err := types.NewTimeStringFromString(r.VisitTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
	}

	var creditType *domain.CreditType
	if r.CreditType != nil {
		ct := domain.CreditType(*r.CreditType)
		creditType = &ct
	}

	return &createAppointment.Request{
		PropertyID:      propertyID,
		ClientName:      r.ClientName,
		ClientEmail:     r.ClientEmail,
		ClientPhone:     r.ClientPhone,
		VisitDate:       visitDate,
		VisitTime:       visitTime,
		AppointmentType: domain.AppointmentType(r.AppointmentType),
		MonthlyIncome:   r.MonthlyIncome,
		CreditType:      creditType,
	}, nil
}

// ToResponse converts the use case result into the HTTP response
func ToResponse(result *createAppointment.Response) *AppointmentResponse {
	var creditType *string
	if result.CreditType != nil {
		ct := string(*result.CreditType)
		creditType = &ct
	}

	return &AppointmentResponse{
		ID:                result.ID,
		PropertyID:        result.PropertyID,
		PropertyName:      result.PropertyName,
		ClientName:        result.ClientName,
		ClientEmail:       result.ClientEmail,
		ClientPhone:       result.ClientPhone,
		VisitDate:         result.ScheduledAt.Format(domain.DateFormat),
		VisitTime:         result.ScheduledAt.Format(domain.TimeFormat),
		AppointmentType:   string(result.AppointmentType),
		MonthlyIncome:     result.MonthlyIncome,
		CreditType:        creditType,
		GoogleEventID:     result.GoogleEventID,
		RemainingCapacity: result.RemainingCapacity,
		CreatedAt:         result.CreatedAt.Format(time.RFC3339),
	}
}
