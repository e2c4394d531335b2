package list_property_appointments

import (
	"context"

	"github.com/habitatum/HBT-AppointmentService/internal/service/appointments/models"
)

type AppointmentsService interface {
	ListByProperty(ctx context.Context, propertyID int64) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
