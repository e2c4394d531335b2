package create_available_day

import (
	"context"

	"github.com/habitatum/HBT-AppointmentService/internal/service/availability/models"
)

type AvailabilityService interface {
	CreateDay(ctx context.Context, req *models.CreateDayRequest) (*models.AvailableDayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
