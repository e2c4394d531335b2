package update_available_day

import (
	"context"

	"github.com/habitatum/HBT-AppointmentService/internal/service/availability/models"
)

type AvailabilityService interface {
	UpdateDay(ctx context.Context, id int64, req *models.UpdateDayRequest) (*models.AvailableDayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
