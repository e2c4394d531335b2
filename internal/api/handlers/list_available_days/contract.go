package list_available_days

import (
	"context"

	"github.com/habitatum/HBT-AppointmentService/internal/service/availability/models"
)

type AvailabilityService interface {
	ListDays(ctx context.Context, req *models.MonthRequest) (*models.AvailableDayListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
