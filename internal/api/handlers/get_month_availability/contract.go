package get_month_availability

import (
	"context"

	"github.com/habitatum/HBT-AppointmentService/internal/service/availability/models"
)

type AvailabilityService interface {
	MonthOverview(ctx context.Context, req *models.MonthRequest) (*models.MonthOverviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
