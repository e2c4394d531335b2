package get_day_availability

import (
	"context"
	"time"

	"github.com/habitatum/HBT-AppointmentService/internal/domain"
	"github.com/habitatum/HBT-AppointmentService/internal/service/availability/models"
)

type AvailabilityService interface {
	DayStatus(ctx context.Context, date time.Time, apptType domain.AppointmentType) (*models.DayStatusResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
