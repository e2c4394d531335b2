package availability

import (
	"context"
	"time"

	"github.com/habitatum/HBT-AppointmentService/internal/domain"
)

// AvailableDayRepository day capacity repository interface
type AvailableDayRepository interface {
	Create(ctx context.Context, day *domain.AvailableDay) (*domain.AvailableDay, error)
	GetByID(ctx context.Context, id int64) (*domain.AvailableDay, error)
	GetByDateAndType(ctx context.Context, date time.Time, apptType domain.AppointmentType) (*domain.AvailableDay, error)
	ListByMonth(ctx context.Context, year int, month time.Month, apptType domain.AppointmentType, loc *time.Location) ([]*domain.AvailableDay, error)
	Update(ctx context.Context, day *domain.AvailableDay) error
	Delete(ctx context.Context, id int64) error
}

// AppointmentRepository appointment repository interface
type AppointmentRepository interface {
	CountForDay(ctx context.Context, day time.Time, apptType domain.AppointmentType) (int, error)
	ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// TimeProvider interface for obtaining the current time (for testing)
type TimeProvider interface {
	Now() time.Time
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider production time provider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
