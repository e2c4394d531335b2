package create_appointment

import (
	"context"
	"time"

	"github.com/habitatum/HBT-AppointmentService/internal/domain"
)

// AppointmentRepository appointment repository interface
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	CountForDay(ctx context.Context, day time.Time, apptType domain.AppointmentType) (int, error)
	SetGoogleEventID(ctx context.Context, id int64, eventID string) error
}

// AvailableDayRepository day capacity repository interface
type AvailableDayRepository interface {
	GetByDateAndType(ctx context.Context, date time.Time, apptType domain.AppointmentType) (*domain.AvailableDay, error)
}

// PropertyRepository property catalog interface
type PropertyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
}

// CalendarClient external calendar integration interface
type CalendarClient interface {
	CreateVisitEvent(ctx context.Context, appt *domain.Appointment, prop *domain.Property) (string, error)
}

// Notifier admin notification interface
type Notifier interface {
	SendNewAppointmentNotification(appt *domain.Appointment, prop *domain.Property) error
}

// TransactionManager interface for transaction management
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
