package appointments

import (
	"context"

	"github.com/habitatum/HBT-AppointmentService/internal/domain"
)

// AppointmentRepository appointment repository interface
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByPropertyID(ctx context.Context, propertyID int64) ([]*domain.Appointment, error)
	ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	Delete(ctx context.Context, id int64) error
}

// CalendarClient external calendar integration interface
type CalendarClient interface {
	DeleteEvent(ctx context.Context, eventID string) error
}

// PropertyRepository property catalog interface, used to resolve
// property names for the admin listing
type PropertyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
