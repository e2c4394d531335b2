package properties

import (
	"context"

	"github.com/habitatum/HBT-AppointmentService/internal/domain"
)

// PropertyRepository property catalog repository interface
type PropertyRepository interface {
	Create(ctx context.Context, prop *domain.Property) (*domain.Property, error)
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
	List(ctx context.Context, filter domain.PropertiesFilter) ([]*domain.Property, error)
	Update(ctx context.Context, prop *domain.Property) error
	Delete(ctx context.Context, id int64) error
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
