package get_property

import (
	"context"

	"github.com/habitatum/HBT-AppointmentService/internal/service/properties/models"
)

type PropertiesService interface {
	GetByID(ctx context.Context, id int64, includeHidden bool) (*models.PropertyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
