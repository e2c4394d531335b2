package update_property

import (
	"context"

	"github.com/habitatum/HBT-AppointmentService/internal/service/properties/models"
)

type PropertiesService interface {
	Update(ctx context.Context, id int64, req *models.UpdatePropertyRequest) (*models.PropertyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
