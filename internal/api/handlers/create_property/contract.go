package create_property

import (
	"context"

	"github.com/habitatum/HBT-AppointmentService/internal/service/properties/models"
)

type PropertiesService interface {
	Create(ctx context.Context, req *models.CreatePropertyRequest) (*models.PropertyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
