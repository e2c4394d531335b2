package list_properties

import (
	"context"

	"github.com/habitatum/HBT-AppointmentService/internal/service/properties/models"
)

type PropertiesService interface {
	List(ctx context.Context, req *models.ListRequest) (*models.PropertyListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
