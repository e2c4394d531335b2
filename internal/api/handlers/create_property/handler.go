package create_property

import (
	"errors"
	"net/http"

	"github.com/habitatum/HBT-AppointmentService/internal/api/handlers"
	"github.com/habitatum/HBT-AppointmentService/internal/service/properties"
	"github.com/habitatum/HBT-AppointmentService/internal/service/properties/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidData        = "datos de la propiedad inválidos"
	msgInternalError      = "error interno del servidor"
)

type Handler struct {
	service PropertiesService
	logger  Logger
}

func NewHandler(service PropertiesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/properties
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePropertyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/properties - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, properties.ErrInvalidInput) {
			h.logger.Warn("POST /admin/properties - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)
			return
		}
		h.logger.Error("POST /admin/properties - Internal error: %v", err)
		handlers.RespondInternalError(w, msgInternalError)
		return
	}

	h.logger.Info("POST /admin/properties - Property created: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
