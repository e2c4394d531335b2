package update_property

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/habitatum/HBT-AppointmentService/internal/api/handlers"
	"github.com/habitatum/HBT-AppointmentService/internal/service/properties"
	"github.com/habitatum/HBT-AppointmentService/internal/service/properties/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidPropertyID  = "identificador de propiedad inválido"
	msgInvalidData        = "datos de la propiedad inválidos"
	msgPropertyNotFound   = "propiedad no encontrada"
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

// Handle PUT /api/v1/admin/properties/{propertyId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["propertyId"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("PUT /admin/properties/{propertyId} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	var req models.UpdatePropertyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/properties/%d - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, properties.ErrInvalidInput):
			h.logger.Warn("PUT /admin/properties/%d - Invalid data: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, properties.ErrPropertyNotFound):
			h.logger.Warn("PUT /admin/properties/%d - Not found", id)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		default:
			h.logger.Error("PUT /admin/properties/%d - Internal error: %v", id, err)
			handlers.RespondInternalError(w, msgInternalError)
		}
		return
	}

	h.logger.Info("PUT /admin/properties/%d - Property updated", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
