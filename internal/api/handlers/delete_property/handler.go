package delete_property

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/habitatum/HBT-AppointmentService/internal/api/handlers"
	"github.com/habitatum/HBT-AppointmentService/internal/service/properties"
)

const (
	msgInvalidPropertyID = "identificador de propiedad inválido"
	msgPropertyNotFound  = "propiedad no encontrada"
	msgInternalError     = "error interno del servidor"
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

// Handle DELETE /api/v1/admin/properties/{propertyId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["propertyId"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("DELETE /admin/properties/{propertyId} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, properties.ErrPropertyNotFound) {
			h.logger.Warn("DELETE /admin/properties/%d - Not found", id)
			handlers.RespondNotFound(w, msgPropertyNotFound)
			return
		}
		h.logger.Error("DELETE /admin/properties/%d - Internal error: %v", id, err)
		handlers.RespondInternalError(w, msgInternalError)
		return
	}

	h.logger.Info("DELETE /admin/properties/%d - Property deleted", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
