package list_property_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/habitatum/HBT-AppointmentService/internal/api/handlers"
	"github.com/habitatum/HBT-AppointmentService/internal/service/appointments"
)

const (
	msgInvalidPropertyID = "identificador de propiedad inválido"
	msgInternalError     = "error interno del servidor"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/properties/{propertyId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	propertyID, err := strconv.ParseInt(mux.Vars(r)["propertyId"], 10, 64)
	if err != nil || propertyID <= 0 {
		h.logger.Warn("GET /admin/properties/{propertyId}/appointments - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	result, err := h.service.ListByProperty(r.Context(), propertyID)
	if err != nil {
		if errors.Is(err, appointments.ErrInvalidInput) {
			h.logger.Warn("GET /admin/properties/%d/appointments - Invalid id", propertyID)
			handlers.RespondBadRequest(w, msgInvalidPropertyID)
			return
		}
		h.logger.Error("GET /admin/properties/%d/appointments - Internal error: %v", propertyID, err)
		handlers.RespondInternalError(w, msgInternalError)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
