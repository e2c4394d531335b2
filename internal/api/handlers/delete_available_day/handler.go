package delete_available_day

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/habitatum/HBT-AppointmentService/internal/api/handlers"
	"github.com/habitatum/HBT-AppointmentService/internal/service/availability"
)

const (
	msgInvalidDayID  = "identificador de día inválido"
	msgDayNotFound   = "día no encontrado"
	msgInternalError = "error interno del servidor"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/available-days/{dayId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["dayId"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("DELETE /admin/available-days/{dayId} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDayID)
		return
	}

	if err := h.service.DeleteDay(r.Context(), id); err != nil {
		if errors.Is(err, availability.ErrDayNotFound) {
			h.logger.Warn("DELETE /admin/available-days/%d - Not found", id)
			handlers.RespondNotFound(w, msgDayNotFound)
			return
		}
		h.logger.Error("DELETE /admin/available-days/%d - Internal error: %v", id, err)
		handlers.RespondInternalError(w, msgInternalError)
		return
	}

	h.logger.Info("DELETE /admin/available-days/%d - Day deleted", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
