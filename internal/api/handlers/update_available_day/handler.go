package update_available_day

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/habitatum/HBT-AppointmentService/internal/api/handlers"
	"github.com/habitatum/HBT-AppointmentService/internal/service/availability"
	"github.com/habitatum/HBT-AppointmentService/internal/service/availability/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidDayID       = "identificador de día inválido"
	msgInvalidData        = "datos del día inválidos"
	msgDayNotFound        = "día no encontrado"
	msgInternalError      = "error interno del servidor"
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

// Handle PUT /api/v1/admin/available-days/{dayId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["dayId"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("PUT /admin/available-days/{dayId} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDayID)
		return
	}

	var req models.UpdateDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/available-days/%d - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateDay(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("PUT /admin/available-days/%d - Invalid data: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, availability.ErrDayNotFound):
			h.logger.Warn("PUT /admin/available-days/%d - Not found", id)
			handlers.RespondNotFound(w, msgDayNotFound)

		default:
			h.logger.Error("PUT /admin/available-days/%d - Internal error: %v", id, err)
			handlers.RespondInternalError(w, msgInternalError)
		}
		return
	}

	h.logger.Info("PUT /admin/available-days/%d - Day updated", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
