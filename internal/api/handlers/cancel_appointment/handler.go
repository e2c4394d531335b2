package cancel_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/habitatum/HBT-AppointmentService/internal/api/handlers"
	"github.com/habitatum/HBT-AppointmentService/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "identificador de cita inválido"
	msgAppointmentNotFound  = "cita no encontrada"
	msgInternalError        = "error interno del servidor"
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

// Handle DELETE /api/v1/admin/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("DELETE /admin/appointments/{appointmentId} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	if err := h.service.Cancel(r.Context(), id); err != nil {
		if errors.Is(err, appointments.ErrAppointmentNotFound) {
			h.logger.Warn("DELETE /admin/appointments/%d - Not found", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)
			return
		}
		h.logger.Error("DELETE /admin/appointments/%d - Internal error: %v", id, err)
		handlers.RespondInternalError(w, msgInternalError)
		return
	}

	h.logger.Info("DELETE /admin/appointments/%d - Appointment cancelled", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
