package create_available_day

import (
	"errors"
	"net/http"

	"github.com/habitatum/HBT-AppointmentService/internal/api/handlers"
	"github.com/habitatum/HBT-AppointmentService/internal/service/availability"
)

const (
	msgInvalidRequestBody   = "cuerpo de la solicitud inválido"
	msgInvalidDate          = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidData          = "datos del día inválidos"
	msgDayAlreadyConfigured = "la fecha ya está configurada para ese tipo de cita"
	msgInternalError        = "error interno del servidor"
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

// Handle POST /api/v1/admin/available-days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAvailableDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/available-days - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /admin/available-days - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.CreateDay(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /admin/available-days - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, availability.ErrDayAlreadyConfigured):
			h.logger.Warn("POST /admin/available-days - Already configured: %s type=%s",
				req.Date, req.AppointmentType)
			handlers.RespondError(w, http.StatusConflict, msgDayAlreadyConfigured)

		default:
			h.logger.Error("POST /admin/available-days - Internal error: %v", err)
			handlers.RespondInternalError(w, msgInternalError)
		}
		return
	}

	h.logger.Info("POST /admin/available-days - Day created: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
