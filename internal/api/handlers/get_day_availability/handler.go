package get_day_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/habitatum/HBT-AppointmentService/internal/api/handlers"
	"github.com/habitatum/HBT-AppointmentService/internal/domain"
	"github.com/habitatum/HBT-AppointmentService/internal/service/availability"
)

const (
	msgInvalidDate   = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidType   = "tipo de cita inválido, se espera normal o priority"
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

// Handle GET /api/v1/availability?date=YYYY-MM-DD&type=normal
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateParam := r.URL.Query().Get("date")
	date, err := time.Parse(domain.DateFormat, dateParam)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date %q: %v", dateParam, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	apptType := domain.AppointmentType(r.URL.Query().Get("type"))
	if apptType == "" {
		apptType = domain.TypeNormal
	}

	status, err := h.service.DayStatus(r.Context(), date, apptType)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidInput) {
			h.logger.Warn("GET /availability - Invalid type %q", apptType)
			handlers.RespondBadRequest(w, msgInvalidType)
			return
		}
		h.logger.Error("GET /availability - Internal error: %v", err)
		handlers.RespondInternalError(w, msgInternalError)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, status)
}
