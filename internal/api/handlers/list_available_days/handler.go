package list_available_days

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/habitatum/HBT-AppointmentService/internal/api/handlers"
	"github.com/habitatum/HBT-AppointmentService/internal/domain"
	"github.com/habitatum/HBT-AppointmentService/internal/service/availability"
	"github.com/habitatum/HBT-AppointmentService/internal/service/availability/models"
)

const (
	msgInvalidYear   = "año inválido"
	msgInvalidMonth  = "mes inválido, se espera un valor entre 1 y 12"
	msgInvalidParams = "parámetros de consulta inválidos"
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

// Handle GET /api/v1/admin/available-days?year=2026&month=3&type=normal
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	year, err := strconv.Atoi(query.Get("year"))
	if err != nil {
		h.logger.Warn("GET /admin/available-days - Invalid year %q: %v", query.Get("year"), err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(query.Get("month"))
	if err != nil || month < 1 || month > 12 {
		h.logger.Warn("GET /admin/available-days - Invalid month %q", query.Get("month"))
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	apptType := domain.AppointmentType(query.Get("type"))
	if apptType == "" {
		apptType = domain.TypeNormal
	}

	result, err := h.service.ListDays(r.Context(), &models.MonthRequest{
		Year:            year,
		Month:           time.Month(month),
		AppointmentType: apptType,
	})
	if err != nil {
		if errors.Is(err, availability.ErrInvalidInput) {
			h.logger.Warn("GET /admin/available-days - Invalid params: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		h.logger.Error("GET /admin/available-days - Internal error: %v", err)
		handlers.RespondInternalError(w, msgInternalError)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
