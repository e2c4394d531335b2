package list_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/habitatum/HBT-AppointmentService/internal/api/handlers"
	"github.com/habitatum/HBT-AppointmentService/internal/domain"
	"github.com/habitatum/HBT-AppointmentService/internal/service/appointments"
	"github.com/habitatum/HBT-AppointmentService/internal/service/appointments/models"
)

const (
	msgInvalidPropertyID = "identificador de propiedad inválido"
	msgInvalidDate       = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidParams     = "parámetros de consulta inválidos"
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

// Handle GET /api/v1/admin/appointments?propertyId=&startDate=&endDate=&type=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListRequest{}

	if v := query.Get("propertyId"); v != "" {
		propertyID, err := strconv.ParseInt(v, 10, 64)
		if err != nil || propertyID <= 0 {
			h.logger.Warn("GET /admin/appointments - Invalid propertyId %q", v)
			handlers.RespondBadRequest(w, msgInvalidPropertyID)
			return
		}
		req.PropertyID = &propertyID
	}

	if v := query.Get("startDate"); v != "" {
		startDate, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			h.logger.Warn("GET /admin/appointments - Invalid startDate %q: %v", v, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &startDate
	}

	if v := query.Get("endDate"); v != "" {
		endDate, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			h.logger.Warn("GET /admin/appointments - Invalid endDate %q: %v", v, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &endDate
	}

	if v := query.Get("type"); v != "" {
		apptType := domain.AppointmentType(v)
		req.Type = &apptType
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, appointments.ErrInvalidInput) {
			h.logger.Warn("GET /admin/appointments - Invalid params: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		h.logger.Error("GET /admin/appointments - Internal error: %v", err)
		handlers.RespondInternalError(w, msgInternalError)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
