package create_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/habitatum/HBT-AppointmentService/internal/api/handlers"
	createAppointment "github.com/habitatum/HBT-AppointmentService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidPropertyID  = "identificador de propiedad inválido"
	msgInvalidDate        = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidTime        = "formato de hora inválido, se espera HH:MM"
	msgInvalidData        = "datos de la cita inválidos"
	msgPropertyNotFound   = "propiedad no encontrada"
	msgDateInPast         = "la fecha seleccionada ya pasó"
	msgDayNotConfigured   = "no hay citas disponibles para esa fecha"
	msgDayFull            = "la fecha seleccionada ya no tiene cupo disponible"
	msgInternalError      = "error interno del servidor"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/properties/{propertyId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	propertyID, err := strconv.ParseInt(mux.Vars(r)["propertyId"], 10, 64)
	if err != nil || propertyID <= 0 {
		h.logger.Warn("POST /properties/{propertyId}/appointments - Invalid property id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /properties/%d/appointments - Invalid request body: %v", propertyID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(propertyID)
	if err != nil {
		h.logger.Warn("POST /properties/%d/appointments - Failed to parse request: %v", propertyID, err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /properties/%d/appointments - Invalid data: %v", propertyID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, createAppointment.ErrPropertyNotFound):
			h.logger.Warn("POST /properties/%d/appointments - Property not found", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, createAppointment.ErrDateInPast):
			h.logger.Warn("POST /properties/%d/appointments - Date in past: %s", propertyID, req.VisitDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createAppointment.ErrDayNotConfigured):
			h.logger.Warn("POST /properties/%d/appointments - Day not configured: %s type=%s",
				propertyID, req.VisitDate, req.AppointmentType)
			handlers.RespondError(w, http.StatusConflict, msgDayNotConfigured)

		case errors.Is(err, createAppointment.ErrDayFull):
			h.logger.Warn("POST /properties/%d/appointments - Day full: %s type=%s",
				propertyID, req.VisitDate, req.AppointmentType)
			handlers.RespondError(w, http.StatusConflict, msgDayFull)

		default:
			h.logger.Error("POST /properties/%d/appointments - Internal error: %v", propertyID, err)
			handlers.RespondInternalError(w, msgInternalError)
		}
		return
	}

	h.logger.Info("POST /properties/%d/appointments - Appointment created: id=%d", propertyID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, ToResponse(result))
}
