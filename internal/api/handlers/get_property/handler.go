package get_property

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
	service       PropertiesService
	includeHidden bool
	logger        Logger
}

func NewHandler(service PropertiesService, includeHidden bool, logger Logger) *Handler {
	return &Handler{
		service:       service,
		includeHidden: includeHidden,
		logger:        logger,
	}
}

// Handle GET /api/v1/properties/{propertyId} and the admin variant
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["propertyId"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("GET /properties/{propertyId} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id, h.includeHidden)
	if err != nil {
		if errors.Is(err, properties.ErrPropertyNotFound) {
			h.logger.Warn("GET /properties/%d - Not found", id)
			handlers.RespondNotFound(w, msgPropertyNotFound)
			return
		}
		h.logger.Error("GET /properties/%d - Internal error: %v", id, err)
		handlers.RespondInternalError(w, msgInternalError)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
