package list_properties

import (
	"errors"
	"net/http"

	"github.com/habitatum/HBT-AppointmentService/internal/api/handlers"
	"github.com/habitatum/HBT-AppointmentService/internal/domain"
	"github.com/habitatum/HBT-AppointmentService/internal/service/properties"
	"github.com/habitatum/HBT-AppointmentService/internal/service/properties/models"
)

const (
	msgInvalidType   = "tipo de propiedad inválido"
	msgInternalError = "error interno del servidor"
)

type Handler struct {
	service PropertiesService

	// includeHidden is set on the instance mounted under the admin routes
	includeHidden bool

	logger Logger
}

func NewHandler(service PropertiesService, includeHidden bool, logger Logger) *Handler {
	return &Handler{
		service:       service,
		includeHidden: includeHidden,
		logger:        logger,
	}
}

// Handle GET /api/v1/properties and GET /api/v1/admin/properties
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListRequest{IncludeHidden: h.includeHidden}

	if typeParam := r.URL.Query().Get("type"); typeParam != "" {
		propType := domain.PropertyType(typeParam)
		req.Type = &propType
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, properties.ErrInvalidInput) {
			h.logger.Warn("GET /properties - Invalid type %q", r.URL.Query().Get("type"))
			handlers.RespondBadRequest(w, msgInvalidType)
			return
		}
		h.logger.Error("GET /properties - Internal error: %v", err)
		handlers.RespondInternalError(w, msgInternalError)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
