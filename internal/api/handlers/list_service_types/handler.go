package list_service_types

import (
	"net/http"

	"github.com/m04kA/HF-AvailabilityService/internal/api/handlers"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/service-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListServiceTypes(r.Context())
	if err != nil {
		h.logger.Error("GET /service-types - Failed to list service types: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /service-types - Service types retrieved: count=%d", len(result.ServiceTypes))
	handlers.RespondJSON(w, http.StatusOK, result)
}
