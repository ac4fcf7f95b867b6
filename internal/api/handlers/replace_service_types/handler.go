package replace_service_types

import (
	"errors"
	"net/http"

	"github.com/m04kA/HF-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/HF-AvailabilityService/internal/service/config"
	"github.com/m04kA/HF-AvailabilityService/internal/service/config/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidServiceType = "некорректные данные услуги"
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

// Handle PUT /api/v1/service-types
// Полная замена каталога: применяется весь список или ничего
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ReplaceServiceTypesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /service-types - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем сервис
	result, err := h.service.ReplaceServiceTypes(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, config.ErrInvalidServiceType):
			h.logger.Warn("PUT /service-types - Invalid service type data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidServiceType)

		default:
			h.logger.Error("PUT /service-types - Failed to replace service types: count=%d, error=%v",
				len(req.ServiceTypes), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /service-types - Catalog replaced successfully: count=%d", len(result.ServiceTypes))
	handlers.RespondJSON(w, http.StatusOK, result)
}
