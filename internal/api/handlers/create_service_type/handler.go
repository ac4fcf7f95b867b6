package create_service_type

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

// Handle POST /api/v1/service-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateServiceTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /service-types - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем сервис
	result, err := h.service.AddServiceType(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, config.ErrInvalidServiceType):
			h.logger.Warn("POST /service-types - Invalid service type data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidServiceType)

		default:
			h.logger.Error("POST /service-types - Failed to create service type: name=%q, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /service-types - Service type created successfully: id=%s, name=%q", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
