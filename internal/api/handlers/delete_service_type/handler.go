package delete_service_type

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/HF-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/HF-AvailabilityService/internal/service/config"
)

const (
	msgInvalidServiceTypeID = "некорректный ID услуги"
	msgServiceTypeNotFound  = "услуга не найдена"
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

// Handle DELETE /api/v1/service-types/{serviceTypeId}
// Существующие записи не затрагиваются: они хранят снимок услуги
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем serviceTypeId из URL
	serviceTypeIDStr := vars["serviceTypeId"]
	serviceTypeID, err := uuid.Parse(serviceTypeIDStr)
	if err != nil {
		h.logger.Warn("DELETE /service-types/{id} - Invalid service type ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceTypeID)
		return
	}

	// Вызываем сервис
	if err := h.service.RemoveServiceType(r.Context(), serviceTypeID); err != nil {
		switch {
		case errors.Is(err, config.ErrServiceTypeNotFound):
			h.logger.Warn("DELETE /service-types/{id} - Service type not found: service_type_id=%s", serviceTypeID)
			handlers.RespondNotFound(w, msgServiceTypeNotFound)

		default:
			h.logger.Error("DELETE /service-types/{id} - Failed to delete service type: service_type_id=%s, error=%v",
				serviceTypeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /service-types/{id} - Service type deleted: service_type_id=%s", serviceTypeID)
	handlers.RespondNoContent(w)
}
