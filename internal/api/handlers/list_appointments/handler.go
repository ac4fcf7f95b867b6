package list_appointments

import (
	"net/http"
	"time"

	"github.com/m04kA/HF-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/HF-AvailabilityService/internal/domain"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/appointments
// Query params: date (optional, YYYY-MM-DD) - фильтр по дате
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var date *time.Time

	// Извлекаем опциональный фильтр по дате
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid date format: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = &parsed
	}

	// Вызываем сервис
	result, err := h.service.List(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /appointments - Failed to list appointments: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments - Appointments retrieved: count=%d", len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
