package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/HF-AvailabilityService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ServiceTypeID uuid.UUID        // ID услуги из каталога
	Date          time.Time        // Дата записи (без времени)
	StartTime     types.TimeString // Время начала слота (например, "10:00")
}

// Response модель ответа с созданной записью
type Response struct {
	ID              uuid.UUID
	ServiceTypeID   uuid.UUID
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int

	// Снимок услуги на момент записи
	ServiceName string
	Price       float64

	CreatedAt time.Time
}
