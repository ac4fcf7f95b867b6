package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/HF-AvailabilityService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceTypeID uuid.UUID // ID услуги из каталога
	Date          time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа с доступными слотами
// Closed=true означает нерабочий день; Closed=false с пустым Slots -
// рабочий день, в котором не осталось свободных слотов
type Response struct {
	Date            time.Time
	ServiceTypeID   uuid.UUID
	DurationMinutes int
	Closed          bool
	Slots           []Slot
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Длительность услуги в минутах
}
