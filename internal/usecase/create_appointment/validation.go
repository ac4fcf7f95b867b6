package create_appointment

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/HF-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceTypeID == uuid.Nil {
		return fmt.Errorf("%w: serviceTypeId is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// hasOverlap проверяет, пересекается ли кандидат хотя бы с одной записью даты
// Используется та же проверка полуоткрытых интервалов, что и при переборе слотов:
// [a,b) и [c,d) пересекаются только при a < d && c < b
func hasOverlap(candidate domain.Interval, appointments []*domain.Appointment) bool {
	for _, appt := range appointments {
		blocked, err := appt.Interval()
		if err != nil {
			// Если не можем вычислить интервал записи, пропускаем её
			continue
		}
		if candidate.Overlaps(blocked) {
			return true
		}
	}
	return false
}
