package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/HF-AvailabilityService/internal/domain"
	createAppointment "github.com/m04kA/HF-AvailabilityService/internal/usecase/create_appointment"
	"github.com/m04kA/HF-AvailabilityService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ServiceTypeID string `json:"serviceTypeId"`
	Date          string `json:"date"`      // "2025-10-15"
	StartTime     string `json:"startTime"` // "10:00"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              string  `json:"id"`
	ServiceTypeID   string  `json:"serviceTypeId"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	ServiceName     string  `json:"serviceName"`
	Price           float64 `json:"price"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	// Парсим ID услуги
	serviceTypeID, err := uuid.Parse(r.ServiceTypeID)
	if err != nil {
		return nil, err
	}

	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		ServiceTypeID: serviceTypeID,
		Date:          date,
		StartTime:     startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID.String(),
		ServiceTypeID:   resp.ServiceTypeID.String(),
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		ServiceName:     resp.ServiceName,
		Price:           resp.Price,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
