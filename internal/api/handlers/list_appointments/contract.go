package list_appointments

import (
	"context"
	"time"

	"github.com/m04kA/HF-AvailabilityService/internal/service/appointments/models"
)

type AppointmentsService interface {
	List(ctx context.Context, date *time.Time) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
