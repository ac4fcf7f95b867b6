package get_schedule

import (
	"context"

	"github.com/m04kA/HF-AvailabilityService/internal/service/config/models"
)

type ConfigService interface {
	GetSchedule(ctx context.Context) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
