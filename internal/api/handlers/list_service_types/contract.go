package list_service_types

import (
	"context"

	"github.com/m04kA/HF-AvailabilityService/internal/service/config/models"
)

type ConfigService interface {
	ListServiceTypes(ctx context.Context) (*models.ServiceTypeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
