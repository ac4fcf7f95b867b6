package replace_service_types

import (
	"context"

	"github.com/m04kA/HF-AvailabilityService/internal/service/config/models"
)

type ConfigService interface {
	ReplaceServiceTypes(ctx context.Context, req *models.ReplaceServiceTypesRequest) (*models.ServiceTypeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
