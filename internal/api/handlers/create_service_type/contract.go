package create_service_type

import (
	"context"

	"github.com/m04kA/HF-AvailabilityService/internal/service/config/models"
)

type ConfigService interface {
	AddServiceType(ctx context.Context, req *models.CreateServiceTypeRequest) (*models.ServiceTypeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
