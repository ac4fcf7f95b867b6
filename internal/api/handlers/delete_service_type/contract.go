package delete_service_type

import (
	"context"

	"github.com/google/uuid"
)

type ConfigService interface {
	RemoveServiceType(ctx context.Context, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
