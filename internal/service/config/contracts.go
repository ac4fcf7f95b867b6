package config

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/HF-AvailabilityService/internal/domain"
)

// ConfigRepository интерфейс репозитория каталога услуг и расписания
type ConfigRepository interface {
	ListServiceTypes(ctx context.Context) ([]*domain.ServiceType, error)
	GetServiceType(ctx context.Context, id uuid.UUID) (*domain.ServiceType, error)
	CreateServiceType(ctx context.Context, st *domain.ServiceType) (*domain.ServiceType, error)
	DeleteServiceType(ctx context.Context, id uuid.UUID) error
	ReplaceServiceTypes(ctx context.Context, types []*domain.ServiceType) ([]*domain.ServiceType, error)
	GetSchedule(ctx context.Context) (*domain.ScheduleConfig, error)
	UpdateSchedule(ctx context.Context, update domain.ScheduleUpdate) (*domain.ScheduleConfig, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
