package config

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/HF-AvailabilityService/internal/domain"
	configRepo "github.com/m04kA/HF-AvailabilityService/internal/infra/storage/config"
	"github.com/m04kA/HF-AvailabilityService/internal/service/config/models"
	"github.com/m04kA/HF-AvailabilityService/pkg/types"
)

// Service сервис конфигурации: каталог услуг и расписание работы
// Единственная точка изменения конфигурации; невалидные услуги отклоняются
// здесь и никогда не доходят до расчёта доступности
type Service struct {
	configRepo ConfigRepository
	txManager  TransactionManager
	logger     Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(
	configRepo ConfigRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		configRepo: configRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// ListServiceTypes возвращает каталог услуг
func (s *Service) ListServiceTypes(ctx context.Context) (*models.ServiceTypeListResponse, error) {
	serviceTypes, err := s.configRepo.ListServiceTypes(ctx)
	if err != nil {
		s.logger.Error("ListServiceTypes: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServiceTypes - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceTypeList(serviceTypes), nil
}

// AddServiceType добавляет услугу в каталог
// Валидация на границе: неположительная длительность или отрицательная цена
// отклоняются целиком, частичное применение невозможно
func (s *Service) AddServiceType(ctx context.Context, req *models.CreateServiceTypeRequest) (*models.ServiceTypeResponse, error) {
	s.logger.Info("AddServiceType: name=%q, duration=%d, price=%.2f", req.Name, req.DurationMinutes, req.Price)

	if err := validateServiceTypeData(req.Name, req.DurationMinutes, req.Price); err != nil {
		s.logger.Warn("AddServiceType: validation failed: %v", err)
		return nil, err
	}

	created, err := s.configRepo.CreateServiceType(ctx, req.ToDomainServiceType())
	if err != nil {
		s.logger.Error("AddServiceType: repository error: %v", err)
		return nil, fmt.Errorf("%w: AddServiceType - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddServiceType: successfully created service type id=%s", created.ID)
	return models.FromDomainServiceType(created), nil
}

// ReplaceServiceTypes заменяет каталог целиком
// Либо принимается весь список, либо отклоняется весь запрос:
// замена выполняется в одной транзакции
func (s *Service) ReplaceServiceTypes(ctx context.Context, req *models.ReplaceServiceTypesRequest) (*models.ServiceTypeListResponse, error) {
	s.logger.Info("ReplaceServiceTypes: replacing catalog with %d service types", len(req.ServiceTypes))

	serviceTypes := make([]*domain.ServiceType, 0, len(req.ServiceTypes))
	for i := range req.ServiceTypes {
		item := &req.ServiceTypes[i]
		if err := validateServiceTypeData(item.Name, item.DurationMinutes, item.Price); err != nil {
			s.logger.Warn("ReplaceServiceTypes: validation failed for item %d: %v", i, err)
			return nil, err
		}
		serviceTypes = append(serviceTypes, item.ToDomainServiceType())
	}

	var replaced []*domain.ServiceType
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var txErr error
		replaced, txErr = s.configRepo.ReplaceServiceTypes(txCtx, serviceTypes)
		return txErr
	})
	if err != nil {
		s.logger.Error("ReplaceServiceTypes: repository error: %v", err)
		return nil, fmt.Errorf("%w: ReplaceServiceTypes - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ReplaceServiceTypes: catalog replaced, %d service types", len(replaced))
	return models.FromDomainServiceTypeList(replaced), nil
}

// RemoveServiceType удаляет услугу из каталога
// Существующие записи не затрагиваются: они хранят снимок длительности и цены
func (s *Service) RemoveServiceType(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("RemoveServiceType: removing service type id=%s", id)

	if err := s.configRepo.DeleteServiceType(ctx, id); err != nil {
		if errors.Is(err, configRepo.ErrServiceTypeNotFound) {
			s.logger.Warn("RemoveServiceType: service type id=%s not found", id)
			return ErrServiceTypeNotFound
		}
		s.logger.Error("RemoveServiceType: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: RemoveServiceType - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RemoveServiceType: successfully removed service type id=%s", id)
	return nil
}

// GetSchedule возвращает текущее расписание работы
func (s *Service) GetSchedule(ctx context.Context) (*models.ScheduleResponse, error) {
	schedule, err := s.configRepo.GetSchedule(ctx)
	if err != nil {
		s.logger.Error("GetSchedule: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(schedule), nil
}

// UpdateSchedule применяет частичное обновление расписания
// openTime >= closeTime намеренно не проверяется: вырожденная конфигурация
// деградирует до "нет свободных слотов", а не до ошибки
func (s *Service) UpdateSchedule(ctx context.Context, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("UpdateSchedule: workingDays=%v, openTime=%v, closeTime=%v, step=%v",
		req.WorkingDays, req.OpenTime, req.CloseTime, req.SlotStepMinutes)

	update, err := buildScheduleUpdate(req)
	if err != nil {
		s.logger.Warn("UpdateSchedule: validation failed: %v", err)
		return nil, err
	}

	schedule, err := s.configRepo.UpdateSchedule(ctx, update)
	if err != nil {
		s.logger.Error("UpdateSchedule: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSchedule: schedule updated")
	return models.FromDomainSchedule(schedule), nil
}

// validateServiceTypeData проверяет данные услуги на границе конфигурации
func validateServiceTypeData(name string, durationMinutes int, price float64) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidServiceType)
	}
	if len(name) > domain.MaxServiceNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidServiceType, domain.MaxServiceNameLength)
	}
	if durationMinutes < domain.MinServiceDurationMinutes || durationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidServiceType, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}
	if price < 0 {
		return fmt.Errorf("%w: price must be non-negative", ErrInvalidServiceType)
	}
	return nil
}

// buildScheduleUpdate валидирует запрос и конвертирует его в domain обновление
func buildScheduleUpdate(req *models.UpdateScheduleRequest) (domain.ScheduleUpdate, error) {
	var update domain.ScheduleUpdate

	if req.WorkingDays != nil {
		days, err := normalizeWorkingDays(*req.WorkingDays)
		if err != nil {
			return update, err
		}
		update.WorkingDays = &days
	}

	if req.OpenTime != nil {
		openTime, err := types.NewTimeStringFromString(*req.OpenTime)
		if err != nil {
			return update, fmt.Errorf("%w: invalid openTime: %v", ErrInvalidSchedule, err)
		}
		update.OpenTime = &openTime
	}

	if req.CloseTime != nil {
		closeTime, err := types.NewTimeStringFromString(*req.CloseTime)
		if err != nil {
			return update, fmt.Errorf("%w: invalid closeTime: %v", ErrInvalidSchedule, err)
		}
		update.CloseTime = &closeTime
	}

	if req.SlotStepMinutes != nil {
		if *req.SlotStepMinutes <= 0 {
			return update, fmt.Errorf("%w: slotStepMinutes must be positive", ErrInvalidSchedule)
		}
		update.SlotStepMinutes = req.SlotStepMinutes
	}

	return update, nil
}

// normalizeWorkingDays валидирует дни недели, убирает дубликаты и сортирует
// Пустой набор допустим: бизнес закрыт во все дни
func normalizeWorkingDays(days []int) ([]int, error) {
	seen := make(map[int]bool, len(days))
	result := make([]int, 0, len(days))

	for _, d := range days {
		if d < domain.MinWeekday || d > domain.MaxWeekday {
			return nil, fmt.Errorf("%w: working day %d is out of range 0-6", ErrInvalidSchedule, d)
		}
		if !seen[d] {
			seen[d] = true
			result = append(result, d)
		}
	}

	sort.Ints(result)
	return result, nil
}
