package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	configRepo "github.com/m04kA/HF-AvailabilityService/internal/infra/storage/config"

	"github.com/m04kA/HF-AvailabilityService/internal/domain"
	"github.com/m04kA/HF-AvailabilityService/pkg/types"
)

// UseCase use case для получения доступных слотов
// Никакого скрытого состояния: расписание, каталог и записи читаются
// на каждый вызов через переданные зависимости
type UseCase struct {
	appointmentRepo AppointmentRepository
	configRepo      ConfigRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	configRepo ConfigRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		configRepo:      configRepo,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Результат носит рекомендательный характер: он может устареть сразу после
// возврата, авторитетна только повторная проверка при создании записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: serviceType=%s, date=%s",
		req.ServiceTypeID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу (неизвестная услуга - явная ошибка, а не пустой результат)
	serviceType, err := uc.configRepo.GetServiceType(ctx, req.ServiceTypeID)
	if err != nil {
		if errors.Is(err, configRepo.ErrServiceTypeNotFound) {
			uc.logger.Warn("GetAvailableSlots: service type id=%s not found", req.ServiceTypeID)
			return nil, ErrServiceTypeNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service type id=%s: %v", req.ServiceTypeID, err)
		return nil, fmt.Errorf("%w: failed to get service type: %v", ErrInternal, err)
	}

	// 3. Получаем расписание работы
	schedule, err := uc.configRepo.GetSchedule(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// 4. Нерабочий день - отдельное состояние "закрыто", а не пустой список
	if !schedule.WorksOn(req.Date.Weekday()) {
		uc.logger.Info("GetAvailableSlots: closed on %s (weekday %d)",
			req.Date.Format(domain.DateFormat), int(req.Date.Weekday()))
		return &Response{
			Date:            req.Date,
			ServiceTypeID:   req.ServiceTypeID,
			DurationMinutes: serviceType.DurationMinutes,
			Closed:          true,
			Slots:           []Slot{},
		}, nil
	}

	// 5. Вырожденное окно (open >= close или нечитаемое время) - открытый день
	// без слотов, молча, без ошибки
	open, close, ok := schedule.Window()
	if !ok {
		uc.logger.Warn("GetAvailableSlots: degenerate schedule window open=%s close=%s, yielding no slots",
			schedule.OpenTime, schedule.CloseTime)
		return &Response{
			Date:            req.Date,
			ServiceTypeID:   req.ServiceTypeID,
			DurationMinutes: serviceType.DurationMinutes,
			Closed:          false,
			Slots:           []Slot{},
		}, nil
	}

	// 6. Получаем все записи на эту дату
	appointments, err := uc.appointmentRepo.ListByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 7. Перебираем кандидатов на сетке и исключаем пересечения
	starts := enumerateSlots(open, close, schedule.Step(), serviceType.DurationMinutes, blockedIntervals(appointments))

	slots := make([]Slot, len(starts))
	for i, start := range starts {
		slots[i] = Slot{
			StartTime:       types.NewTimeStringFromMinutes(start),
			DurationMinutes: serviceType.DurationMinutes,
		}
	}

	uc.logger.Info("GetAvailableSlots: %d slots for serviceType=%s, date=%s",
		len(slots), req.ServiceTypeID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		ServiceTypeID:   req.ServiceTypeID,
		DurationMinutes: serviceType.DurationMinutes,
		Closed:          false,
		Slots:           slots,
	}, nil
}
