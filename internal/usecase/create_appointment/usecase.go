package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HF-AvailabilityService/internal/domain"
	configRepo "github.com/m04kA/HF-AvailabilityService/internal/infra/storage/config"
)

// UseCase use case для создания записи
// Проверка конфликта и вставка идут в одной сериализуемой транзакции:
// список слотов у клиента мог устареть, авторитетна только проверка здесь
type UseCase struct {
	appointmentRepo AppointmentRepository
	configRepo      ConfigRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	configRepo ConfigRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		configRepo:      configRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: serviceType=%s, date=%s, time=%s",
		req.ServiceTypeID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу - её длительность и цена фиксируются в записи
	serviceType, err := uc.configRepo.GetServiceType(ctx, req.ServiceTypeID)
	if err != nil {
		if errors.Is(err, configRepo.ErrServiceTypeNotFound) {
			uc.logger.Warn("CreateAppointment: service type id=%s not found", req.ServiceTypeID)
			return nil, ErrServiceTypeNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service type id=%s: %v", req.ServiceTypeID, err)
		return nil, fmt.Errorf("%w: failed to get service type: %v", ErrInternal, err)
	}

	var result *domain.Appointment

	// 3. Выполняем проверку и вставку в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем расписание
		schedule, err := uc.configRepo.GetSchedule(txCtx)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get schedule: %v", err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}

		// 3.2. Нерабочий день
		if !schedule.WorksOn(req.Date.Weekday()) {
			uc.logger.Warn("CreateAppointment: shop is closed on %s", req.Date.Format(domain.DateFormat))
			return ErrClosedDay
		}

		// 3.3. Слот должен целиком помещаться в рабочее окно
		// Вырожденное окно (open >= close) не помещает ни один слот
		open, close, ok := schedule.Window()
		if !ok {
			uc.logger.Warn("CreateAppointment: degenerate schedule window open=%s close=%s",
				schedule.OpenTime, schedule.CloseTime)
			return ErrOutsideWorkingHours
		}

		start, err := req.StartTime.MinuteOfDay()
		if err != nil {
			return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
		}

		candidate := domain.Interval{Start: start, End: start + serviceType.DurationMinutes}
		if candidate.Start < open || candidate.End > close {
			uc.logger.Warn("CreateAppointment: slot %s+%dm is outside working hours %s-%s",
				req.StartTime, serviceType.DurationMinutes, schedule.OpenTime, schedule.CloseTime)
			return ErrOutsideWorkingHours
		}

		// 3.4. Повторная проверка конфликта по актуальному состоянию календаря
		appointments, err := uc.appointmentRepo.ListByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		if hasOverlap(candidate, appointments) {
			uc.logger.Warn("CreateAppointment: slot %s on %s is no longer free",
				req.StartTime, req.Date.Format(domain.DateFormat))
			return ErrSlotConflict
		}

		// 3.5. Создаем запись со снимком данных услуги
		appt := &domain.Appointment{
			ServiceTypeID:   serviceType.ID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: serviceType.DurationMinutes,
			ServiceName:     serviceType.Name,
			Price:           serviceType.Price,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", result.ID)

	return &Response{
		ID:              result.ID,
		ServiceTypeID:   result.ServiceTypeID,
		Date:            result.Date,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		ServiceName:     result.ServiceName,
		Price:           result.Price,
		CreatedAt:       result.CreatedAt,
	}, nil
}
