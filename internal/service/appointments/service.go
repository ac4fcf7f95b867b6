package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/HF-AvailabilityService/internal/domain"
	appointmentRepo "github.com/m04kA/HF-AvailabilityService/internal/infra/storage/appointment"
	"github.com/m04kA/HF-AvailabilityService/internal/service/appointments/models"
	"github.com/m04kA/HF-AvailabilityService/internal/service/calendar"
)

// Service сервис для работы с записями
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.AppointmentResponse, error) {
	appt, err := s.getDomainByID(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	return models.FromDomainAppointment(appt), nil
}

// List возвращает записи, отсортированные по дате и времени начала
// Если указана дата, возвращаются только записи этой даты
func (s *Service) List(ctx context.Context, date *time.Time) (*models.AppointmentListResponse, error) {
	var (
		appointments []*domain.Appointment
		err          error
	)

	if date != nil {
		appointments, err = s.appointmentRepo.ListByDate(ctx, *date)
	} else {
		appointments, err = s.appointmentRepo.List(ctx)
	}
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись, удаляя её из календаря
// Отмена несуществующей записи - no-op, а не ошибка: повторная отмена
// даёт то же наблюдаемое состояние, что и однократная
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Cancel: cancelling appointment id=%s", id)

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Info("Cancel: appointment id=%s not found, treating as no-op", id)
			return nil
		}
		s.logger.Error("Cancel: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%s", id)
	return nil
}

// ExportCalendar собирает iCalendar (.ics) payload для записи
// Возвращает имя файла и содержимое
func (s *Service) ExportCalendar(ctx context.Context, id uuid.UUID) (string, string, error) {
	appt, err := s.getDomainByID(ctx, id, "ExportCalendar")
	if err != nil {
		return "", "", err
	}

	payload, err := calendar.Build(appt, time.Now())
	if err != nil {
		s.logger.Error("ExportCalendar: failed to build ics for appointment id=%s: %v", id, err)
		return "", "", fmt.Errorf("%w: ExportCalendar - build ics: %v", ErrInternal, err)
	}

	return calendar.Filename(appt), payload, nil
}

func (s *Service) getDomainByID(ctx context.Context, id uuid.UUID, op string) (*domain.Appointment, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%s not found", op, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	return appt, nil
}
