package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HF-AvailabilityService/internal/domain"
	configRepo "github.com/m04kA/HF-AvailabilityService/internal/infra/storage/config"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubConfigRepo struct {
	serviceType    *domain.ServiceType
	serviceTypeErr error
	schedule       *domain.ScheduleConfig
}

func (s *stubConfigRepo) GetServiceType(ctx context.Context, id uuid.UUID) (*domain.ServiceType, error) {
	if s.serviceTypeErr != nil {
		return nil, s.serviceTypeErr
	}
	return s.serviceType, nil
}

func (s *stubConfigRepo) GetSchedule(ctx context.Context) (*domain.ScheduleConfig, error) {
	return s.schedule, nil
}

// memAppointmentRepo in-memory репозиторий, хранит созданные записи
type memAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (m *memAppointmentRepo) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	stored := *appt
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	m.appointments = append(m.appointments, &stored)
	return &stored, nil
}

func (m *memAppointmentRepo) ListByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0, len(m.appointments))
	for _, a := range m.appointments {
		if a.IsOnDate(date) {
			result = append(result, a)
		}
	}
	return result, nil
}

func defaultSchedule() *domain.ScheduleConfig {
	return &domain.ScheduleConfig{
		WorkingDays:     []int{1, 2, 3, 4, 5, 6},
		OpenTime:        "09:00",
		CloseTime:       "18:00",
		SlotStepMinutes: 30,
	}
}

// Monday, a working day under the default schedule
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func newUseCase(repo *memAppointmentRepo, serviceType *domain.ServiceType, schedule *domain.ScheduleConfig) *UseCase {
	return NewUseCase(
		repo,
		&stubConfigRepo{serviceType: serviceType, schedule: schedule},
		fakeTxManager{},
		nopLogger{},
	)
}

func TestExecute_CreatesAppointmentWithSnapshot(t *testing.T) {
	serviceType := &domain.ServiceType{
		ID:              uuid.New(),
		Name:            "Skin Fade",
		DurationMinutes: 45,
		Price:           35,
	}
	repo := &memAppointmentRepo{}
	uc := newUseCase(repo, serviceType, defaultSchedule())

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceTypeID: serviceType.ID,
		Date:          monday,
		StartTime:     "10:00",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, serviceType.ID, resp.ServiceTypeID)
	assert.Equal(t, "10:00", resp.StartTime.String())
	// Длительность и цена фиксируются на момент записи
	assert.Equal(t, 45, resp.DurationMinutes)
	assert.Equal(t, "Skin Fade", resp.ServiceName)
	assert.Equal(t, 35.0, resp.Price)

	require.Len(t, repo.appointments, 1)
}

func TestExecute_SecondBookingForSameSlotConflicts(t *testing.T) {
	serviceType := &domain.ServiceType{ID: uuid.New(), Name: "Classic Cut", DurationMinutes: 30, Price: 25}
	repo := &memAppointmentRepo{}
	uc := newUseCase(repo, serviceType, defaultSchedule())

	req := &Request{ServiceTypeID: serviceType.ID, Date: monday, StartTime: "10:00"}

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Повторная проверка по актуальному календарю отклоняет второй запрос
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Len(t, repo.appointments, 1)
}

func TestExecute_OverlapWithDifferentServiceConflicts(t *testing.T) {
	longService := &domain.ServiceType{ID: uuid.New(), Name: "Cut + Beard", DurationMinutes: 60, Price: 45}
	repo := &memAppointmentRepo{}

	_, err := newUseCase(repo, longService, defaultSchedule()).Execute(context.Background(), &Request{
		ServiceTypeID: longService.ID,
		Date:          monday,
		StartTime:     "10:00",
	})
	require.NoError(t, err)

	// Календарь общий: 30-минутная услуга на 10:30 попадает внутрь 10:00-11:00
	shortService := &domain.ServiceType{ID: uuid.New(), Name: "Classic Cut", DurationMinutes: 30, Price: 25}
	_, err = newUseCase(repo, shortService, defaultSchedule()).Execute(context.Background(), &Request{
		ServiceTypeID: shortService.ID,
		Date:          monday,
		StartTime:     "10:30",
	})
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_TouchingAppointmentsDoNotConflict(t *testing.T) {
	serviceType := &domain.ServiceType{ID: uuid.New(), Name: "Classic Cut", DurationMinutes: 30, Price: 25}
	repo := &memAppointmentRepo{}
	uc := newUseCase(repo, serviceType, defaultSchedule())

	_, err := uc.Execute(context.Background(), &Request{ServiceTypeID: serviceType.ID, Date: monday, StartTime: "10:00"})
	require.NoError(t, err)

	// 10:30-11:00 начинается ровно в конце 10:00-10:30
	_, err = uc.Execute(context.Background(), &Request{ServiceTypeID: serviceType.ID, Date: monday, StartTime: "10:30"})
	require.NoError(t, err)
	assert.Len(t, repo.appointments, 2)
}

func TestExecute_ClosedDay(t *testing.T) {
	serviceType := &domain.ServiceType{ID: uuid.New(), Name: "Classic Cut", DurationMinutes: 30, Price: 25}
	uc := newUseCase(&memAppointmentRepo{}, serviceType, defaultSchedule())

	sunday := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{ServiceTypeID: serviceType.ID, Date: sunday, StartTime: "10:00"})
	assert.ErrorIs(t, err, ErrClosedDay)
}

func TestExecute_SlotMustFitInsideWorkingWindow(t *testing.T) {
	serviceType := &domain.ServiceType{ID: uuid.New(), Name: "Cut + Beard", DurationMinutes: 60, Price: 45}
	uc := newUseCase(&memAppointmentRepo{}, serviceType, defaultSchedule())

	// 17:30 + 60 минут выходит за 18:00
	_, err := uc.Execute(context.Background(), &Request{ServiceTypeID: serviceType.ID, Date: monday, StartTime: "17:30"})
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)

	// До открытия
	_, err = uc.Execute(context.Background(), &Request{ServiceTypeID: serviceType.ID, Date: monday, StartTime: "08:00"})
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)
}

func TestExecute_DegenerateWindowRejectsEverything(t *testing.T) {
	serviceType := &domain.ServiceType{ID: uuid.New(), Name: "Classic Cut", DurationMinutes: 30, Price: 25}
	schedule := defaultSchedule()
	schedule.OpenTime = "18:00"
	schedule.CloseTime = "09:00"
	uc := newUseCase(&memAppointmentRepo{}, serviceType, schedule)

	_, err := uc.Execute(context.Background(), &Request{ServiceTypeID: serviceType.ID, Date: monday, StartTime: "10:00"})
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)
}

func TestExecute_ServiceTypeNotFound(t *testing.T) {
	uc := NewUseCase(
		&memAppointmentRepo{},
		&stubConfigRepo{serviceTypeErr: configRepo.ErrServiceTypeNotFound},
		fakeTxManager{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{ServiceTypeID: uuid.New(), Date: monday, StartTime: "10:00"})
	assert.ErrorIs(t, err, ErrServiceTypeNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	serviceType := &domain.ServiceType{ID: uuid.New(), Name: "Classic Cut", DurationMinutes: 30, Price: 25}
	uc := newUseCase(&memAppointmentRepo{}, serviceType, defaultSchedule())

	_, err := uc.Execute(context.Background(), &Request{ServiceTypeID: uuid.Nil, Date: monday, StartTime: "10:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ServiceTypeID: serviceType.ID, Date: monday, StartTime: "25:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
