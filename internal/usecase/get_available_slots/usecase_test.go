package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HF-AvailabilityService/internal/domain"
	configRepo "github.com/m04kA/HF-AvailabilityService/internal/infra/storage/config"
	"github.com/m04kA/HF-AvailabilityService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

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

type stubAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (s *stubAppointmentRepo) ListByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	return s.appointments, nil
}

func defaultSchedule() *domain.ScheduleConfig {
	return &domain.ScheduleConfig{
		WorkingDays:     []int{1, 2, 3, 4, 5, 6},
		OpenTime:        "09:00",
		CloseTime:       "18:00",
		SlotStepMinutes: 30,
	}
}

func appointmentAt(date time.Time, startTime types.TimeString, duration int) *domain.Appointment {
	return &domain.Appointment{
		ID:              uuid.New(),
		ServiceTypeID:   uuid.New(),
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: duration,
	}
}

func startTimes(slots []Slot) []string {
	result := make([]string, len(slots))
	for i, s := range slots {
		result[i] = s.StartTime.String()
	}
	return result
}

// Monday, a working day under the default schedule
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func TestExecute_EmptyCalendarFullGrid(t *testing.T) {
	serviceTypeID := uuid.New()
	uc := NewUseCase(
		&stubAppointmentRepo{},
		&stubConfigRepo{
			serviceType: &domain.ServiceType{ID: serviceTypeID, Name: "Classic Cut", DurationMinutes: 30},
			schedule:    defaultSchedule(),
		},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{ServiceTypeID: serviceTypeID, Date: monday})
	require.NoError(t, err)

	assert.False(t, resp.Closed)
	// 09:00 .. 17:30 каждые 30 минут
	require.Len(t, resp.Slots, 18)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "17:30", resp.Slots[17].StartTime.String())
}

func TestExecute_HourServiceAroundBookedHour(t *testing.T) {
	serviceTypeID := uuid.New()
	uc := NewUseCase(
		&stubAppointmentRepo{
			appointments: []*domain.Appointment{appointmentAt(monday, "10:00", 60)},
		},
		&stubConfigRepo{
			serviceType: &domain.ServiceType{ID: serviceTypeID, Name: "Cut + Beard", DurationMinutes: 60},
			schedule:    defaultSchedule(),
		},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{ServiceTypeID: serviceTypeID, Date: monday})
	require.NoError(t, err)

	times := startTimes(resp.Slots)
	// 09:00-10:00 граничит с занятым 10:00-11:00 и свободен
	assert.Contains(t, times, "09:00")
	// Кандидаты, пересекающие 10:00-11:00, исключены
	assert.NotContains(t, times, "09:30")
	assert.NotContains(t, times, "10:00")
	assert.NotContains(t, times, "10:30")
	// 11:00-12:00 начинается ровно в конце занятого интервала
	assert.Contains(t, times, "11:00")
	// Последнему кандидату должно хватать времени до закрытия
	assert.Equal(t, "17:00", times[len(times)-1])
}

func TestExecute_ShortServiceAroundBookedHour(t *testing.T) {
	serviceTypeID := uuid.New()
	uc := NewUseCase(
		&stubAppointmentRepo{
			appointments: []*domain.Appointment{appointmentAt(monday, "10:00", 60)},
		},
		&stubConfigRepo{
			serviceType: &domain.ServiceType{ID: serviceTypeID, Name: "Classic Cut", DurationMinutes: 30},
			schedule:    defaultSchedule(),
		},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{ServiceTypeID: serviceTypeID, Date: monday})
	require.NoError(t, err)

	times := startTimes(resp.Slots)
	// 09:30-10:00 граничит с занятым интервалом и свободен
	assert.Contains(t, times, "09:30")
	assert.NotContains(t, times, "10:00")
	assert.NotContains(t, times, "10:30")
	assert.Contains(t, times, "11:00")
}

func TestExecute_RemovedAppointmentFreesSlot(t *testing.T) {
	serviceTypeID := uuid.New()
	repo := &stubAppointmentRepo{
		appointments: []*domain.Appointment{appointmentAt(monday, "10:00", 30)},
	}
	uc := NewUseCase(
		repo,
		&stubConfigRepo{
			serviceType: &domain.ServiceType{ID: serviceTypeID, Name: "Classic Cut", DurationMinutes: 30},
			schedule:    defaultSchedule(),
		},
		nopLogger{},
	)

	req := &Request{ServiceTypeID: serviceTypeID, Date: monday}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.NotContains(t, startTimes(resp.Slots), "10:00")

	// После отмены записи слот снова доступен
	repo.appointments = nil

	resp, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Contains(t, startTimes(resp.Slots), "10:00")
}

func TestExecute_ClosedDay(t *testing.T) {
	serviceTypeID := uuid.New()
	uc := NewUseCase(
		&stubAppointmentRepo{},
		&stubConfigRepo{
			serviceType: &domain.ServiceType{ID: serviceTypeID, Name: "Classic Cut", DurationMinutes: 30},
			schedule:    defaultSchedule(),
		},
		nopLogger{},
	)

	sunday := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{ServiceTypeID: serviceTypeID, Date: sunday})
	require.NoError(t, err)

	// Нерабочий день - явное состояние "закрыто", а не пустой список слотов
	assert.True(t, resp.Closed)
	assert.Empty(t, resp.Slots)
}

func TestExecute_DegenerateWindowYieldsNoSlots(t *testing.T) {
	serviceTypeID := uuid.New()
	schedule := defaultSchedule()
	schedule.OpenTime = "18:00"
	schedule.CloseTime = "09:00"

	uc := NewUseCase(
		&stubAppointmentRepo{},
		&stubConfigRepo{
			serviceType: &domain.ServiceType{ID: serviceTypeID, Name: "Classic Cut", DurationMinutes: 30},
			schedule:    schedule,
		},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{ServiceTypeID: serviceTypeID, Date: monday})
	require.NoError(t, err)

	// Открытый день без единого слота, без ошибки
	assert.False(t, resp.Closed)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ServiceLongerThanWindow(t *testing.T) {
	serviceTypeID := uuid.New()
	schedule := defaultSchedule()
	schedule.OpenTime = "09:00"
	schedule.CloseTime = "09:20"

	uc := NewUseCase(
		&stubAppointmentRepo{},
		&stubConfigRepo{
			serviceType: &domain.ServiceType{ID: serviceTypeID, Name: "Classic Cut", DurationMinutes: 30},
			schedule:    schedule,
		},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{ServiceTypeID: serviceTypeID, Date: monday})
	require.NoError(t, err)

	assert.False(t, resp.Closed)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ServiceTypeNotFound(t *testing.T) {
	uc := NewUseCase(
		&stubAppointmentRepo{},
		&stubConfigRepo{serviceTypeErr: configRepo.ErrServiceTypeNotFound},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{ServiceTypeID: uuid.New(), Date: monday})
	assert.ErrorIs(t, err, ErrServiceTypeNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&stubAppointmentRepo{}, &stubConfigRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ServiceTypeID: uuid.Nil, Date: monday})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ServiceTypeID: uuid.New()})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
