package config

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HF-AvailabilityService/internal/domain"
	configRepo "github.com/m04kA/HF-AvailabilityService/internal/infra/storage/config"
	"github.com/m04kA/HF-AvailabilityService/internal/service/config/models"
	"github.com/m04kA/HF-AvailabilityService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// memConfigRepo in-memory репозиторий конфигурации
type memConfigRepo struct {
	serviceTypes []*domain.ServiceType
	schedule     domain.ScheduleConfig
	replaceCalls int
}

func newMemConfigRepo() *memConfigRepo {
	return &memConfigRepo{
		schedule: domain.ScheduleConfig{
			WorkingDays:     []int{1, 2, 3, 4, 5, 6},
			OpenTime:        "09:00",
			CloseTime:       "18:00",
			SlotStepMinutes: 30,
		},
	}
}

func (m *memConfigRepo) ListServiceTypes(ctx context.Context) ([]*domain.ServiceType, error) {
	return m.serviceTypes, nil
}

func (m *memConfigRepo) GetServiceType(ctx context.Context, id uuid.UUID) (*domain.ServiceType, error) {
	for _, st := range m.serviceTypes {
		if st.ID == id {
			return st, nil
		}
	}
	return nil, configRepo.ErrServiceTypeNotFound
}

func (m *memConfigRepo) CreateServiceType(ctx context.Context, st *domain.ServiceType) (*domain.ServiceType, error) {
	created := *st
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	m.serviceTypes = append(m.serviceTypes, &created)
	return &created, nil
}

func (m *memConfigRepo) DeleteServiceType(ctx context.Context, id uuid.UUID) error {
	for i, st := range m.serviceTypes {
		if st.ID == id {
			m.serviceTypes = append(m.serviceTypes[:i], m.serviceTypes[i+1:]...)
			return nil
		}
	}
	return configRepo.ErrServiceTypeNotFound
}

func (m *memConfigRepo) ReplaceServiceTypes(ctx context.Context, types []*domain.ServiceType) ([]*domain.ServiceType, error) {
	m.replaceCalls++
	m.serviceTypes = nil
	for _, st := range types {
		if _, err := m.CreateServiceType(ctx, st); err != nil {
			return nil, err
		}
	}
	return m.serviceTypes, nil
}

func (m *memConfigRepo) GetSchedule(ctx context.Context) (*domain.ScheduleConfig, error) {
	schedule := m.schedule
	return &schedule, nil
}

func (m *memConfigRepo) UpdateSchedule(ctx context.Context, update domain.ScheduleUpdate) (*domain.ScheduleConfig, error) {
	if update.WorkingDays != nil {
		m.schedule.WorkingDays = *update.WorkingDays
	}
	if update.OpenTime != nil {
		m.schedule.OpenTime = *update.OpenTime
	}
	if update.CloseTime != nil {
		m.schedule.CloseTime = *update.CloseTime
	}
	if update.SlotStepMinutes != nil {
		m.schedule.SlotStepMinutes = *update.SlotStepMinutes
	}
	m.schedule.UpdatedAt = time.Now()
	schedule := m.schedule
	return &schedule, nil
}

func newService(repo *memConfigRepo) *Service {
	return NewService(repo, fakeTxManager{}, nopLogger{})
}

func TestAddServiceType(t *testing.T) {
	svc := newService(newMemConfigRepo())

	resp, err := svc.AddServiceType(context.Background(), &models.CreateServiceTypeRequest{
		Name:            "Classic Cut",
		DurationMinutes: 30,
		Price:           25,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Classic Cut", resp.Name)
	assert.Equal(t, 30, resp.DurationMinutes)
}

func TestAddServiceType_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateServiceTypeRequest
	}{
		{name: "empty name", req: models.CreateServiceTypeRequest{Name: "  ", DurationMinutes: 30, Price: 25}},
		{name: "name too long", req: models.CreateServiceTypeRequest{Name: strings.Repeat("x", 201), DurationMinutes: 30, Price: 25}},
		{name: "zero duration", req: models.CreateServiceTypeRequest{Name: "Cut", DurationMinutes: 0, Price: 25}},
		{name: "negative duration", req: models.CreateServiceTypeRequest{Name: "Cut", DurationMinutes: -30, Price: 25}},
		{name: "duration over limit", req: models.CreateServiceTypeRequest{Name: "Cut", DurationMinutes: 481, Price: 25}},
		{name: "negative price", req: models.CreateServiceTypeRequest{Name: "Cut", DurationMinutes: 30, Price: -1}},
	}

	svc := newService(newMemConfigRepo())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddServiceType(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidServiceType)
		})
	}
}

func TestReplaceServiceTypes_AllOrNothing(t *testing.T) {
	repo := newMemConfigRepo()
	svc := newService(repo)

	// Второй элемент невалиден - каталог не должен измениться вообще
	_, err := svc.ReplaceServiceTypes(context.Background(), &models.ReplaceServiceTypesRequest{
		ServiceTypes: []models.CreateServiceTypeRequest{
			{Name: "Classic Cut", DurationMinutes: 30, Price: 25},
			{Name: "Skin Fade", DurationMinutes: 0, Price: 35},
		},
	})
	assert.ErrorIs(t, err, ErrInvalidServiceType)
	assert.Zero(t, repo.replaceCalls)
}

func TestReplaceServiceTypes(t *testing.T) {
	repo := newMemConfigRepo()
	svc := newService(repo)

	resp, err := svc.ReplaceServiceTypes(context.Background(), &models.ReplaceServiceTypesRequest{
		ServiceTypes: []models.CreateServiceTypeRequest{
			{Name: "Classic Cut", DurationMinutes: 30, Price: 25},
			{Name: "Skin Fade", DurationMinutes: 45, Price: 35},
		},
	})
	require.NoError(t, err)

	assert.Len(t, resp.ServiceTypes, 2)
	assert.Equal(t, 1, repo.replaceCalls)
}

func TestRemoveServiceType_NotFound(t *testing.T) {
	svc := newService(newMemConfigRepo())

	err := svc.RemoveServiceType(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrServiceTypeNotFound)
}

func TestUpdateSchedule_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.UpdateScheduleRequest
	}{
		{name: "weekday above range", req: models.UpdateScheduleRequest{WorkingDays: &[]int{1, 7}}},
		{name: "weekday below range", req: models.UpdateScheduleRequest{WorkingDays: &[]int{-1}}},
		{name: "bad open time", req: models.UpdateScheduleRequest{OpenTime: ptr.Ptr("9am")}},
		{name: "bad close time", req: models.UpdateScheduleRequest{CloseTime: ptr.Ptr("24:00")}},
		{name: "non-positive step", req: models.UpdateScheduleRequest{SlotStepMinutes: ptr.Ptr(0)}},
	}

	svc := newService(newMemConfigRepo())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateSchedule(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidSchedule)
		})
	}
}

func TestUpdateSchedule_PartialUpdate(t *testing.T) {
	repo := newMemConfigRepo()
	svc := newService(repo)

	resp, err := svc.UpdateSchedule(context.Background(), &models.UpdateScheduleRequest{
		OpenTime: ptr.Ptr("10:00"),
	})
	require.NoError(t, err)

	// Остальные поля не тронуты
	assert.Equal(t, "10:00", resp.OpenTime)
	assert.Equal(t, "18:00", resp.CloseTime)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, resp.WorkingDays)
}

func TestUpdateSchedule_DeduplicatesAndSortsWorkingDays(t *testing.T) {
	svc := newService(newMemConfigRepo())

	resp, err := svc.UpdateSchedule(context.Background(), &models.UpdateScheduleRequest{
		WorkingDays: &[]int{5, 1, 5, 3},
	})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 3, 5}, resp.WorkingDays)
}

func TestUpdateSchedule_AllowsDegenerateWindow(t *testing.T) {
	svc := newService(newMemConfigRepo())

	// openTime >= closeTime не ошибка: такая конфигурация даёт ноль слотов
	resp, err := svc.UpdateSchedule(context.Background(), &models.UpdateScheduleRequest{
		OpenTime:  ptr.Ptr("18:00"),
		CloseTime: ptr.Ptr("09:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "18:00", resp.OpenTime)
	assert.Equal(t, "09:00", resp.CloseTime)
}

func TestUpdateSchedule_AllowsEmptyWorkingDays(t *testing.T) {
	svc := newService(newMemConfigRepo())

	resp, err := svc.UpdateSchedule(context.Background(), &models.UpdateScheduleRequest{
		WorkingDays: &[]int{},
	})
	require.NoError(t, err)
	assert.Empty(t, resp.WorkingDays)
}
