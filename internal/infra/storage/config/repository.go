package config

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/HF-AvailabilityService/internal/domain"
	"github.com/m04kA/HF-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/HF-AvailabilityService/pkg/psqlbuilder"
)

// scheduleRowID id единственной строки расписания
const scheduleRowID = 1

// Repository репозиторий для работы с каталогом услуг и расписанием
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListServiceTypes возвращает каталог услуг, отсортированный по дате создания
func (r *Repository) ListServiceTypes(ctx context.Context) ([]*domain.ServiceType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"duration_minutes",
		"price",
		"created_at",
		"updated_at",
	).
		From("service_types").
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListServiceTypes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServiceTypes - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []*domain.ServiceType
	for rows.Next() {
		var st domain.ServiceType
		if err := rows.Scan(
			&st.ID,
			&st.Name,
			&st.DurationMinutes,
			&st.Price,
			&st.CreatedAt,
			&st.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListServiceTypes - scan service type: %v", ErrScanRow, err)
		}
		result = append(result, &st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServiceTypes - iterate rows: %v", ErrScanRow, err)
	}

	return result, nil
}

// GetServiceType получает услугу по ID
func (r *Repository) GetServiceType(ctx context.Context, id uuid.UUID) (*domain.ServiceType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"duration_minutes",
		"price",
		"created_at",
		"updated_at",
	).
		From("service_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceType - build select query: %v", ErrBuildQuery, err)
	}

	var st domain.ServiceType
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&st.ID,
		&st.Name,
		&st.DurationMinutes,
		&st.Price,
		&st.CreatedAt,
		&st.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrServiceTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceType - scan service type: %v", ErrScanRow, err)
	}

	return &st, nil
}

// CreateServiceType добавляет услугу в каталог
func (r *Repository) CreateServiceType(ctx context.Context, st *domain.ServiceType) (*domain.ServiceType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if st.ID == uuid.Nil {
		st.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("service_types").
		Columns(
			"id",
			"name",
			"duration_minutes",
			"price",
		).
		Values(
			st.ID,
			st.Name,
			st.DurationMinutes,
			st.Price,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateServiceType - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateServiceType - execute insert: %v", ErrExecQuery, err)
	}

	st.CreatedAt = createdAt.Time
	st.UpdatedAt = updatedAt.Time

	return st, nil
}

// DeleteServiceType удаляет услугу из каталога
// Существующие записи сохраняют снимок длительности и цены, поэтому
// удаление услуги не ломает историю
func (r *Repository) DeleteServiceType(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("service_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteServiceType - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteServiceType - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteServiceType - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrServiceTypeNotFound
	}

	return nil
}

// ReplaceServiceTypes заменяет каталог целиком
// Должен вызываться внутри транзакции (txmanager кладет её в контекст),
// чтобы замена была атомарной
func (r *Repository) ReplaceServiceTypes(ctx context.Context, types []*domain.ServiceType) ([]*domain.ServiceType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("service_types").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceServiceTypes - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return nil, fmt.Errorf("%w: ReplaceServiceTypes - execute delete: %v", ErrExecQuery, err)
	}

	if len(types) == 0 {
		return []*domain.ServiceType{}, nil
	}

	insert := psqlbuilder.Insert("service_types").
		Columns("id", "name", "duration_minutes", "price")

	for _, st := range types {
		if st.ID == uuid.Nil {
			st.ID = uuid.New()
		}
		insert = insert.Values(st.ID, st.Name, st.DurationMinutes, st.Price)
	}

	insertQuery, insertArgs, err := insert.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceServiceTypes - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return nil, fmt.Errorf("%w: ReplaceServiceTypes - execute insert: %v", ErrExecQuery, err)
	}

	return types, nil
}

// GetSchedule получает текущее расписание работы
func (r *Repository) GetSchedule(ctx context.Context) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"working_days",
		"open_time",
		"close_time",
		"slot_step_minutes",
		"updated_at",
	).
		From("schedule_config").
		Where(squirrel.Eq{"id": scheduleRowID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - build select query: %v", ErrBuildQuery, err)
	}

	var (
		schedule domain.ScheduleConfig
		days     pq.Int64Array
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&days,
		&schedule.OpenTime,
		&schedule.CloseTime,
		&schedule.SlotStepMinutes,
		&schedule.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - scan schedule: %v", ErrScanRow, err)
	}

	schedule.WorkingDays = int64sToInts(days)

	return &schedule, nil
}

// UpdateSchedule применяет частичное обновление расписания
// nil-поля не меняются
func (r *Repository) UpdateSchedule(ctx context.Context, update domain.ScheduleUpdate) (*domain.ScheduleConfig, error) {
	if update.IsEmpty() {
		return r.GetSchedule(ctx)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update("schedule_config").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": scheduleRowID})

	if update.WorkingDays != nil {
		builder = builder.Set("working_days", pq.Array(intsToInt64s(*update.WorkingDays)))
	}
	if update.OpenTime != nil {
		builder = builder.Set("open_time", *update.OpenTime)
	}
	if update.CloseTime != nil {
		builder = builder.Set("close_time", *update.CloseTime)
	}
	if update.SlotStepMinutes != nil {
		builder = builder.Set("slot_step_minutes", *update.SlotStepMinutes)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateSchedule - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateSchedule - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateSchedule - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return nil, ErrScheduleNotFound
	}

	return r.GetSchedule(ctx)
}

func int64sToInts(in []int64) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(v)
	}
	return out
}

func intsToInt64s(in []int) []int64 {
	out := make([]int64, len(in))
	for i, v := range in {
		out[i] = int64(v)
	}
	return out
}
