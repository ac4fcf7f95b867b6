package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/HF-AvailabilityService/internal/domain"
	"github.com/m04kA/HF-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/HF-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с записями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var selectColumns = []string{
	"id",
	"service_type_id",
	"appointment_date",
	"start_time",
	"duration_minutes",
	"service_name",
	"price",
	"created_at",
}

// Create сохраняет новую запись
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Проверка доступности слота и вставка должны идти в одной сериализуемой
// транзакции, иначе возможна гонка между конкурирующими записями.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if appt.ID == uuid.Nil {
		appt.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"id",
			"service_type_id",
			"appointment_date",
			"start_time",
			"duration_minutes",
			"service_name",
			"price",
		).
		Values(
			appt.ID,
			appt.ServiceTypeID,
			appt.Date,
			appt.StartTime,
			appt.DurationMinutes,
			appt.ServiceName,
			appt.Price,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time

	return appt, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// List возвращает все записи, отсортированные по дате и времени начала
func (r *Repository) List(ctx context.Context) ([]*domain.Appointment, error) {
	return r.list(ctx, nil)
}

// ListByDate возвращает записи на указанную дату, отсортированные по времени начала
// Расчёт доступности учитывает ВСЕ записи этой даты независимо от услуги:
// календарь общий, один ресурс
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	return r.list(ctx, &date)
}

func (r *Repository) list(ctx context.Context, date *time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(selectColumns...).
		From("appointments").
		OrderBy("appointment_date ASC, start_time ASC")

	if date != nil {
		builder = builder.Where(squirrel.Eq{"appointment_date": date.Format(domain.DateFormat)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: list - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []*domain.Appointment
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: list - scan appointment: %v", ErrScanRow, err)
		}
		result = append(result, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list - iterate rows: %v", ErrScanRow, err)
	}

	return result, nil
}

// Delete удаляет запись по ID
// Возвращает ErrAppointmentNotFound, если записи нет; идемпотентность отмены
// обеспечивает сервисный слой
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// scanner общий интерфейс *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(s scanner) (*domain.Appointment, error) {
	var (
		appt      domain.Appointment
		createdAt sql.NullTime
	)

	if err := s.Scan(
		&appt.ID,
		&appt.ServiceTypeID,
		&appt.Date,
		&appt.StartTime,
		&appt.DurationMinutes,
		&appt.ServiceName,
		&appt.Price,
		&createdAt,
	); err != nil {
		return nil, err
	}

	appt.CreatedAt = createdAt.Time

	return &appt, nil
}
