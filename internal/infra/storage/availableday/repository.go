package availableday

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/habitatum/HBT-AppointmentService/internal/domain"
	"github.com/habitatum/HBT-AppointmentService/pkg/dbmetrics"
	"github.com/habitatum/HBT-AppointmentService/pkg/psqlbuilder"
)

// pq error code for unique_violation
const pqUniqueViolation = "23505"

// Repository repository for day capacity configuration.
// The table enforces UNIQUE(date, appointment_type).
type Repository struct {
	db DBExecutor
}

// NewRepository creates an available-day repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new capacity record. A duplicate (date, type) pair
// maps the unique violation to ErrDayAlreadyConfigured.
func (r *Repository) Create(ctx context.Context, day *domain.AvailableDay) (*domain.AvailableDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("available_days").
		Columns(
			"date",
			"appointment_type",
			"max_capacity",
			"admin_notes",
		).
		Values(
			day.Date.Format(domain.DateFormat),
			day.AppointmentType,
			day.MaxCapacity,
			day.AdminNotes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&day.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return nil, ErrDayAlreadyConfigured
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	day.CreatedAt = createdAt.Time
	day.UpdatedAt = updatedAt.Time

	return day, nil
}

// GetByID fetches a capacity record by ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.AvailableDay, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByDateAndType fetches the capacity record for a (date, type) pair.
// The DATE column is matched by its text form so the session timezone
// never shifts the requested day.
func (r *Repository) GetByDateAndType(ctx context.Context, date time.Time, apptType domain.AppointmentType) (*domain.AvailableDay, error) {
	return r.getOne(ctx, "GetByDateAndType", squirrel.Eq{
		"date":             date.Format(domain.DateFormat),
		"appointment_type": apptType,
	})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.AvailableDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectDays().
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	day, err := scanDay(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrDayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan day: %v", ErrScanRow, op, err)
	}

	return day, nil
}

// ListByMonth lists capacity records of one type within a calendar month
func (r *Repository) ListByMonth(ctx context.Context, year int, month time.Month, apptType domain.AppointmentType, loc *time.Location) ([]*domain.AvailableDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	monthEnd := monthStart.AddDate(0, 1, 0)

	query, args, err := selectDays().
		Where(squirrel.GtOrEq{"date": monthStart.Format(domain.DateFormat)}).
		Where(squirrel.Lt{"date": monthEnd.Format(domain.DateFormat)}).
		Where(squirrel.Eq{"appointment_type": apptType}).
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByMonth - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByMonth - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	days := make([]*domain.AvailableDay, 0)
	for rows.Next() {
		day, err := scanDay(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByMonth - scan row: %v", ErrScanRow, err)
		}
		days = append(days, day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByMonth - rows error: %v", ErrScanRow, err)
	}

	return days, nil
}

// Update changes the capacity and notes of an existing record.
// The (date, type) key never changes; the administrator deletes and
// recreates a record to move it.
func (r *Repository) Update(ctx context.Context, day *domain.AvailableDay) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("available_days").
		Set("max_capacity", day.MaxCapacity).
		Set("admin_notes", day.AdminNotes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": day.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDayNotFound
	}

	return nil
}

// Delete removes a capacity record. Existing appointments on that day
// are untouched; the day simply stops accepting new ones.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("available_days").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDayNotFound
	}

	return nil
}

func selectDays() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"date",
		"appointment_type",
		"max_capacity",
		"admin_notes",
		"created_at",
		"updated_at",
	).From("available_days")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDay(row rowScanner) (*domain.AvailableDay, error) {
	var day domain.AvailableDay
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&day.ID,
		&day.Date,
		&day.AppointmentType,
		&day.MaxCapacity,
		&day.AdminNotes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	day.CreatedAt = createdAt.Time
	day.UpdatedAt = updatedAt.Time
	return &day, nil
}
