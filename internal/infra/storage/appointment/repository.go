package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/habitatum/HBT-AppointmentService/internal/domain"
	"github.com/habitatum/HBT-AppointmentService/pkg/dbmetrics"
	"github.com/habitatum/HBT-AppointmentService/pkg/psqlbuilder"
)

// Repository repository for viewing appointments
type Repository struct {
	db DBExecutor
}

// NewRepository creates an appointment repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new appointment. If the context carries an active
// transaction (the admission usecase runs the capacity count and this
// insert in one serializable transaction), it is used; otherwise the
// query runs directly against the pool.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"property_id",
			"client_name",
			"client_email",
			"client_phone",
			"scheduled_at",
			"appointment_type",
			"monthly_income",
			"credit_type",
		).
		Values(
			appt.PropertyID,
			appt.ClientName,
			appt.ClientEmail,
			appt.ClientPhone,
			appt.ScheduledAt,
			appt.AppointmentType,
			appt.MonthlyIncome,
			appt.CreditType,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time

	return appt, nil
}

// GetByID fetches an appointment by ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectAppointments().
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

// CountForDay counts appointments of the given type whose scheduled_at
// falls on the given calendar day. day must already be normalized to
// midnight in the business timezone; the half-open range [day, day+24h)
// keeps the (scheduled_at, appointment_type) index usable.
func (r *Repository) CountForDay(ctx context.Context, day time.Time, apptType domain.AppointmentType) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	dayEnd := day.AddDate(0, 0, 1)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("appointments").
		Where(squirrel.GtOrEq{"scheduled_at": day}).
		Where(squirrel.Lt{"scheduled_at": dayEnd}).
		Where(squirrel.Eq{"appointment_type": apptType}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountForDay - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountForDay - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// GetByPropertyID lists all appointments booked for a property,
// soonest visit first
func (r *Repository) GetByPropertyID(ctx context.Context, propertyID int64) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectAppointments().
		Where(squirrel.Eq{"property_id": propertyID}).
		OrderBy("scheduled_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPropertyID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPropertyID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// ListWithFilter lists appointments for the administrative calendar.
// Every filter field is optional; results are ordered by visit time.
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectAppointments().OrderBy("scheduled_at ASC")

	if filter.PropertyID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"property_id": *filter.PropertyID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"scheduled_at": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"scheduled_at": filter.EndDate.AddDate(0, 0, 1)})
	}
	if filter.Type != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"appointment_type": *filter.Type})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// SetGoogleEventID attaches the external calendar event id to an appointment
func (r *Repository) SetGoogleEventID(ctx context.Context, id int64, eventID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("google_event_id", eventID).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetGoogleEventID - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetGoogleEventID - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetGoogleEventID - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// Delete removes an appointment, freeing its slot on the day
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
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
		return ErrAppointmentNotFound
	}

	return nil
}

func selectAppointments() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"property_id",
		"client_name",
		"client_email",
		"client_phone",
		"scheduled_at",
		"appointment_type",
		"monthly_income",
		"credit_type",
		"google_event_id",
		"created_at",
	).From("appointments")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.PropertyID,
		&appt.ClientName,
		&appt.ClientEmail,
		&appt.ClientPhone,
		&appt.ScheduledAt,
		&appt.AppointmentType,
		&appt.MonthlyIncome,
		&appt.CreditType,
		&appt.GoogleEventID,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	appt.CreatedAt = createdAt.Time
	return &appt, nil
}

func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
