package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitatum/HBT-AppointmentService/internal/domain"
	availabledayRepo "github.com/habitatum/HBT-AppointmentService/internal/infra/storage/availableday"
	propertyRepo "github.com/habitatum/HBT-AppointmentService/internal/infra/storage/property"
	"github.com/habitatum/HBT-AppointmentService/pkg/ptr"
	"github.com/habitatum/HBT-AppointmentService/pkg/types"
)

// Test doubles

type mockApptRepo struct {
	count       int
	countErr    error
	createErr   error
	created     *domain.Appointment
	eventIDSet  *string
	setEventErr error
}

func (m *mockApptRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	appt.ID = 101
	appt.CreatedAt = time.Now()
	m.created = appt
	return appt, nil
}

func (m *mockApptRepo) CountForDay(_ context.Context, _ time.Time, _ domain.AppointmentType) (int, error) {
	return m.count, m.countErr
}

func (m *mockApptRepo) SetGoogleEventID(_ context.Context, _ int64, eventID string) error {
	if m.setEventErr != nil {
		return m.setEventErr
	}
	m.eventIDSet = &eventID
	return nil
}

type mockDayRepo struct {
	day          *domain.AvailableDay
	err          error
	requestedDay time.Time
}

func (m *mockDayRepo) GetByDateAndType(_ context.Context, date time.Time, _ domain.AppointmentType) (*domain.AvailableDay, error) {
	m.requestedDay = date
	if m.err != nil {
		return nil, m.err
	}
	return m.day, nil
}

type mockPropRepo struct {
	prop *domain.Property
	err  error
}

func (m *mockPropRepo) GetByID(_ context.Context, _ int64) (*domain.Property, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.prop, nil
}

type mockCalendar struct {
	eventID string
	err     error
	called  bool
}

func (m *mockCalendar) CreateVisitEvent(_ context.Context, _ *domain.Appointment, _ *domain.Property) (string, error) {
	m.called = true
	return m.eventID, m.err
}

type mockNotifier struct {
	called bool
	err    error
}

func (m *mockNotifier) SendNewAppointmentNotification(_ *domain.Appointment, _ *domain.Property) error {
	m.called = true
	return m.err
}

type mockTxManager struct{}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

// Fixtures

func testTZ(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Mexico_City")
	require.NoError(t, err)
	return loc
}

func visibleProperty() *domain.Property {
	return &domain.Property{
		ID:           7,
		Name:         "Casa en Polanco",
		PropertyType: domain.PropertyCasa,
		IsVisible:    true,
	}
}

func configuredDay(max int) *domain.AvailableDay {
	return &domain.AvailableDay{ID: 1, MaxCapacity: max, AppointmentType: domain.TypeNormal}
}

func validRequest(t *testing.T, loc *time.Location) *Request {
	t.Helper()
	visitTime, err := types.NewTimeStringFromString("10:00")
	require.NoError(t, err)

	return &Request{
		PropertyID:      7,
		ClientName:      "Ana Torres",
		ClientEmail:     "ana@example.com",
		ClientPhone:     "55 1234 5678",
		VisitDate:       time.Now().In(loc).AddDate(0, 0, 7),
		VisitTime:       visitTime,
		AppointmentType: domain.TypeNormal,
	}
}

func newTestUseCase(apptRepo *mockApptRepo, dayRepo *mockDayRepo, propRepo *mockPropRepo, cal *mockCalendar, notif *mockNotifier, loc *time.Location) *UseCase {
	var calendar CalendarClient
	if cal != nil {
		calendar = cal
	}
	var notifier Notifier
	if notif != nil {
		notifier = notif
	}
	return NewUseCase(apptRepo, dayRepo, propRepo, calendar, notifier, &mockTxManager{}, loc, noopLogger{})
}

// Tests

func TestExecute_AdmitsWhenCapacityRemains(t *testing.T) {
	loc := testTZ(t)
	apptRepo := &mockApptRepo{count: 2}
	dayRepo := &mockDayRepo{day: configuredDay(3)}
	propRepo := &mockPropRepo{prop: visibleProperty()}

	uc := newTestUseCase(apptRepo, dayRepo, propRepo, nil, nil, loc)

	resp, err := uc.Execute(context.Background(), validRequest(t, loc))
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, "Casa en Polanco", resp.PropertyName)
	assert.Equal(t, 0, resp.RemainingCapacity, "last slot taken")
	require.NotNil(t, apptRepo.created)
	assert.Equal(t, domain.TypeNormal, apptRepo.created.AppointmentType)
}

func TestExecute_RejectsWhenDayFull(t *testing.T) {
	loc := testTZ(t)
	apptRepo := &mockApptRepo{count: 3}
	dayRepo := &mockDayRepo{day: configuredDay(3)}
	propRepo := &mockPropRepo{prop: visibleProperty()}

	uc := newTestUseCase(apptRepo, dayRepo, propRepo, nil, nil, loc)

	_, err := uc.Execute(context.Background(), validRequest(t, loc))
	require.ErrorIs(t, err, ErrDayFull)
	assert.Contains(t, err.Error(), "3/3")
	assert.Nil(t, apptRepo.created, "nothing persisted on rejection")
}

func TestExecute_RejectsOverbookedDay(t *testing.T) {
	// Booked count above the cap (cap was lowered after bookings) still
	// rejects, never admits
	loc := testTZ(t)
	apptRepo := &mockApptRepo{count: 5}
	dayRepo := &mockDayRepo{day: configuredDay(3)}
	propRepo := &mockPropRepo{prop: visibleProperty()}

	uc := newTestUseCase(apptRepo, dayRepo, propRepo, nil, nil, loc)

	_, err := uc.Execute(context.Background(), validRequest(t, loc))
	require.ErrorIs(t, err, ErrDayFull)
}

func TestExecute_AdmitsAfterCapacityRaised(t *testing.T) {
	loc := testTZ(t)
	apptRepo := &mockApptRepo{count: 3}
	dayRepo := &mockDayRepo{day: configuredDay(5)}
	propRepo := &mockPropRepo{prop: visibleProperty()}

	uc := newTestUseCase(apptRepo, dayRepo, propRepo, nil, nil, loc)

	resp, err := uc.Execute(context.Background(), validRequest(t, loc))
	require.NoError(t, err)
	assert.Equal(t, 1, resp.RemainingCapacity)
}

func TestExecute_RejectsUnconfiguredDay(t *testing.T) {
	loc := testTZ(t)
	apptRepo := &mockApptRepo{}
	dayRepo := &mockDayRepo{err: availabledayRepo.ErrDayNotFound}
	propRepo := &mockPropRepo{prop: visibleProperty()}

	uc := newTestUseCase(apptRepo, dayRepo, propRepo, nil, nil, loc)

	_, err := uc.Execute(context.Background(), validRequest(t, loc))
	require.ErrorIs(t, err, ErrDayNotConfigured)
	assert.NotErrorIs(t, err, ErrDayFull, "unconfigured and full are distinct answers")
}

func TestExecute_RejectsPastDate(t *testing.T) {
	loc := testTZ(t)
	apptRepo := &mockApptRepo{}
	dayRepo := &mockDayRepo{day: configuredDay(3)}
	propRepo := &mockPropRepo{prop: visibleProperty()}

	uc := newTestUseCase(apptRepo, dayRepo, propRepo, nil, nil, loc)

	req := validRequest(t, loc)
	req.VisitDate = time.Now().In(loc).AddDate(0, 0, -2)

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrDateInPast)
}

func TestExecute_AdmitsTodayFromFormDate(t *testing.T) {
	// The HTTP layer parses "YYYY-MM-DD" with time.Parse, which yields
	// midnight UTC. Booking today through that path must neither be
	// rejected as past nor land on the previous business day.
	loc := testTZ(t)
	apptRepo := &mockApptRepo{count: 0}
	dayRepo := &mockDayRepo{day: configuredDay(3)}

	uc := newTestUseCase(apptRepo, dayRepo, &mockPropRepo{prop: visibleProperty()}, nil, nil, loc)
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, time.June, 10, 12, 0, 0, 0, loc)}

	visitDate, err := time.Parse(domain.DateFormat, "2026-06-10")
	require.NoError(t, err)

	req := validRequest(t, loc)
	req.VisitDate = visitDate

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err, "booking today must not be rejected as past")

	assert.Equal(t, time.Date(2026, time.June, 10, 0, 0, 0, 0, loc), dayRepo.requestedDay,
		"capacity lookup must hit the requested day")
	assert.Equal(t, "2026-06-10", resp.ScheduledAt.In(loc).Format(domain.DateFormat))
	require.NotNil(t, apptRepo.created)
	assert.Equal(t, "2026-06-10", apptRepo.created.ScheduledAt.In(loc).Format(domain.DateFormat))
}

func TestExecute_RejectsUnknownProperty(t *testing.T) {
	loc := testTZ(t)
	apptRepo := &mockApptRepo{}
	dayRepo := &mockDayRepo{day: configuredDay(3)}
	propRepo := &mockPropRepo{err: propertyRepo.ErrPropertyNotFound}

	uc := newTestUseCase(apptRepo, dayRepo, propRepo, nil, nil, loc)

	_, err := uc.Execute(context.Background(), validRequest(t, loc))
	require.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestExecute_RejectsHiddenProperty(t *testing.T) {
	loc := testTZ(t)
	hidden := visibleProperty()
	hidden.IsVisible = false

	apptRepo := &mockApptRepo{}
	dayRepo := &mockDayRepo{day: configuredDay(3)}
	propRepo := &mockPropRepo{prop: hidden}

	uc := newTestUseCase(apptRepo, dayRepo, propRepo, nil, nil, loc)

	_, err := uc.Execute(context.Background(), validRequest(t, loc))
	require.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestExecute_PriorityRequiresCreditData(t *testing.T) {
	loc := testTZ(t)
	uc := newTestUseCase(&mockApptRepo{}, &mockDayRepo{day: configuredDay(3)}, &mockPropRepo{prop: visibleProperty()}, nil, nil, loc)

	req := validRequest(t, loc)
	req.AppointmentType = domain.TypePriority

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_PriorityWithCreditDataAdmitted(t *testing.T) {
	loc := testTZ(t)
	apptRepo := &mockApptRepo{count: 0}
	day := configuredDay(3)
	day.AppointmentType = domain.TypePriority

	uc := newTestUseCase(apptRepo, &mockDayRepo{day: day}, &mockPropRepo{prop: visibleProperty()}, nil, nil, loc)

	req := validRequest(t, loc)
	req.AppointmentType = domain.TypePriority
	req.MonthlyIncome = ptr.Ptr(45000.0)
	creditType := domain.CreditInfonavit
	req.CreditType = &creditType

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.MonthlyIncome)
	assert.Equal(t, 45000.0, *resp.MonthlyIncome)
}

func TestExecute_CalendarFailureDoesNotFailBooking(t *testing.T) {
	loc := testTZ(t)
	apptRepo := &mockApptRepo{count: 0}
	cal := &mockCalendar{err: errors.New("calendar down")}
	notif := &mockNotifier{err: errors.New("smtp down")}

	uc := newTestUseCase(apptRepo, &mockDayRepo{day: configuredDay(3)}, &mockPropRepo{prop: visibleProperty()}, cal, notif, loc)

	resp, err := uc.Execute(context.Background(), validRequest(t, loc))
	require.NoError(t, err, "side effect failures never roll back a booking")
	assert.True(t, cal.called)
	assert.True(t, notif.called)
	assert.Nil(t, resp.GoogleEventID)
}

func TestExecute_CalendarEventAttached(t *testing.T) {
	loc := testTZ(t)
	apptRepo := &mockApptRepo{count: 0}
	cal := &mockCalendar{eventID: "evt_abc123"}

	uc := newTestUseCase(apptRepo, &mockDayRepo{day: configuredDay(3)}, &mockPropRepo{prop: visibleProperty()}, cal, nil, loc)

	resp, err := uc.Execute(context.Background(), validRequest(t, loc))
	require.NoError(t, err)
	require.NotNil(t, resp.GoogleEventID)
	assert.Equal(t, "evt_abc123", *resp.GoogleEventID)
	require.NotNil(t, apptRepo.eventIDSet)
	assert.Equal(t, "evt_abc123", *apptRepo.eventIDSet)
}

func TestExecute_ScheduledAtCombinesDateAndTime(t *testing.T) {
	loc := testTZ(t)
	apptRepo := &mockApptRepo{count: 0}

	uc := newTestUseCase(apptRepo, &mockDayRepo{day: configuredDay(3)}, &mockPropRepo{prop: visibleProperty()}, nil, nil, loc)

	req := validRequest(t, loc)
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	scheduled := resp.ScheduledAt.In(loc)
	assert.Equal(t, 10, scheduled.Hour())
	assert.Equal(t, 0, scheduled.Minute())
	assert.True(t, domain.SameDay(scheduled, req.VisitDate.In(loc), loc))
}
