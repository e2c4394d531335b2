package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitatum/HBT-AppointmentService/internal/domain"
	availabledayRepo "github.com/habitatum/HBT-AppointmentService/internal/infra/storage/availableday"
	"github.com/habitatum/HBT-AppointmentService/internal/service/availability/models"
	"github.com/habitatum/HBT-AppointmentService/pkg/ptr"
)

type mockDayRepo struct {
	days      map[string]*domain.AvailableDay // keyed by date "YYYY-MM-DD"
	byID      map[int64]*domain.AvailableDay
	monthDays []*domain.AvailableDay
	createErr error
	updated   *domain.AvailableDay
	deleted   []int64
}

func (m *mockDayRepo) Create(_ context.Context, day *domain.AvailableDay) (*domain.AvailableDay, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	day.ID = 1
	return day, nil
}

func (m *mockDayRepo) GetByID(_ context.Context, id int64) (*domain.AvailableDay, error) {
	if d, ok := m.byID[id]; ok {
		return d, nil
	}
	return nil, availabledayRepo.ErrDayNotFound
}

func (m *mockDayRepo) GetByDateAndType(_ context.Context, date time.Time, _ domain.AppointmentType) (*domain.AvailableDay, error) {
	if d, ok := m.days[date.Format(domain.DateFormat)]; ok {
		return d, nil
	}
	return nil, availabledayRepo.ErrDayNotFound
}

func (m *mockDayRepo) ListByMonth(_ context.Context, _ int, _ time.Month, _ domain.AppointmentType, _ *time.Location) ([]*domain.AvailableDay, error) {
	return m.monthDays, nil
}

func (m *mockDayRepo) Update(_ context.Context, day *domain.AvailableDay) error {
	m.updated = day
	m.byID[day.ID] = day
	return nil
}

func (m *mockDayRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.byID[id]; !ok {
		return availabledayRepo.ErrDayNotFound
	}
	m.deleted = append(m.deleted, id)
	return nil
}

type mockApptRepo struct {
	count int
	appts []*domain.Appointment
}

func (m *mockApptRepo) CountForDay(_ context.Context, _ time.Time, _ domain.AppointmentType) (int, error) {
	return m.count, nil
}

func (m *mockApptRepo) ListWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return m.appts, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

func testTZ(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Mexico_City")
	require.NoError(t, err)
	return loc
}

func newTestService(t *testing.T, dayRepo *mockDayRepo, apptRepo *mockApptRepo) *Service {
	t.Helper()
	return NewService(dayRepo, apptRepo, testTZ(t), noopLogger{})
}

func TestDayStatus_Unconfigured(t *testing.T) {
	svc := newTestService(t, &mockDayRepo{}, &mockApptRepo{})

	date := time.Now().AddDate(0, 0, 7)
	status, err := svc.DayStatus(context.Background(), date, domain.TypeNormal)
	require.NoError(t, err, "an unconfigured day is an answer, not an error")

	assert.False(t, status.Configured)
	assert.False(t, status.Available)
	assert.Equal(t, 0, status.MaxCapacity)
	assert.Equal(t, 0, status.RemainingCapacity)
}

func TestDayStatus_ConfiguredWithCapacity(t *testing.T) {
	loc := testTZ(t)
	date := domain.DateOnly(time.Now().AddDate(0, 0, 7), loc)
	dayRepo := &mockDayRepo{days: map[string]*domain.AvailableDay{
		date.Format(domain.DateFormat): {ID: 1, Date: date, MaxCapacity: 3, AppointmentType: domain.TypeNormal},
	}}
	svc := newTestService(t, dayRepo, &mockApptRepo{count: 1})

	status, err := svc.DayStatus(context.Background(), date, domain.TypeNormal)
	require.NoError(t, err)

	assert.True(t, status.Configured)
	assert.True(t, status.Available)
	assert.Equal(t, 3, status.MaxCapacity)
	assert.Equal(t, 1, status.BookedCount)
	assert.Equal(t, 2, status.RemainingCapacity)
	assert.False(t, status.IsPast)
}

func TestDayStatus_FullDay(t *testing.T) {
	loc := testTZ(t)
	date := domain.DateOnly(time.Now().AddDate(0, 0, 7), loc)
	dayRepo := &mockDayRepo{days: map[string]*domain.AvailableDay{
		date.Format(domain.DateFormat): {ID: 1, Date: date, MaxCapacity: 3, AppointmentType: domain.TypeNormal},
	}}
	svc := newTestService(t, dayRepo, &mockApptRepo{count: 3})

	status, err := svc.DayStatus(context.Background(), date, domain.TypeNormal)
	require.NoError(t, err)

	assert.True(t, status.Configured)
	assert.False(t, status.Available)
	assert.Equal(t, 0, status.RemainingCapacity)
}

func TestDayStatus_OverbookedClampsToZero(t *testing.T) {
	loc := testTZ(t)
	date := domain.DateOnly(time.Now().AddDate(0, 0, 7), loc)
	dayRepo := &mockDayRepo{days: map[string]*domain.AvailableDay{
		date.Format(domain.DateFormat): {ID: 1, Date: date, MaxCapacity: 2, AppointmentType: domain.TypeNormal},
	}}
	svc := newTestService(t, dayRepo, &mockApptRepo{count: 5})

	status, err := svc.DayStatus(context.Background(), date, domain.TypeNormal)
	require.NoError(t, err)

	assert.Equal(t, 0, status.RemainingCapacity, "never negative")
	assert.False(t, status.Available)
}

func TestDayStatus_PastDayNotAvailable(t *testing.T) {
	loc := testTZ(t)
	date := domain.DateOnly(time.Now().AddDate(0, 0, -3), loc)
	dayRepo := &mockDayRepo{days: map[string]*domain.AvailableDay{
		date.Format(domain.DateFormat): {ID: 1, Date: date, MaxCapacity: 3, AppointmentType: domain.TypeNormal},
	}}
	svc := newTestService(t, dayRepo, &mockApptRepo{count: 0})

	status, err := svc.DayStatus(context.Background(), date, domain.TypeNormal)
	require.NoError(t, err)

	assert.True(t, status.IsPast)
	assert.False(t, status.Available, "past days never accept bookings")
	assert.Equal(t, 3, status.RemainingCapacity)
}

func TestDayStatus_FormDateKeepsRequestedDay(t *testing.T) {
	// The HTTP layer parses "YYYY-MM-DD" with time.Parse, which yields
	// midnight UTC. The status for today must come back configured and
	// not past, on the requested date.
	loc := testTZ(t)
	day := time.Date(2026, time.June, 10, 0, 0, 0, 0, loc)
	dayRepo := &mockDayRepo{days: map[string]*domain.AvailableDay{
		"2026-06-10": {ID: 1, Date: day, MaxCapacity: 3, AppointmentType: domain.TypeNormal},
	}}
	svc := newTestService(t, dayRepo, &mockApptRepo{count: 0})
	svc.timeProvider = &fixedClock{now: time.Date(2026, time.June, 10, 12, 0, 0, 0, loc)}

	parsed, err := time.Parse(domain.DateFormat, "2026-06-10")
	require.NoError(t, err)

	status, err := svc.DayStatus(context.Background(), parsed, domain.TypeNormal)
	require.NoError(t, err)

	assert.Equal(t, "2026-06-10", status.Date)
	assert.True(t, status.Configured, "lookup must hit the requested day, not the day before")
	assert.False(t, status.IsPast, "today is not past")
	assert.True(t, status.Available)
}

func TestIsAvailable_CapacityRaiseReopensFullDay(t *testing.T) {
	loc := testTZ(t)
	date := domain.DateOnly(time.Now().AddDate(0, 0, 7), loc)
	day := &domain.AvailableDay{ID: 1, Date: date, MaxCapacity: 3, AppointmentType: domain.TypeNormal}
	dayRepo := &mockDayRepo{days: map[string]*domain.AvailableDay{
		date.Format(domain.DateFormat): day,
	}}
	svc := newTestService(t, dayRepo, &mockApptRepo{count: 3})

	available, err := svc.IsAvailable(context.Background(), date, domain.TypeNormal)
	require.NoError(t, err)
	assert.False(t, available)

	// Raising the cap reopens the day without touching any other state
	day.MaxCapacity = 4

	available, err = svc.IsAvailable(context.Background(), date, domain.TypeNormal)
	require.NoError(t, err)
	assert.True(t, available)
}

func TestMonthOverview_BucketsBookingsPerDay(t *testing.T) {
	loc := testTZ(t)
	future := time.Now().In(loc).AddDate(0, 2, 0)
	year, month := future.Year(), future.Month()

	day10 := time.Date(year, month, 10, 0, 0, 0, 0, loc)
	day11 := time.Date(year, month, 11, 0, 0, 0, 0, loc)

	dayRepo := &mockDayRepo{monthDays: []*domain.AvailableDay{
		{ID: 1, Date: day10, MaxCapacity: 3, AppointmentType: domain.TypeNormal},
		{ID: 2, Date: day11, MaxCapacity: 2, AppointmentType: domain.TypeNormal},
	}}
	apptRepo := &mockApptRepo{appts: []*domain.Appointment{
		{ScheduledAt: day10.Add(10 * time.Hour)},
		{ScheduledAt: day10.Add(12 * time.Hour)},
		{ScheduledAt: day11.Add(16 * time.Hour)},
	}}

	svc := newTestService(t, dayRepo, apptRepo)

	resp, err := svc.MonthOverview(context.Background(), &models.MonthRequest{
		Year: year, Month: month, AppointmentType: domain.TypeNormal,
	})
	require.NoError(t, err)
	require.Len(t, resp.Days, 2)

	assert.Equal(t, 2, resp.Days[0].BookedCount)
	assert.Equal(t, 1, resp.Days[0].RemainingCapacity)
	assert.Equal(t, 1, resp.Days[1].BookedCount)
	assert.Equal(t, 1, resp.Days[1].RemainingCapacity)
}

func TestMonthOverview_ScannedDateColumnIsNotPastToday(t *testing.T) {
	// The driver scans the DATE column as midnight UTC. A record for
	// today must not be marked past.
	loc := testTZ(t)
	scanned := time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)
	dayRepo := &mockDayRepo{monthDays: []*domain.AvailableDay{
		{ID: 1, Date: scanned, MaxCapacity: 3, AppointmentType: domain.TypeNormal},
	}}
	svc := newTestService(t, dayRepo, &mockApptRepo{})
	svc.timeProvider = &fixedClock{now: time.Date(2026, time.June, 10, 12, 0, 0, 0, loc)}

	resp, err := svc.MonthOverview(context.Background(), &models.MonthRequest{
		Year: 2026, Month: time.June, AppointmentType: domain.TypeNormal,
	})
	require.NoError(t, err)
	require.Len(t, resp.Days, 1)

	assert.Equal(t, "2026-06-10", resp.Days[0].Date)
	assert.False(t, resp.Days[0].IsPast, "today is not past")
	assert.True(t, resp.Days[0].Available)
}

func TestCreateDay_FormDateEchoesRequestedDay(t *testing.T) {
	svc := newTestService(t, &mockDayRepo{}, &mockApptRepo{})

	parsed, err := time.Parse(domain.DateFormat, "2026-06-10")
	require.NoError(t, err)

	resp, err := svc.CreateDay(context.Background(), &models.CreateDayRequest{
		Date:            parsed,
		AppointmentType: domain.TypeNormal,
		MaxCapacity:     3,
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-06-10", resp.Date, "stored and echoed date must match the request")
}

func TestCreateDay_DefaultCapacity(t *testing.T) {
	dayRepo := &mockDayRepo{}
	svc := newTestService(t, dayRepo, &mockApptRepo{})

	resp, err := svc.CreateDay(context.Background(), &models.CreateDayRequest{
		Date:            time.Now().AddDate(0, 0, 7),
		AppointmentType: domain.TypeNormal,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultMaxCapacity, resp.MaxCapacity)
}

func TestCreateDay_DuplicateMapsToAlreadyConfigured(t *testing.T) {
	dayRepo := &mockDayRepo{createErr: availabledayRepo.ErrDayAlreadyConfigured}
	svc := newTestService(t, dayRepo, &mockApptRepo{})

	_, err := svc.CreateDay(context.Background(), &models.CreateDayRequest{
		Date:            time.Now().AddDate(0, 0, 7),
		AppointmentType: domain.TypeNormal,
		MaxCapacity:     3,
	})
	require.ErrorIs(t, err, ErrDayAlreadyConfigured)
}

func TestCreateDay_CapacityBounds(t *testing.T) {
	svc := newTestService(t, &mockDayRepo{}, &mockApptRepo{})

	_, err := svc.CreateDay(context.Background(), &models.CreateDayRequest{
		Date:            time.Now().AddDate(0, 0, 7),
		AppointmentType: domain.TypeNormal,
		MaxCapacity:     domain.MaxMaxCapacity + 1,
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateDay_ChangesCapacity(t *testing.T) {
	existing := &domain.AvailableDay{ID: 4, MaxCapacity: 3, AppointmentType: domain.TypeNormal}
	dayRepo := &mockDayRepo{byID: map[int64]*domain.AvailableDay{4: existing}}
	svc := newTestService(t, dayRepo, &mockApptRepo{})

	resp, err := svc.UpdateDay(context.Background(), 4, &models.UpdateDayRequest{
		MaxCapacity: ptr.Ptr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.MaxCapacity)
	require.NotNil(t, dayRepo.updated)
	assert.Equal(t, 5, dayRepo.updated.MaxCapacity)
}

func TestUpdateDay_NothingToUpdate(t *testing.T) {
	svc := newTestService(t, &mockDayRepo{byID: map[int64]*domain.AvailableDay{}}, &mockApptRepo{})

	_, err := svc.UpdateDay(context.Background(), 4, &models.UpdateDayRequest{})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateDay_EmptyNotesBecomeNull(t *testing.T) {
	existing := &domain.AvailableDay{ID: 4, MaxCapacity: 3, AdminNotes: ptr.Ptr("viejo"), AppointmentType: domain.TypeNormal}
	dayRepo := &mockDayRepo{byID: map[int64]*domain.AvailableDay{4: existing}}
	svc := newTestService(t, dayRepo, &mockApptRepo{})

	resp, err := svc.UpdateDay(context.Background(), 4, &models.UpdateDayRequest{
		AdminNotes: ptr.Ptr("   "),
	})
	require.NoError(t, err)
	assert.Nil(t, resp.AdminNotes)
}

func TestGetDay(t *testing.T) {
	existing := &domain.AvailableDay{ID: 4, MaxCapacity: 3, AppointmentType: domain.TypePriority}
	dayRepo := &mockDayRepo{byID: map[int64]*domain.AvailableDay{4: existing}}
	svc := newTestService(t, dayRepo, &mockApptRepo{})

	resp, err := svc.GetDay(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, int64(4), resp.ID)

	_, err = svc.GetDay(context.Background(), 5)
	require.ErrorIs(t, err, ErrDayNotFound)
}

func TestDeleteDay_NotFound(t *testing.T) {
	svc := newTestService(t, &mockDayRepo{byID: map[int64]*domain.AvailableDay{}}, &mockApptRepo{})

	err := svc.DeleteDay(context.Background(), 99)
	require.ErrorIs(t, err, ErrDayNotFound)
}
