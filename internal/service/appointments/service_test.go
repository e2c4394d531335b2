package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitatum/HBT-AppointmentService/internal/domain"
	appointmentRepo "github.com/habitatum/HBT-AppointmentService/internal/infra/storage/appointment"
	"github.com/habitatum/HBT-AppointmentService/internal/service/appointments/models"
	"github.com/habitatum/HBT-AppointmentService/pkg/ptr"
)

type mockApptRepo struct {
	byID      map[int64]*domain.Appointment
	listed    []*domain.Appointment
	deleted   []int64
	gotFilter domain.AppointmentsFilter
}

func (m *mockApptRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	if a, ok := m.byID[id]; ok {
		return a, nil
	}
	return nil, appointmentRepo.ErrAppointmentNotFound
}

func (m *mockApptRepo) GetByPropertyID(_ context.Context, propertyID int64) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, a := range m.listed {
		if a.PropertyID == propertyID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockApptRepo) ListWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	m.gotFilter = filter
	return m.listed, nil
}

func (m *mockApptRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.byID[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	m.deleted = append(m.deleted, id)
	return nil
}

type mockPropRepo struct {
	props map[int64]*domain.Property
}

func (m *mockPropRepo) GetByID(_ context.Context, id int64) (*domain.Property, error) {
	if p, ok := m.props[id]; ok {
		return p, nil
	}
	return nil, errors.New("property not found")
}

type mockCalendar struct {
	deleted []string
	err     error
}

func (m *mockCalendar) DeleteEvent(_ context.Context, eventID string) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, eventID)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testTZ(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Mexico_City")
	require.NoError(t, err)
	return loc
}

func testAppointment(id, propertyID int64) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		PropertyID:      propertyID,
		ClientName:      "Ana Torres",
		ClientEmail:     "ana@example.com",
		ClientPhone:     "5512345678",
		ScheduledAt:     time.Now().AddDate(0, 0, 7),
		AppointmentType: domain.TypeNormal,
	}
}

func TestList_ResolvesPropertyNames(t *testing.T) {
	apptRepo := &mockApptRepo{listed: []*domain.Appointment{
		testAppointment(1, 7),
		testAppointment(2, 7),
	}}
	propRepo := &mockPropRepo{props: map[int64]*domain.Property{
		7: {ID: 7, Name: "Casa en Polanco"},
	}}

	svc := NewService(apptRepo, propRepo, nil, testTZ(t), noopLogger{})

	resp, err := svc.List(context.Background(), &models.ListRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 2)
	assert.Equal(t, "Casa en Polanco", resp.Appointments[0].PropertyName)
	assert.Equal(t, "Casa en Polanco", resp.Appointments[1].PropertyName)
}

func TestList_AnchorsFilterDatesToBusinessDay(t *testing.T) {
	loc := testTZ(t)
	apptRepo := &mockApptRepo{}
	svc := NewService(apptRepo, &mockPropRepo{}, nil, loc, noopLogger{})

	// Query dates arrive as midnight UTC from time.Parse
	startDate, err := time.Parse(domain.DateFormat, "2026-06-10")
	require.NoError(t, err)
	endDate, err := time.Parse(domain.DateFormat, "2026-06-12")
	require.NoError(t, err)

	_, err = svc.List(context.Background(), &models.ListRequest{StartDate: &startDate, EndDate: &endDate})
	require.NoError(t, err)

	require.NotNil(t, apptRepo.gotFilter.StartDate)
	require.NotNil(t, apptRepo.gotFilter.EndDate)
	assert.Equal(t, time.Date(2026, time.June, 10, 0, 0, 0, 0, loc), *apptRepo.gotFilter.StartDate,
		"range must start at the business-day boundary, not midnight UTC")
	assert.Equal(t, time.Date(2026, time.June, 12, 0, 0, 0, 0, loc), *apptRepo.gotFilter.EndDate)
}

func TestList_InvertedDateRange(t *testing.T) {
	svc := NewService(&mockApptRepo{}, &mockPropRepo{}, nil, testTZ(t), noopLogger{})

	start := time.Now()
	end := start.AddDate(0, 0, -5)
	_, err := svc.List(context.Background(), &models.ListRequest{StartDate: &start, EndDate: &end})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&mockApptRepo{byID: map[int64]*domain.Appointment{}}, &mockPropRepo{}, nil, testTZ(t), noopLogger{})

	_, err := svc.GetByID(context.Background(), 42)
	require.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancel_DeletesAppointmentAndCalendarEvent(t *testing.T) {
	appt := testAppointment(5, 7)
	appt.GoogleEventID = ptr.Ptr("evt_123")

	apptRepo := &mockApptRepo{byID: map[int64]*domain.Appointment{5: appt}}
	cal := &mockCalendar{}

	svc := NewService(apptRepo, &mockPropRepo{}, cal, testTZ(t), noopLogger{})

	require.NoError(t, svc.Cancel(context.Background(), 5))
	assert.Equal(t, []int64{5}, apptRepo.deleted)
	assert.Equal(t, []string{"evt_123"}, cal.deleted)
}

func TestCancel_CalendarFailureStillCancels(t *testing.T) {
	appt := testAppointment(5, 7)
	appt.GoogleEventID = ptr.Ptr("evt_123")

	apptRepo := &mockApptRepo{byID: map[int64]*domain.Appointment{5: appt}}
	cal := &mockCalendar{err: errors.New("calendar down")}

	svc := NewService(apptRepo, &mockPropRepo{}, cal, testTZ(t), noopLogger{})

	require.NoError(t, svc.Cancel(context.Background(), 5))
	assert.Equal(t, []int64{5}, apptRepo.deleted)
}

func TestCancel_NotFound(t *testing.T) {
	svc := NewService(&mockApptRepo{byID: map[int64]*domain.Appointment{}}, &mockPropRepo{}, nil, testTZ(t), noopLogger{})

	err := svc.Cancel(context.Background(), 99)
	require.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestListByProperty(t *testing.T) {
	apptRepo := &mockApptRepo{listed: []*domain.Appointment{
		testAppointment(1, 7),
		testAppointment(2, 8),
	}}
	propRepo := &mockPropRepo{props: map[int64]*domain.Property{
		7: {ID: 7, Name: "Casa en Polanco"},
		8: {ID: 8, Name: "Departamento Roma Norte"},
	}}

	svc := NewService(apptRepo, propRepo, nil, testTZ(t), noopLogger{})

	resp, err := svc.ListByProperty(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, int64(1), resp.Appointments[0].ID)
}
