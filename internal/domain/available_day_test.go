package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoadTZ(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Mexico_City")
	require.NoError(t, err)
	return loc
}

func TestRemainingCapacity(t *testing.T) {
	day := &AvailableDay{MaxCapacity: 3}

	assert.Equal(t, 3, day.RemainingCapacity(0))
	assert.Equal(t, 1, day.RemainingCapacity(2))
	assert.Equal(t, 0, day.RemainingCapacity(3))
}

func TestRemainingCapacity_NeverNegative(t *testing.T) {
	// Overbooking can happen when the admin lowers the cap below the
	// booked count, remaining must clamp at zero
	day := &AvailableDay{MaxCapacity: 2}

	assert.Equal(t, 0, day.RemainingCapacity(5))
	assert.True(t, day.IsFull(5))
}

func TestIsFull(t *testing.T) {
	day := &AvailableDay{MaxCapacity: 3}

	assert.False(t, day.IsFull(2))
	assert.True(t, day.IsFull(3))
}

func TestDateOnly(t *testing.T) {
	loc := mustLoadTZ(t)

	instant := time.Date(2026, time.March, 15, 18, 45, 12, 0, loc)
	day := DateOnly(instant, loc)

	assert.Equal(t, time.Date(2026, time.March, 15, 0, 0, 0, 0, loc), day)
}

func TestDateOnly_CrossesTimezone(t *testing.T) {
	loc := mustLoadTZ(t)

	// 02:00 UTC on March 16 is still March 15 in Mexico City
	instant := time.Date(2026, time.March, 16, 2, 0, 0, 0, time.UTC)
	day := DateOnly(instant, loc)

	assert.Equal(t, 15, day.Day())
	assert.Equal(t, time.March, day.Month())
}

func TestWallDate_KeepsCalendarFields(t *testing.T) {
	loc := mustLoadTZ(t)

	// Form dates arrive as midnight UTC from time.Parse
	parsed, err := time.Parse(DateFormat, "2026-03-16")
	require.NoError(t, err)

	wall := WallDate(parsed, loc)
	assert.Equal(t, time.Date(2026, time.March, 16, 0, 0, 0, 0, loc), wall)

	// DateOnly would reinterpret the same value as an instant and land
	// on the previous day
	assert.Equal(t, 15, DateOnly(parsed, loc).Day())
}

func TestIsPastDay(t *testing.T) {
	loc := mustLoadTZ(t)
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, loc)

	assert.True(t, IsPastDay(now.AddDate(0, 0, -1), now, loc))
	assert.False(t, IsPastDay(now, now, loc), "today is not past")
	assert.False(t, IsPastDay(now.AddDate(0, 0, 1), now, loc))
}

func TestSameDay(t *testing.T) {
	loc := mustLoadTZ(t)

	morning := time.Date(2026, time.March, 15, 8, 0, 0, 0, loc)
	evening := time.Date(2026, time.March, 15, 22, 0, 0, 0, loc)
	nextDay := time.Date(2026, time.March, 16, 0, 0, 0, 0, loc)

	assert.True(t, SameDay(morning, evening, loc))
	assert.False(t, SameDay(evening, nextDay, loc))
}

func TestAppointmentTypeValid(t *testing.T) {
	assert.True(t, TypeNormal.Valid())
	assert.True(t, TypePriority.Valid())
	assert.False(t, AppointmentType("urgente").Valid())
	assert.False(t, AppointmentType("").Valid())
}

func TestVisitDurationMinutes(t *testing.T) {
	normal := &Appointment{AppointmentType: TypeNormal}
	priority := &Appointment{AppointmentType: TypePriority}

	assert.Equal(t, NormalVisitDurationMinutes, normal.VisitDurationMinutes())
	assert.Equal(t, PriorityVisitDurationMinutes, priority.VisitDurationMinutes())
}
