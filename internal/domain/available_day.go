package domain

import "time"

// AvailableDay is the administrator-configured capacity record for one
// calendar date and one appointment type. At most one record exists per
// (Date, AppointmentType) pair.
type AvailableDay struct {
	ID              int64
	Date            time.Time // date only, midnight in the business timezone
	AppointmentType AppointmentType
	MaxCapacity     int
	AdminNotes      *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RemainingCapacity returns how many appointments the day still accepts
// given the current booked count. Never negative, even when concurrent
// admissions or a capacity decrease left the day overbooked.
func (d *AvailableDay) RemainingCapacity(booked int) int {
	remaining := d.MaxCapacity - booked
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsFull reports whether the day has no remaining capacity
func (d *AvailableDay) IsFull(booked int) bool {
	return d.RemainingCapacity(booked) == 0
}

// DateOnly truncates the instant t to midnight in the given location.
// Use it for real instants such as scheduled_at timestamps, where the
// calendar day depends on the timezone.
func DateOnly(t time.Time, loc *time.Location) time.Time {
	inLoc := t.In(loc)
	return time.Date(inLoc.Year(), inLoc.Month(), inLoc.Day(), 0, 0, 0, 0, loc)
}

// WallDate rebuilds the calendar fields of t as midnight in the given
// location. Use it for values that carry a wall date rather than an
// instant: "YYYY-MM-DD" form input parses as midnight UTC, and the
// driver scans DATE columns the same way. Converting those instants
// with DateOnly would shift the date back one day west of UTC.
func WallDate(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// IsPastDay reports whether date falls on a day strictly before now,
// both normalized to the given location
func IsPastDay(date, now time.Time, loc *time.Location) bool {
	return DateOnly(date, loc).Before(DateOnly(now, loc))
}

// SameDay reports whether both instants fall on the same calendar day
// in the given location
func SameDay(a, b time.Time, loc *time.Location) bool {
	return DateOnly(a, loc).Equal(DateOnly(b, loc))
}
