package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("10:30")
	require.NoError(t, err)
	assert.Equal(t, "10:30", ts.String())

	for _, bad := range []string{"", "25:00", "10:60", "10-30", "1030", "10:30:00"} {
		_, err := NewTimeStringFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", bad)
	}
}

func TestTimeStringOrdering(t *testing.T) {
	early := TimeString("09:00")
	late := TimeString("17:30")

	assert.True(t, early.IsBefore(late))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsBefore(early))
}

func TestAddMinutes(t *testing.T) {
	ts := TimeString("10:00")

	shifted, err := ts.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:45"), shifted)

	shifted, err = ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), shifted)
}

func TestOn(t *testing.T) {
	loc, err := time.LoadLocation("America/Mexico_City")
	require.NoError(t, err)

	date := time.Date(2026, time.March, 15, 0, 0, 0, 0, loc)
	instant, err := TimeString("10:30").On(date, loc)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, time.March, 15, 10, 30, 0, 0, loc), instant)
}

func TestScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("14:00"))
	assert.Equal(t, TimeString("14:00"), ts)

	require.NoError(t, ts.Scan([]byte("15:30")))
	assert.Equal(t, TimeString("15:30"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestValue(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("99:99").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
