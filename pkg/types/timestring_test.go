package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), ts)

	for _, bad := range []string{"9:30", "25:00", "12:60", "12.30", "", "noon"} {
		_, err := NewTimeStringFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidFormat, "input %q", bad)
	}
}

func TestNewTimeString_TruncatesToMinutes(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 3, 15, 14, 45, 59, 999, time.UTC))
	assert.Equal(t, TimeString("14:45"), ts)
}

func TestMinutes(t *testing.T) {
	ts := TimeString("10:30")
	m, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, m)

	_, err = TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestAddMinutes(t *testing.T) {
	ts := TimeString("17:30")

	got, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("18:00"), got)

	// Переход через полночь не поддерживается
	_, err = ts.AddMinutes(7 * 60)
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = TimeString("00:30").AddMinutes(-60)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestIsBeforeIsAfter(t *testing.T) {
	a := TimeString("08:00")
	b := TimeString("08:30")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.False(t, a.IsBefore(a))

	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(b))
	assert.False(t, a.IsAfter(a))
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                   string
		aStart, aEnd           TimeString
		bStart, bEnd           TimeString
		want                   bool
	}{
		{"identical", "09:00", "10:00", "09:00", "10:00", true},
		{"partial overlap", "09:00", "10:00", "09:30", "10:30", true},
		{"contained", "09:00", "12:00", "10:00", "11:00", true},
		{"touching end to start", "09:00", "10:00", "10:00", "11:00", false},
		{"touching start to end", "10:00", "11:00", "09:00", "10:00", false},
		{"disjoint", "08:00", "09:00", "10:00", "11:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Пересечение симметрично
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestIsZeroAndValidate(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("08:00").IsZero())

	assert.NoError(t, TimeString("23:59").Validate())
	assert.ErrorIs(t, TimeString("24:00").Validate(), ErrInvalidFormat)
}

func TestScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("09:30:00"))
	assert.Equal(t, TimeString("09:30"), ts)

	require.NoError(t, ts.Scan([]byte("14:00")))
	assert.Equal(t, TimeString("14:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 1, 1, 7, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("07:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
