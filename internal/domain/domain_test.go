package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roltrader/autoperks/pkg/types"
)

func TestCanonicalSlotTimes(t *testing.T) {
	slots := CanonicalSlotTimes()

	require.Len(t, slots, 20)
	assert.Equal(t, types.TimeString("08:00"), slots[0])
	assert.Equal(t, types.TimeString("08:30"), slots[1])
	assert.Equal(t, types.TimeString("17:30"), slots[len(slots)-1])

	// Сетка строго возрастает с шагом 30 минут
	for i := 1; i < len(slots); i++ {
		prev, err := slots[i-1].Minutes()
		require.NoError(t, err)
		cur, err := slots[i].Minutes()
		require.NoError(t, err)
		assert.Equal(t, SlotIntervalMinutes, cur-prev)
	}
}

func TestBookingEndTime(t *testing.T) {
	b := &Booking{StartTime: "10:00", DurationMinutes: 90}
	end, err := b.EndTime()
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("11:30"), end)
}

func TestBookingOccupiesSlot(t *testing.T) {
	for _, status := range []BookingStatus{StatusPending, StatusConfirmed, StatusCompleted} {
		b := &Booking{Status: status}
		assert.True(t, b.OccupiesSlot(), "status %s", status)
	}

	cancelled := &Booking{Status: StatusCancelled}
	assert.False(t, cancelled.OccupiesSlot())
	assert.True(t, cancelled.IsCancelled())
}

func TestBookingCanBeCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCompleted}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(StatusPending))
	assert.True(t, IsValidStatus(StatusCancelled))
	assert.False(t, IsValidStatus(BookingStatus("archived")))
}

func TestBlockedTimeOverlaps(t *testing.T) {
	block := &BlockedTime{StartTime: "09:00", EndTime: "12:00"}

	assert.True(t, block.Overlaps("11:30", "12:30"))
	assert.True(t, block.Overlaps("08:00", "09:30"))
	assert.False(t, block.Overlaps("12:00", "13:00"))
	assert.False(t, block.Overlaps("08:00", "09:00"))
}

func TestSessionIsExpired(t *testing.T) {
	expiry := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	s := &Session{ExpiresAt: expiry}

	assert.False(t, s.IsExpired(expiry.Add(-time.Minute)))
	assert.True(t, s.IsExpired(expiry))
	assert.True(t, s.IsExpired(expiry.Add(time.Minute)))
}

func TestIdentityIsAdmin(t *testing.T) {
	assert.True(t, Identity{Role: RoleAdmin}.IsAdmin())
	assert.False(t, Identity{Role: RoleClient}.IsAdmin())
}
