package domain

import (
	"time"

	"github.com/roltrader/autoperks/pkg/types"
)

// BlockedTime is an explicit technician-specific unavailability window,
// distinct from booked appointments. Multiple windows per (technician, date)
// may coexist and may overlap each other; the availability checker unions
// them at query time.
type BlockedTime struct {
	ID           int64
	TechnicianID int64
	Date         time.Time
	StartTime    types.TimeString
	EndTime      types.TimeString
	Reason       string
	CreatedAt    time.Time
}

// Overlaps проверяет пересечение блокировки с полуоткрытым интервалом [start, end)
func (b *BlockedTime) Overlaps(start, end types.TimeString) bool {
	return types.Overlaps(b.StartTime, b.EndTime, start, end)
}
