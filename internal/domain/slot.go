package domain

import (
	"time"

	"github.com/roltrader/autoperks/pkg/types"
)

// Slot is a derived view of a single time-of-day candidate for a given date:
// which technicians could take a service starting at this time. Not persisted.
type Slot struct {
	StartTime       types.TimeString
	DurationMinutes int
	Available       bool
	TechnicianIDs   []int64 // Свободные мастера в порядке состава (первый - кандидат по умолчанию)
}

// Suggestion is a ranked alternative (date, time, technician) offered when
// the requested date has no free slot
type Suggestion struct {
	Date           time.Time
	StartTime      types.TimeString
	TechnicianID   int64
	TechnicianName string
}

// CanonicalSlotTimes возвращает канонические получасовые слоты рабочего дня
// [OperatingDayStart, OperatingDayEnd): 08:00, 08:30, ..., 17:30
// Все вычисления доступности во всех компонентах идут по этой сетке
func CanonicalSlotTimes() []types.TimeString {
	startMinutes := OperatingDayStartHour * 60
	endMinutes := OperatingDayEndHour * 60

	slots := make([]types.TimeString, 0, (endMinutes-startMinutes)/SlotIntervalMinutes)
	for m := startMinutes; m < endMinutes; m += SlotIntervalMinutes {
		slots = append(slots, types.NewTimeStringFromMinutes(m))
	}
	return slots
}
