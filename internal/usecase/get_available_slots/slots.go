package get_available_slots

import (
	"context"
	"time"

	"github.com/roltrader/autoperks/internal/domain"
	"github.com/roltrader/autoperks/pkg/types"
)

// computeSlots строит сетку слотов дня и для каждого слота собирает свободных мастеров
// Слот доступен, если хотя бы один мастер свободен на интервале [start, start+duration)
// Слот в конце дня предлагается даже если услуга выходит за время закрытия:
// клиент видит время начала, а переработка остаётся на усмотрение мастерской
func (uc *UseCase) computeSlots(
	ctx context.Context,
	technicians []*domain.Technician,
	date time.Time,
	durationMinutes int,
) ([]Slot, error) {
	gridTimes := domain.CanonicalSlotTimes()
	slots := make([]Slot, 0, len(gridTimes))

	for _, slotStart := range gridTimes {
		slotEnd, err := slotStart.AddMinutes(durationMinutes)
		if err != nil {
			// Интервал выходит за пределы суток - оцениваем занятость до конца дня
			slotEnd = types.TimeString("23:59")
		}

		freeIDs := make([]int64, 0, len(technicians))
		for _, tech := range technicians {
			free, err := uc.checker.IsFree(ctx, tech.ID, date, slotStart, slotEnd)
			if err != nil {
				return nil, err
			}
			if free {
				freeIDs = append(freeIDs, tech.ID)
			}
		}

		slots = append(slots, Slot{
			StartTime:       slotStart,
			DurationMinutes: durationMinutes,
			Available:       len(freeIDs) > 0,
			TechnicianIDs:   freeIDs,
		})
	}

	return slots, nil
}
