package suggest_slots

import (
	"context"
	"time"

	"github.com/roltrader/autoperks/internal/domain"
	"github.com/roltrader/autoperks/pkg/types"
)

// scanForSuggestions сканирует окно из SuggestionWindowDays дней начиная с запрошенной даты
// и собирает ближайшие свободные слоты в строгом порядке (дата, время)
//
// На каждую пару (дата, время) попадает не больше одного предложения:
// берётся первый свободный мастер в порядке добавления в состав
// Если просматриваемый день - сегодняшний, слоты, которые уже начались, пропускаются
func (uc *UseCase) scanForSuggestions(
	ctx context.Context,
	technicians []*domain.Technician,
	durationMinutes int,
	maxSuggestions int,
	fromDate time.Time,
	now time.Time,
) ([]Suggestion, error) {
	startDate := time.Date(fromDate.Year(), fromDate.Month(), fromDate.Day(), 0, 0, 0, 0, fromDate.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	nowTime := types.NewTimeString(now)
	gridTimes := domain.CanonicalSlotTimes()

	suggestions := make([]Suggestion, 0, maxSuggestions)

	for offset := 0; offset < domain.SuggestionWindowDays; offset++ {
		date := startDate.AddDate(0, 0, offset)

		for _, slotStart := range gridTimes {
			// Сегодняшние слоты, которые уже начались, не предлагаем
			if sameDay(date, today) && !slotStart.IsAfter(nowTime) {
				continue
			}

			slotEnd, err := slotStart.AddMinutes(durationMinutes)
			if err != nil {
				slotEnd = types.TimeString("23:59")
			}

			for _, tech := range technicians {
				free, err := uc.checker.IsFree(ctx, tech.ID, date, slotStart, slotEnd)
				if err != nil {
					return nil, err
				}
				if !free {
					continue
				}

				suggestions = append(suggestions, Suggestion{
					Date:           date,
					StartTime:      slotStart,
					TechnicianID:   tech.ID,
					TechnicianName: tech.Name,
				})
				break
			}

			if len(suggestions) >= maxSuggestions {
				return suggestions, nil
			}
		}
	}

	return suggestions, nil
}

// sameDay сравнивает календарные даты без учета часового пояса и времени
func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
