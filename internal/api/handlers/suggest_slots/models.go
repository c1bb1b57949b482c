package suggest_slots

import (
	"github.com/roltrader/autoperks/internal/domain"
	suggestSlots "github.com/roltrader/autoperks/internal/usecase/suggest_slots"
)

// SuggestionsResponse HTTP response model
type SuggestionsResponse struct {
	ServiceID   int64            `json:"serviceId"`
	Suggestions []SuggestedSlot `json:"suggestions"`
}

// SuggestedSlot модель одного предложения
type SuggestedSlot struct {
	Date           string `json:"date"`
	StartTime      string `json:"startTime"`
	TechnicianID   int64  `json:"technicianId"`
	TechnicianName string `json:"technicianName"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *suggestSlots.Response) *SuggestionsResponse {
	suggestions := make([]SuggestedSlot, len(resp.Suggestions))
	for i, s := range resp.Suggestions {
		suggestions[i] = SuggestedSlot{
			Date:           s.Date.Format(domain.DateFormat),
			StartTime:      s.StartTime.String(),
			TechnicianID:   s.TechnicianID,
			TechnicianName: s.TechnicianName,
		}
	}

	return &SuggestionsResponse{
		ServiceID:   resp.ServiceID,
		Suggestions: suggestions,
	}
}
