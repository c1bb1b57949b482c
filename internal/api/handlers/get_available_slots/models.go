package get_available_slots

import (
	"time"

	"github.com/roltrader/autoperks/internal/domain"
	getAvailableSlots "github.com/roltrader/autoperks/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string          `json:"date"`
	ServiceID       int64           `json:"serviceId"`
	DurationMinutes int             `json:"durationMinutes"`
	Slots           []AvailableSlot `json:"slots"`
}

// AvailableSlot модель слота сетки дня
type AvailableSlot struct {
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Available       bool    `json:"available"`
	TechnicianIDs   []int64 `json:"technicianIds"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		technicianIDs := slot.TechnicianIDs
		if technicianIDs == nil {
			technicianIDs = []int64{}
		}
		slots[i] = AvailableSlot{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
			Available:       slot.Available,
			TechnicianIDs:   technicianIDs,
		}
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		ServiceID:       resp.ServiceID,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(serviceID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ServiceID: serviceID,
		Date:      date,
	}, nil
}
