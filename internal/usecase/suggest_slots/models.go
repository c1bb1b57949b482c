package suggest_slots

import (
	"time"

	"github.com/roltrader/autoperks/pkg/types"
)

// Request модель запроса на подбор ближайших свободных слотов
type Request struct {
	ServiceID      int64     // ID услуги
	FromDate       time.Time // Дата начала окна поиска (без времени)
	MaxSuggestions int       // Максимум предложений (0 - использовать значение по умолчанию)
}

// Response модель ответа с подобранными слотами
type Response struct {
	ServiceID   int64        // ID услуги
	Suggestions []Suggestion // Предложения в порядке (дата, время)
}

// Suggestion модель одного предложения
type Suggestion struct {
	Date           time.Time        // Дата слота
	StartTime      types.TimeString // Время начала слота
	TechnicianID   int64            // Первый свободный мастер в порядке добавления
	TechnicianName string           // Имя мастера
}
