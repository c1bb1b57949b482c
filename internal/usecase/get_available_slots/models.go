package get_available_slots

import (
	"time"

	"github.com/roltrader/autoperks/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID int64     // ID услуги (определяет длительность занимаемого интервала)
	Date      time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов на день
type Response struct {
	Date            time.Time // Дата, на которую запрашивались слоты
	ServiceID       int64     // ID услуги
	DurationMinutes int       // Длительность услуги в минутах
	Slots           []Slot    // Канонические слоты дня в хронологическом порядке
}

// Slot модель слота сетки дня
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Длительность занимаемого интервала
	Available       bool             // Есть ли хотя бы один свободный мастер
	TechnicianIDs   []int64          // Свободные мастера в порядке добавления в состав
}
