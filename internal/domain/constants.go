package domain

// Roster bounds
const (
	MinTechnicians = 2
	MaxTechnicians = 5
)

// Operating window and slot grid
const (
	OperatingDayStartHour = 8  // Слоты начинаются с 08:00
	OperatingDayEndHour   = 18 // Последний слот начинается до 18:00
	SlotIntervalMinutes   = 30
)

// Suggestion scan parameters
const (
	SuggestionWindowDays  = 7 // Горизонт поиска альтернатив, включая запрошенную дату
	DefaultMaxSuggestions = 5
)

// Business validation constants
const (
	MinServiceDurationMinutes = 15
	MaxServiceDurationMinutes = 480 // 8 часов
	MaxNotesLength            = 500
	MaxReasonLength           = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
