package create_booking

import (
	"time"

	"github.com/roltrader/autoperks/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	TechnicianID *int64           // ID мастера (nil - выбрать первого свободного)
	ServiceID    int64            // ID услуги
	Date         time.Time        // Дата бронирования (без времени)
	StartTime    types.TimeString // Время начала слота (например, "10:00")

	CustomerName  string // Имя клиента
	CustomerEmail string // Email клиента
	CustomerPhone string // Телефон клиента

	VehicleMake  *string // Марка автомобиля (опционально)
	VehicleModel *string // Модель автомобиля (опционально)
	VehicleYear  *string // Год выпуска (опционально)
	Notes        *string // Дополнительные заметки (опционально)

	CreatedByAdmin bool // Бронирование создано администратором - сразу подтверждается
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	TechnicianID    int64            // ID назначенного мастера
	ServiceID       int64            // ID услуги
	BookingDate     time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус бронирования

	CustomerName  string // Имя клиента
	CustomerEmail string // Email клиента
	CustomerPhone string // Телефон клиента

	// Денормализованные данные
	ServiceName  string  // Название услуги
	ServicePrice float64 // Цена услуги
	VehicleMake  *string // Марка автомобиля
	VehicleModel *string // Модель автомобиля
	VehicleYear  *string // Год выпуска
	Notes        *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
