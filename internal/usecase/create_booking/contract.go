package create_booking

import (
	"context"
	"time"

	"github.com/roltrader/autoperks/internal/domain"
	"github.com/roltrader/autoperks/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// TechnicianRepository интерфейс репозитория мастеров
type TechnicianRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Technician, error)
	// List возвращает мастеров в порядке добавления
	List(ctx context.Context, onlyActive bool) ([]*domain.Technician, error)
}

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// AvailabilityChecker интерфейс проверки доступности мастера
// Проверка внутри транзакции гарантирует отсутствие гонки при создании
type AvailabilityChecker interface {
	IsFree(ctx context.Context, technicianID int64, date time.Time, start, end types.TimeString) (bool, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
