package suggest_slots

import (
	"context"
	"time"

	"github.com/roltrader/autoperks/internal/domain"
	"github.com/roltrader/autoperks/pkg/types"
)

// TechnicianRepository интерфейс репозитория мастеров
type TechnicianRepository interface {
	// List возвращает мастеров в порядке добавления
	List(ctx context.Context, onlyActive bool) ([]*domain.Technician, error)
}

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// AvailabilityChecker интерфейс проверки доступности мастера
type AvailabilityChecker interface {
	IsFree(ctx context.Context, technicianID int64, date time.Time, start, end types.TimeString) (bool, error)
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
