package blockedtimes

import (
	"context"
	"time"

	"github.com/roltrader/autoperks/internal/domain"
)

// BlockedTimeRepository интерфейс репозитория блокировок
type BlockedTimeRepository interface {
	Create(ctx context.Context, block *domain.BlockedTime) (*domain.BlockedTime, error)
	GetByID(ctx context.Context, id int64) (*domain.BlockedTime, error)
	List(ctx context.Context, technicianID *int64, date *time.Time) ([]*domain.BlockedTime, error)
	Delete(ctx context.Context, id int64) error
}

// TechnicianRepository интерфейс репозитория мастеров
// Нужен для проверки существования мастера перед созданием блокировки
type TechnicianRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Technician, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
