package technicians

import (
	"context"
	"time"

	"github.com/roltrader/autoperks/internal/domain"
)

// TechnicianRepository интерфейс репозитория мастеров
type TechnicianRepository interface {
	Create(ctx context.Context, tech *domain.Technician) (*domain.Technician, error)
	GetByID(ctx context.Context, id int64) (*domain.Technician, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.Technician, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, id int64, update domain.TechnicianUpdate) (*domain.Technician, error)
	Delete(ctx context.Context, id int64) error

	UpsertDateException(ctx context.Context, exc *domain.DateException) (*domain.DateException, error)
	ListDateExceptions(ctx context.Context, technicianID int64) ([]*domain.DateException, error)
	DeleteDateException(ctx context.Context, technicianID int64, date time.Time) error
}

// BlockedTimeRepository интерфейс репозитория блокировок
// Нужен для каскадной очистки блокировок при удалении мастера
type BlockedTimeRepository interface {
	DeleteByTechnician(ctx context.Context, technicianID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
