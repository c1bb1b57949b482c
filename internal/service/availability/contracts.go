package availability

import (
	"context"
	"time"

	"github.com/roltrader/autoperks/internal/domain"
)

// TechnicianRepository интерфейс репозитория мастеров
type TechnicianRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Technician, error)
	GetDateException(ctx context.Context, technicianID int64, date time.Time) (*domain.DateException, error)
}

// BlockedTimeRepository интерфейс репозитория блокировок времени
type BlockedTimeRepository interface {
	GetByTechnicianAndDate(ctx context.Context, technicianID int64, date time.Time) ([]*domain.BlockedTime, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
