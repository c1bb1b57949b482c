package bookings

import (
	"context"

	"github.com/roltrader/autoperks/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Update(ctx context.Context, id int64, update domain.BookingUpdate) (*domain.Booking, error)
	Cancel(ctx context.Context, id int64, reason string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
