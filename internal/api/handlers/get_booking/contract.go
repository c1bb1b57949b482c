package get_booking

import (
	"context"

	bookingModels "github.com/roltrader/autoperks/internal/service/bookings/models"
)

type BookingService interface {
	GetByID(ctx context.Context, id int64) (*bookingModels.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
