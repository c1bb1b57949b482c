package get_bookings

import (
	"context"

	bookingModels "github.com/roltrader/autoperks/internal/service/bookings/models"
)

type BookingService interface {
	GetBookings(ctx context.Context, req *bookingModels.GetBookingsRequest) (*bookingModels.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
