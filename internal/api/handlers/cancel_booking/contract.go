package cancel_booking

import (
	"context"

	bookingModels "github.com/roltrader/autoperks/internal/service/bookings/models"
)

type BookingService interface {
	Cancel(ctx context.Context, id int64, req *bookingModels.CancelBookingRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
