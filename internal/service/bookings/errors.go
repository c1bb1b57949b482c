package bookings

import "errors"

var (
	ErrBookingNotFound = errors.New("bookings.service: booking not found")
	ErrCannotCancel    = errors.New("bookings.service: booking cannot be cancelled")
	ErrInvalidInput    = errors.New("bookings.service: invalid input")
	ErrInternal        = errors.New("bookings.service: internal error")
)
