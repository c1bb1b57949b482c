package blockedtimes

import "errors"

var (
	ErrBlockedTimeNotFound = errors.New("blockedtimes.service: blocked time not found")
	ErrTechnicianNotFound  = errors.New("blockedtimes.service: technician not found")
	ErrInvalidTimeRange    = errors.New("blockedtimes.service: start time must be before end time")
	ErrInvalidInput        = errors.New("blockedtimes.service: invalid input")
	ErrInternal            = errors.New("blockedtimes.service: internal error")
)
