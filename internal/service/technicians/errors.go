package technicians

import "errors"

var (
	ErrTechnicianNotFound = errors.New("technicians.service: technician not found")
	ErrExceptionNotFound  = errors.New("technicians.service: date exception not found")
	ErrRosterFull         = errors.New("technicians.service: roster is at maximum size")
	ErrRosterAtMinimum    = errors.New("technicians.service: roster is at minimum size")
	ErrInvalidInput       = errors.New("technicians.service: invalid input")
	ErrInternal           = errors.New("technicians.service: internal error")
)
