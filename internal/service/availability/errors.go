package availability

import "errors"

var (
	// ErrTechnicianNotFound возвращается, когда мастер не найден
	ErrTechnicianNotFound = errors.New("availability: technician not found")

	// ErrInvalidTimeRange возвращается при некорректном интервале (start >= end)
	ErrInvalidTimeRange = errors.New("availability: invalid time range")

	// ErrInternal возвращается при внутренних ошибках проверки доступности
	ErrInternal = errors.New("availability: internal error")
)
