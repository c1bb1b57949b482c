package create_booking

import "errors"

var (
	// ErrTechnicianNotFound возвращается, когда мастер не найден
	ErrTechnicianNotFound = errors.New("create_booking: technician not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrSlotNotAvailable возвращается, когда выбранный слот недоступен
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrTooLateToBook возвращается при попытке забронировать уже начавшийся слот
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
