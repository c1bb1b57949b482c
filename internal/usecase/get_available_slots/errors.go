package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("get_available_slots: internal error")
)
