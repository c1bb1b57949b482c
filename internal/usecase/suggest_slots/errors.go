package suggest_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("suggest_slots: invalid input")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("suggest_slots: service not found")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("suggest_slots: internal error")
)
