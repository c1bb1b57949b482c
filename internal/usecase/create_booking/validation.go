package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/roltrader/autoperks/internal/domain"
	"github.com/roltrader/autoperks/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TechnicianID != nil && *req.TechnicianID <= 0 {
		return fmt.Errorf("%w: technicianID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerPhone) == "" {
		return fmt.Errorf("%w: customerPhone is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(bookingDate time.Time, now time.Time) error {
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}
	return nil
}

// validateBookingTime проверяет, что сегодняшний слот ещё не начался
func validateBookingTime(bookingDate time.Time, startTime types.TimeString, now time.Time) error {
	if !isSameDay(bookingDate, now) {
		return nil
	}

	currentTime := types.NewTimeString(now)
	if !startTime.IsAfter(currentTime) {
		return ErrTooLateToBook
	}

	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
