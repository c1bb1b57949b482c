package domain

import (
	"time"

	"github.com/roltrader/autoperks/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// ValidStatuses все допустимые статусы бронирования
var ValidStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// IsValidStatus проверяет, что статус входит в список допустимых
func IsValidStatus(s BookingStatus) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Booking represents a scheduled service appointment
type Booking struct {
	ID              int64
	TechnicianID    int64
	ServiceID       int64
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64
	VehicleMake  *string
	VehicleModel *string
	VehicleYear  *string
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndTime returns the end of the occupied interval (start + duration)
func (b *Booking) EndTime() (types.TimeString, error) {
	return b.StartTime.AddMinutes(b.DurationMinutes)
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// OccupiesSlot returns true if the booking participates in conflict checks:
// cancelled bookings are kept for history but never occupy a slot
func (b *Booking) OccupiesSlot() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	TechnicianID     *int64         // Фильтр по мастеру (опционально)
	Date             *time.Time     // Конкретная дата (опционально)
	StartDate        *time.Time     // Начало периода (опционально)
	EndDate          *time.Time     // Конец периода (опционально)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool           // Включать ли отменённые бронирования
}

// BookingUpdate частичное обновление бронирования
// nil-поля не изменяются; статусные переходы не ограничены
type BookingUpdate struct {
	TechnicianID    *int64
	BookingDate     *time.Time
	StartTime       *types.TimeString
	DurationMinutes *int
	Status          *BookingStatus
	CustomerName    *string
	CustomerEmail   *string
	CustomerPhone   *string
	Notes           *string
}
