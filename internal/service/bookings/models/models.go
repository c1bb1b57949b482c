package models

import (
	"errors"
	"time"

	"github.com/roltrader/autoperks/internal/domain"
	"github.com/roltrader/autoperks/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidTime возвращается при некорректном формате времени
	ErrInvalidTime = errors.New("invalid time format")
)

// Request модели

// GetBookingsRequest запрос на получение бронирований с гибкой фильтрацией
type GetBookingsRequest struct {
	TechnicianID     *int64     `json:"technicianId,omitempty"`
	Date             *time.Time `json:"date,omitempty"`
	StartDate        *time.Time `json:"startDate,omitempty"`
	EndDate          *time.Time `json:"endDate,omitempty"`
	Status           *string    `json:"status,omitempty"`
	IncludeCancelled bool       `json:"includeCancelled,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		TechnicianID:     r.TechnicianID,
		Date:             r.Date,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateBookingRequest запрос на частичное обновление бронирования
type UpdateBookingRequest struct {
	TechnicianID    *int64  `json:"technicianId,omitempty"`
	BookingDate     *string `json:"bookingDate,omitempty"` // "2026-03-15"
	StartTime       *string `json:"startTime,omitempty"`   // "10:00"
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	Status          *string `json:"status,omitempty"`
	CustomerName    *string `json:"customerName,omitempty"`
	CustomerEmail   *string `json:"customerEmail,omitempty"`
	CustomerPhone   *string `json:"customerPhone,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// ToDomainUpdate конвертирует request в domain модель обновления
func (r *UpdateBookingRequest) ToDomainUpdate() (domain.BookingUpdate, error) {
	update := domain.BookingUpdate{
		TechnicianID:    r.TechnicianID,
		DurationMinutes: r.DurationMinutes,
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		Notes:           r.Notes,
	}

	if r.BookingDate != nil {
		date, err := time.Parse(domain.DateFormat, *r.BookingDate)
		if err != nil {
			return update, ErrInvalidTime
		}
		update.BookingDate = &date
	}

	if r.StartTime != nil {
		startTime, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return update, ErrInvalidTime
		}
		update.StartTime = &startTime
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return update, err
		}
		update.Status = &status
	}

	return update, nil
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64  `json:"id"`
	TechnicianID    int64  `json:"technicianId"`
	ServiceID       int64  `json:"serviceId"`
	BookingDate     string `json:"bookingDate"` // "2026-03-15"
	StartTime       string `json:"startTime"`   // "10:00"
	EndTime         string `json:"endTime"`     // "10:30"
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`

	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`

	// Денормализованные данные
	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`
	VehicleMake  *string `json:"vehicleMake,omitempty"`
	VehicleModel *string `json:"vehicleModel,omitempty"`
	VehicleYear  *string `json:"vehicleYear,omitempty"`
	Notes        *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		TechnicianID:       b.TechnicianID,
		ServiceID:          b.ServiceID,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		DurationMinutes:    b.DurationMinutes,
		Status:             string(b.Status),
		CustomerName:       b.CustomerName,
		CustomerEmail:      b.CustomerEmail,
		CustomerPhone:      b.CustomerPhone,
		ServiceName:        b.ServiceName,
		ServicePrice:       b.ServicePrice,
		VehicleMake:        b.VehicleMake,
		VehicleModel:       b.VehicleModel,
		VehicleYear:        b.VehicleYear,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if endTime, err := b.EndTime(); err == nil {
		resp.EndTime = endTime.String()
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !domain.IsValidStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
