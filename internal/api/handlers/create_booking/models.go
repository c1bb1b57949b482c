package create_booking

import (
	"time"

	"github.com/roltrader/autoperks/internal/domain"
	createBooking "github.com/roltrader/autoperks/internal/usecase/create_booking"
	"github.com/roltrader/autoperks/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	TechnicianID  *int64  `json:"technicianId,omitempty"`
	ServiceID     int64   `json:"serviceId"`
	BookingDate   string  `json:"bookingDate"` // "2026-03-15"
	StartTime     string  `json:"startTime"`   // "10:00"
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	VehicleMake   *string `json:"vehicleMake,omitempty"`
	VehicleModel  *string `json:"vehicleModel,omitempty"`
	VehicleYear   *string `json:"vehicleYear,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	TechnicianID    int64   `json:"technicianId"`
	ServiceID       int64   `json:"serviceId"`
	BookingDate     string  `json:"bookingDate"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	CustomerName    string  `json:"customerName"`
	CustomerEmail   string  `json:"customerEmail"`
	CustomerPhone   string  `json:"customerPhone"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	VehicleMake     *string `json:"vehicleMake,omitempty"`
	VehicleModel    *string `json:"vehicleModel,omitempty"`
	VehicleYear     *string `json:"vehicleYear,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		TechnicianID:  r.TechnicianID,
		ServiceID:     r.ServiceID,
		Date:          bookingDate,
		StartTime:     startTime,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		VehicleMake:   r.VehicleMake,
		VehicleModel:  r.VehicleModel,
		VehicleYear:   r.VehicleYear,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		TechnicianID:    resp.TechnicianID,
		ServiceID:       resp.ServiceID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		CustomerName:    resp.CustomerName,
		CustomerEmail:   resp.CustomerEmail,
		CustomerPhone:   resp.CustomerPhone,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		VehicleMake:     resp.VehicleMake,
		VehicleModel:    resp.VehicleModel,
		VehicleYear:     resp.VehicleYear,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
