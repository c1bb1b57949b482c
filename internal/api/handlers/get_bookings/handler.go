package get_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/roltrader/autoperks/internal/api/handlers"
	"github.com/roltrader/autoperks/internal/domain"
	"github.com/roltrader/autoperks/internal/service/bookings"
	bookingModels "github.com/roltrader/autoperks/internal/service/bookings/models"
)

const (
	msgInvalidTechnicianID = "некорректный ID мастера"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFilter       = "некорректные параметры фильтрации"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Query params: technicianId, date, startDate, endDate, status, includeCancelled (все опциональные)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &bookingModels.GetBookingsRequest{}
	query := r.URL.Query()

	if technicianIDStr := query.Get("technicianId"); technicianIDStr != "" {
		technicianID, err := strconv.ParseInt(technicianIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid technician ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTechnicianID)
			return
		}
		req.TechnicianID = &technicianID
	}

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	if startDateStr := query.Get("startDate"); startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid start date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &startDate
	}

	if endDateStr := query.Get("endDate"); endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid end date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &endDate
	}

	if statusStr := query.Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	if query.Get("includeCancelled") == "true" {
		req.IncludeCancelled = true
	}

	result, err := h.service.GetBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /bookings - Failed to get bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: count=%d", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
