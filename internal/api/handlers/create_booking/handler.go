package create_booking

import (
	"errors"
	"net/http"

	"github.com/roltrader/autoperks/internal/api/handlers"
	"github.com/roltrader/autoperks/internal/api/middleware"
	createBooking "github.com/roltrader/autoperks/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
	msgTechnicianNotFound = "мастер не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgInvalidBookingDate = "некорректная дата бронирования"
	msgTooLateToBook      = "слишком поздно для бронирования этого слота"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Бронирования, созданные администратором, подтверждаются сразу
	if identity, ok := middleware.GetIdentity(r.Context()); ok && identity.IsAdmin() {
		useCaseReq.CreatedByAdmin = true
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: service_id=%d, date=%s, time=%s",
				req.ServiceID, req.BookingDate, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrTechnicianNotFound):
			h.logger.Warn("POST /bookings - Technician not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgTechnicianNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: service_id=%d, date=%s", req.ServiceID, req.BookingDate)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /bookings - Too late to book: service_id=%d, date=%s, time=%s",
				req.ServiceID, req.BookingDate, req.StartTime)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: service_id=%d, error=%v",
				req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, technician_id=%d",
		result.ID, result.TechnicianID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
