package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/roltrader/autoperks/internal/api/handlers"
	getAvailableSlots "github.com/roltrader/autoperks/internal/usecase/get_available_slots"
)

const (
	msgInvalidServiceID = "некорректный ID услуги"
	msgMissingServiceID = "ID услуги обязателен"
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgServiceNotFound  = "услуга не найдена"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
// Query params: serviceId (required), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем serviceId из query параметров
	serviceIDStr := r.URL.Query().Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /slots - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(serviceID, dateStr)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /slots - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /slots - Failed to get slots: service_id=%d, date=%s, error=%v",
				serviceID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /slots - Slots retrieved successfully: service_id=%d, date=%s, slots_count=%d",
		serviceID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
