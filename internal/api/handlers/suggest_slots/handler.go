package suggest_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/roltrader/autoperks/internal/api/handlers"
	"github.com/roltrader/autoperks/internal/domain"
	suggestSlots "github.com/roltrader/autoperks/internal/usecase/suggest_slots"
)

const (
	msgInvalidServiceID = "некорректный ID услуги"
	msgMissingServiceID = "ID услуги обязателен"
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidLimit     = "некорректный лимит предложений"
	msgServiceNotFound  = "услуга не найдена"
)

type Handler struct {
	useCase SuggestSlotsUseCase
	logger  Logger
}

func NewHandler(useCase SuggestSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/suggestions
// Query params: serviceId (required), date (required, YYYY-MM-DD), limit (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем serviceId из query параметров
	serviceIDStr := r.URL.Query().Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /slots/suggestions - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /slots/suggestions - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	// Извлекаем date из query параметров - начало окна поиска
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /slots/suggestions - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	fromDate, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /slots/suggestions - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Извлекаем limit из query параметров (опционально)
	maxSuggestions := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			h.logger.Warn("GET /slots/suggestions - Invalid limit: %s", limitStr)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		maxSuggestions = limit
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &suggestSlots.Request{
		ServiceID:      serviceID,
		FromDate:       fromDate,
		MaxSuggestions: maxSuggestions,
	})
	if err != nil {
		switch {
		case errors.Is(err, suggestSlots.ErrServiceNotFound):
			h.logger.Warn("GET /slots/suggestions - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, suggestSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots/suggestions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidServiceID)

		default:
			h.logger.Error("GET /slots/suggestions - Failed to suggest slots: service_id=%d, error=%v",
				serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /slots/suggestions - Suggestions retrieved successfully: service_id=%d, count=%d",
		serviceID, len(result.Suggestions))
	handlers.RespondJSON(w, http.StatusOK, response)
}
