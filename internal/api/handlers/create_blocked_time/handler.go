package create_blocked_time

import (
	"errors"
	"net/http"

	"github.com/roltrader/autoperks/internal/api/handlers"
	"github.com/roltrader/autoperks/internal/service/blockedtimes"
	blockedModels "github.com/roltrader/autoperks/internal/service/blockedtimes/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgTechnicianNotFound = "мастер не найден"
	msgInvalidTimeRange   = "время начала должно быть раньше времени окончания"
	msgInvalidInput       = "некорректные данные блокировки"
)

type Handler struct {
	service BlockedTimeService
	logger  Logger
}

func NewHandler(service BlockedTimeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/blocked-times
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req blockedModels.CreateBlockedTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blocked-times - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, blockedtimes.ErrTechnicianNotFound):
			h.logger.Warn("POST /blocked-times - Technician not found: technician_id=%d", req.TechnicianID)
			handlers.RespondNotFound(w, msgTechnicianNotFound)

		case errors.Is(err, blockedtimes.ErrInvalidTimeRange):
			h.logger.Warn("POST /blocked-times - Invalid time range: technician_id=%d, %s-%s",
				req.TechnicianID, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, blockedtimes.ErrInvalidInput):
			h.logger.Warn("POST /blocked-times - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /blocked-times - Failed to create blocked time: technician_id=%d, error=%v",
				req.TechnicianID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blocked-times - Blocked time created successfully: id=%d, technician_id=%d",
		result.ID, result.TechnicianID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
