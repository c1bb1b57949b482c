package delete_blocked_time

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/roltrader/autoperks/internal/api/handlers"
	"github.com/roltrader/autoperks/internal/service/blockedtimes"
)

const (
	msgInvalidBlockedTimeID = "некорректный ID блокировки"
	msgNotFound             = "блокировка не найдена"
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

// Handle DELETE /api/v1/blocked-times/{blockedTimeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	blockedTimeIDStr := vars["blockedTimeId"]

	blockedTimeID, err := strconv.ParseInt(blockedTimeIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /blocked-times/{id} - Invalid blocked time ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockedTimeID)
		return
	}

	if err := h.service.Delete(r.Context(), blockedTimeID); err != nil {
		switch {
		case errors.Is(err, blockedtimes.ErrBlockedTimeNotFound):
			h.logger.Warn("DELETE /blocked-times/{id} - Blocked time not found: id=%d", blockedTimeID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /blocked-times/{id} - Failed to delete blocked time: id=%d, error=%v", blockedTimeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /blocked-times/{id} - Blocked time deleted successfully: id=%d", blockedTimeID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
