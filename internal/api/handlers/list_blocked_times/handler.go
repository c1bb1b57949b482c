package list_blocked_times

import (
	"net/http"
	"strconv"
	"time"

	"github.com/roltrader/autoperks/internal/api/handlers"
	"github.com/roltrader/autoperks/internal/domain"
	blockedModels "github.com/roltrader/autoperks/internal/service/blockedtimes/models"
)

const (
	msgInvalidTechnicianID = "некорректный ID мастера"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/blocked-times
// Query params: technicianId, date (оба опциональные)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &blockedModels.ListBlockedTimesRequest{}
	query := r.URL.Query()

	if technicianIDStr := query.Get("technicianId"); technicianIDStr != "" {
		technicianID, err := strconv.ParseInt(technicianIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /blocked-times - Invalid technician ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTechnicianID)
			return
		}
		req.TechnicianID = &technicianID
	}

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /blocked-times - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /blocked-times - Failed to list blocked times: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /blocked-times - Blocked times retrieved successfully: count=%d", len(result.BlockedTimes))
	handlers.RespondJSON(w, http.StatusOK, result)
}
