package delete_date_exception

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/roltrader/autoperks/internal/api/handlers"
	"github.com/roltrader/autoperks/internal/service/technicians"
)

const (
	msgInvalidTechnicianID = "некорректный ID мастера"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNotFound            = "исключение не найдено"
)

type Handler struct {
	service TechnicianService
	logger  Logger
}

func NewHandler(service TechnicianService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/technicians/{technicianId}/date-exceptions/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	technicianIDStr := vars["technicianId"]
	dateStr := vars["date"]

	technicianID, err := strconv.ParseInt(technicianIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /technicians/{id}/date-exceptions/{date} - Invalid technician ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTechnicianID)
		return
	}

	if err := h.service.ClearDateException(r.Context(), technicianID, dateStr); err != nil {
		switch {
		case errors.Is(err, technicians.ErrExceptionNotFound):
			h.logger.Warn("DELETE /technicians/{id}/date-exceptions/{date} - Exception not found: technician_id=%d, date=%s",
				technicianID, dateStr)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, technicians.ErrInvalidInput):
			h.logger.Warn("DELETE /technicians/{id}/date-exceptions/{date} - Invalid date: %s", dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("DELETE /technicians/{id}/date-exceptions/{date} - Failed to clear exception: technician_id=%d, error=%v",
				technicianID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /technicians/{id}/date-exceptions/{date} - Exception cleared successfully: technician_id=%d, date=%s",
		technicianID, dateStr)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
