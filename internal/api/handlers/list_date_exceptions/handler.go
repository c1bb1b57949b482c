package list_date_exceptions

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/roltrader/autoperks/internal/api/handlers"
)

const (
	msgInvalidTechnicianID = "некорректный ID мастера"
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

// Handle GET /api/v1/technicians/{technicianId}/date-exceptions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем technicianId из URL
	vars := mux.Vars(r)
	technicianIDStr := vars["technicianId"]

	technicianID, err := strconv.ParseInt(technicianIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /technicians/{id}/date-exceptions - Invalid technician ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTechnicianID)
		return
	}

	result, err := h.service.ListDateExceptions(r.Context(), technicianID)
	if err != nil {
		h.logger.Error("GET /technicians/{id}/date-exceptions - Failed to list exceptions: technician_id=%d, error=%v",
			technicianID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /technicians/{id}/date-exceptions - Exceptions retrieved successfully: technician_id=%d, count=%d",
		technicianID, len(result.Exceptions))
	handlers.RespondJSON(w, http.StatusOK, result)
}
