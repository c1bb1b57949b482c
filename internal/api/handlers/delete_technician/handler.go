package delete_technician

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
	msgNotFound            = "мастер не найден"
	msgRosterAtMinimum     = "состав мастеров уже минимального размера"
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

// Handle DELETE /api/v1/technicians/{technicianId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем technicianId из URL
	vars := mux.Vars(r)
	technicianIDStr := vars["technicianId"]

	technicianID, err := strconv.ParseInt(technicianIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /technicians/{id} - Invalid technician ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTechnicianID)
		return
	}

	if err := h.service.Delete(r.Context(), technicianID); err != nil {
		switch {
		case errors.Is(err, technicians.ErrTechnicianNotFound):
			h.logger.Warn("DELETE /technicians/{id} - Technician not found: technician_id=%d", technicianID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, technicians.ErrRosterAtMinimum):
			h.logger.Warn("DELETE /technicians/{id} - Roster at minimum: technician_id=%d", technicianID)
			handlers.RespondError(w, http.StatusConflict, msgRosterAtMinimum)

		default:
			h.logger.Error("DELETE /technicians/{id} - Failed to delete technician: technician_id=%d, error=%v", technicianID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /technicians/{id} - Technician deleted successfully: technician_id=%d", technicianID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
