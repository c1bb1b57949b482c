package update_technician

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/roltrader/autoperks/internal/api/handlers"
	"github.com/roltrader/autoperks/internal/service/technicians"
	techModels "github.com/roltrader/autoperks/internal/service/technicians/models"
)

const (
	msgInvalidTechnicianID = "некорректный ID мастера"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgNotFound            = "мастер не найден"
	msgInvalidInput        = "некорректные данные мастера"
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

// Handle PATCH /api/v1/technicians/{technicianId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем technicianId из URL
	vars := mux.Vars(r)
	technicianIDStr := vars["technicianId"]

	technicianID, err := strconv.ParseInt(technicianIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /technicians/{id} - Invalid technician ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTechnicianID)
		return
	}

	var req techModels.UpdateTechnicianRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /technicians/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), technicianID, &req)
	if err != nil {
		switch {
		case errors.Is(err, technicians.ErrTechnicianNotFound):
			h.logger.Warn("PATCH /technicians/{id} - Technician not found: technician_id=%d", technicianID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, technicians.ErrInvalidInput):
			h.logger.Warn("PATCH /technicians/{id} - Invalid input: technician_id=%d, error=%v", technicianID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /technicians/{id} - Failed to update technician: technician_id=%d, error=%v", technicianID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /technicians/{id} - Technician updated successfully: technician_id=%d", technicianID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
