package set_date_exception

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
	msgInvalidInput        = "некорректные данные исключения"
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

// Handle PUT /api/v1/technicians/{technicianId}/date-exceptions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем technicianId из URL
	vars := mux.Vars(r)
	technicianIDStr := vars["technicianId"]

	technicianID, err := strconv.ParseInt(technicianIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /technicians/{id}/date-exceptions - Invalid technician ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTechnicianID)
		return
	}

	var req techModels.SetDateExceptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /technicians/{id}/date-exceptions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetDateException(r.Context(), technicianID, &req)
	if err != nil {
		switch {
		case errors.Is(err, technicians.ErrTechnicianNotFound):
			h.logger.Warn("PUT /technicians/{id}/date-exceptions - Technician not found: technician_id=%d", technicianID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, technicians.ErrInvalidInput):
			h.logger.Warn("PUT /technicians/{id}/date-exceptions - Invalid input: technician_id=%d, error=%v", technicianID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /technicians/{id}/date-exceptions - Failed to set exception: technician_id=%d, error=%v", technicianID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /technicians/{id}/date-exceptions - Exception set successfully: technician_id=%d, date=%s",
		technicianID, result.Date)
	handlers.RespondJSON(w, http.StatusOK, result)
}
