package create_technician

import (
	"errors"
	"net/http"

	"github.com/roltrader/autoperks/internal/api/handlers"
	"github.com/roltrader/autoperks/internal/service/technicians"
	techModels "github.com/roltrader/autoperks/internal/service/technicians/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgRosterFull         = "состав мастеров уже максимального размера"
	msgInvalidInput       = "некорректные данные мастера"
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

// Handle POST /api/v1/technicians
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req techModels.CreateTechnicianRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /technicians - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, technicians.ErrRosterFull):
			h.logger.Warn("POST /technicians - Roster full")
			handlers.RespondError(w, http.StatusConflict, msgRosterFull)

		case errors.Is(err, technicians.ErrInvalidInput):
			h.logger.Warn("POST /technicians - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /technicians - Failed to create technician: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /technicians - Technician created successfully: technician_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
