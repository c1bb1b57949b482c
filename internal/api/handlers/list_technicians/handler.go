package list_technicians

import (
	"net/http"

	"github.com/roltrader/autoperks/internal/api/handlers"
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

// Handle GET /api/v1/technicians
// Query params: onlyActive (optional, "true" для фильтрации по активным)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	onlyActive := r.URL.Query().Get("onlyActive") == "true"

	result, err := h.service.List(r.Context(), onlyActive)
	if err != nil {
		h.logger.Error("GET /technicians - Failed to list technicians: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /technicians - Technicians retrieved successfully: count=%d", len(result.Technicians))
	handlers.RespondJSON(w, http.StatusOK, result)
}
