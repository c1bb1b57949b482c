package logout

import (
	"errors"
	"net/http"

	"github.com/roltrader/autoperks/internal/api/handlers"
	"github.com/roltrader/autoperks/internal/api/middleware"
	"github.com/roltrader/autoperks/internal/service/auth"
)

const (
	msgMissingToken = "отсутствует токен сессии"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetToken(r.Context())
	if !ok {
		h.logger.Warn("POST /auth/logout - Missing session token")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		// Сессии уже нет - считаем logout успешным
		if !errors.Is(err, auth.ErrSessionNotFound) {
			h.logger.Error("POST /auth/logout - Failed to logout: %v", err)
			handlers.RespondInternalError(w)
			return
		}
	}

	h.logger.Info("POST /auth/logout - Logout successful")
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
