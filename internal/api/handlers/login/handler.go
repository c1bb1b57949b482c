package login

import (
	"errors"
	"net/http"

	"github.com/roltrader/autoperks/internal/api/handlers"
	"github.com/roltrader/autoperks/internal/service/auth"
	authModels "github.com/roltrader/autoperks/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCredentials = "неверный email или пароль"
	msgInvalidInput       = "email и пароль обязательны"
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

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req authModels.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Invalid credentials")
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, auth.ErrInvalidInput):
			h.logger.Warn("POST /auth/login - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /auth/login - Failed to login: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - Login successful: role=%s", result.Role)
	handlers.RespondJSON(w, http.StatusOK, result)
}
