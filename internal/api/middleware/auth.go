package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/roltrader/autoperks/internal/api/handlers"
	"github.com/roltrader/autoperks/internal/domain"
)

const (
	msgMissingToken   = "отсутствует токен сессии"
	msgInvalidSession = "сессия недействительна или истекла"
	msgAdminOnly      = "требуются права администратора"
)

type contextKey string

const (
	identityKey contextKey = "identity"
	tokenKey    contextKey = "token"
)

// AuthService интерфейс проверки токена сессии
type AuthService interface {
	Verify(ctx context.Context, token string) (*domain.Identity, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth проверяет Bearer токен и кладёт личность пользователя в контекст запроса
func Auth(service AuthService, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				logger.Warn("Auth: missing bearer token for %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			identity, err := service.Verify(r.Context(), token)
			if err != nil {
				logger.Warn("Auth: invalid session for %s %s: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidSession)
				return
			}

			ctx := WithIdentity(r.Context(), identity)
			ctx = context.WithValue(ctx, tokenKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin пропускает только пользователей с ролью admin
// Должен стоять после Auth в цепочке
func RequireAdmin(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := GetIdentity(r.Context())
			if !ok || !identity.IsAdmin() {
				logger.Warn("RequireAdmin: access denied for %s %s", r.Method, r.URL.Path)
				handlers.RespondForbidden(w, msgAdminOnly)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// WithIdentity кладёт личность пользователя в контекст
func WithIdentity(ctx context.Context, identity *domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentity возвращает личность пользователя из контекста
func GetIdentity(ctx context.Context) (*domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*domain.Identity)
	return identity, ok
}

// GetToken возвращает токен сессии из контекста
func GetToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok
}

func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
