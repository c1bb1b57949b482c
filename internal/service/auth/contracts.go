package auth

import (
	"context"
	"time"

	"github.com/roltrader/autoperks/internal/domain"
)

// UserRepository интерфейс репозитория пользователей и сессий
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	CreateSession(ctx context.Context, session *domain.Session) (*domain.Session, error)
	GetSession(ctx context.Context, token string) (*domain.Session, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteExpiredSessions(ctx context.Context) (int64, error)
}

// TimeProvider предоставляет текущее время (для тестируемости)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
