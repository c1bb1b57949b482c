package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/roltrader/autoperks/internal/domain"
	userRepo "github.com/roltrader/autoperks/internal/infra/storage/user"
	"github.com/roltrader/autoperks/internal/service/auth/models"
)

// Service сервис аутентификации
// Пароли хранятся только в виде bcrypt-хэшей, токены сессий - случайные UUID
type Service struct {
	userRepo     UserRepository
	timeProvider TimeProvider
	sessionTTL   time.Duration
	logger       Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(
	userRepo UserRepository,
	timeProvider TimeProvider,
	sessionTTL time.Duration,
	logger Logger,
) *Service {
	return &Service{
		userRepo:     userRepo,
		timeProvider: timeProvider,
		sessionTTL:   sessionTTL,
		logger:       logger,
	}
}

// Login проверяет учётные данные и выдаёт токен сессии
// При неверном email и неверном пароле возвращается одна и та же ошибка,
// чтобы не раскрывать существование учётной записи
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	s.logger.Info("Login: attempt for email=%s", email)

	if email == "" || req.Password == "" {
		s.logger.Warn("Login: empty email or password")
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: user not found for email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: password mismatch for email=%s", email)
		return nil, ErrInvalidCredentials
	}

	now := s.timeProvider.Now()
	session, err := s.userRepo.CreateSession(ctx, &domain.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		Role:      user.Role,
		ExpiresAt: now.Add(s.sessionTTL),
	})
	if err != nil {
		s.logger.Error("Login: failed to create session for user id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - failed to create session: %v", ErrInternal, err)
	}

	s.logger.Info("Login: successful login for user id=%d, role=%s", user.ID, user.Role)
	return &models.LoginResponse{
		Token:     session.Token,
		Role:      string(session.Role),
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// Logout удаляет сессию по токену
func (s *Service) Logout(ctx context.Context, token string) error {
	s.logger.Info("Logout: removing session")

	if err := s.userRepo.DeleteSession(ctx, token); err != nil {
		if errors.Is(err, userRepo.ErrSessionNotFound) {
			s.logger.Warn("Logout: session not found")
			return ErrSessionNotFound
		}
		s.logger.Error("Logout: repository error: %v", err)
		return fmt.Errorf("%w: Logout - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Logout: session removed")
	return nil
}

// Verify проверяет токен сессии и возвращает личность пользователя
func (s *Service) Verify(ctx context.Context, token string) (*domain.Identity, error) {
	session, err := s.userRepo.GetSession(ctx, token)
	if err != nil {
		if errors.Is(err, userRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("Verify: repository error: %v", err)
		return nil, fmt.Errorf("%w: Verify - repository error: %v", ErrInternal, err)
	}

	if session.IsExpired(s.timeProvider.Now()) {
		// Протухшую сессию сразу убираем, чтобы таблица не росла
		if err := s.userRepo.DeleteSession(ctx, token); err != nil && !errors.Is(err, userRepo.ErrSessionNotFound) {
			s.logger.Warn("Verify: failed to delete expired session: %v", err)
		}
		return nil, ErrSessionExpired
	}

	return &domain.Identity{
		UserID: session.UserID,
		Role:   session.Role,
	}, nil
}

// CleanupExpiredSessions удаляет все истёкшие сессии
// Вызывается периодически из фонового воркера
func (s *Service) CleanupExpiredSessions(ctx context.Context) error {
	deleted, err := s.userRepo.DeleteExpiredSessions(ctx)
	if err != nil {
		s.logger.Error("CleanupExpiredSessions: repository error: %v", err)
		return fmt.Errorf("%w: CleanupExpiredSessions - repository error: %v", ErrInternal, err)
	}

	if deleted > 0 {
		s.logger.Info("CleanupExpiredSessions: removed %d expired sessions", deleted)
	}
	return nil
}
