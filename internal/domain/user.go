package domain

import "time"

// UserRole role of an authenticated user
type UserRole string

const (
	RoleClient UserRole = "client"
	RoleAdmin  UserRole = "admin"
)

// User represents an account that can log in.
// PasswordHash is a bcrypt hash; plaintext passwords are never stored or compared.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
}

// Session токен, выданный после успешного входа
type Session struct {
	Token     string
	UserID    int64
	Role      UserRole
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired проверяет, что срок действия сессии истёк на момент now
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Identity данные аутентифицированного пользователя, прокидываемые в контекст запроса
type Identity struct {
	UserID int64
	Role   UserRole
}

// IsAdmin returns true for admin accounts
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
