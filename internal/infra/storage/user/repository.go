package user

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/roltrader/autoperks/internal/domain"
	"github.com/roltrader/autoperks/pkg/dbmetrics"
	"github.com/roltrader/autoperks/pkg/psqlbuilder"
)

// Repository репозиторий учетных записей и сессий
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByEmail получает пользователя по email
// Возвращаемая модель содержит bcrypt-хэш пароля для проверки на сервисном слое
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "email", "password_hash", "role", "created_at",
	).
		From("users").
		Where(squirrel.Eq{"email": email}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	var u domain.User
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role, &createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - scan user: %v", ErrScanRow, err)
	}

	u.CreatedAt = createdAt.Time

	return &u, nil
}

// CreateSession создает сессию с выданным токеном
func (r *Repository) CreateSession(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("sessions").
		Columns("token", "user_id", "role", "expires_at").
		Values(session.Token, session.UserID, session.Role, session.ExpiresAt).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateSession - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: CreateSession - execute insert: %v", ErrExecQuery, err)
	}

	session.CreatedAt = createdAt.Time

	return session, nil
}

// GetSession получает сессию по токену
func (r *Repository) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"token", "user_id", "role", "expires_at", "created_at",
	).
		From("sessions").
		Where(squirrel.Eq{"token": token}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSession - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Session
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.Token, &s.UserID, &s.Role, &s.ExpiresAt, &createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSession - scan session: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time

	return &s, nil
}

// DeleteSession удаляет сессию (logout)
func (r *Repository) DeleteSession(ctx context.Context, token string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("sessions").
		Where(squirrel.Eq{"token": token}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteSession - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteSession - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteSession - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// DeleteExpiredSessions удаляет истекшие сессии
func (r *Repository) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("sessions").
		Where(squirrel.Expr("expires_at <= NOW()")).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpiredSessions - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpiredSessions - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpiredSessions - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}
