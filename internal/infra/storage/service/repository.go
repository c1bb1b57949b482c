package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/roltrader/autoperks/internal/domain"
	"github.com/roltrader/autoperks/pkg/dbmetrics"
	"github.com/roltrader/autoperks/pkg/psqlbuilder"
)

// Repository репозиторий каталога услуг
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает услугу по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "name", "description", "price", "duration_minutes", "active", "created_at", "updated_at",
	).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	svc, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	return svc, nil
}

// List получает каталог услуг (активные, в порядке добавления)
func (r *Repository) List(ctx context.Context) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "name", "description", "price", "duration_minutes", "active", "created_at", "updated_at",
	).
		From("services").
		Where(squirrel.Eq{"active": true}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		services = append(services, svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanService(row rowScanner) (*domain.Service, error) {
	var svc domain.Service
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&svc.ID,
		&svc.Name,
		&svc.Description,
		&svc.Price,
		&svc.DurationMinutes,
		&svc.Active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	svc.CreatedAt = createdAt.Time
	svc.UpdatedAt = updatedAt.Time

	return &svc, nil
}
