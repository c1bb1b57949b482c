package blockedtime

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/roltrader/autoperks/internal/domain"
	"github.com/roltrader/autoperks/pkg/dbmetrics"
	"github.com/roltrader/autoperks/pkg/psqlbuilder"
)

// Repository репозиторий блокировок времени мастеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает блокировку времени
// Пересечения с другими блокировками того же мастера допустимы -
// при проверке доступности окна объединяются
func (r *Repository) Create(ctx context.Context, block *domain.BlockedTime) (*domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_times").
		Columns("technician_id", "block_date", "start_time", "end_time", "reason").
		Values(block.TechnicianID, block.Date, block.StartTime, block.EndTime, block.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&block.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	block.CreatedAt = createdAt.Time

	return block, nil
}

// GetByID получает блокировку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "technician_id", "block_date", "start_time", "end_time", "reason", "created_at",
	).
		From("blocked_times").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	block, err := scanBlockedTime(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBlockedTimeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan blocked time: %v", ErrScanRow, err)
	}

	return block, nil
}

// List получает блокировки с опциональной фильтрацией по мастеру и дате
func (r *Repository) List(ctx context.Context, technicianID *int64, date *time.Time) ([]*domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id", "technician_id", "block_date", "start_time", "end_time", "reason", "created_at",
	).
		From("blocked_times").
		OrderBy("block_date ASC, start_time ASC")

	if technicianID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"technician_id": *technicianID})
	}
	if date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"block_date": *date})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]*domain.BlockedTime, 0)
	for rows.Next() {
		block, err := scanBlockedTime(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		blocks = append(blocks, block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}

// GetByTechnicianAndDate получает блокировки мастера на конкретную дату
// Основной запрос проверки доступности
func (r *Repository) GetByTechnicianAndDate(ctx context.Context, technicianID int64, date time.Time) ([]*domain.BlockedTime, error) {
	return r.List(ctx, &technicianID, &date)
}

// Delete удаляет блокировку
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_times").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockedTimeNotFound
	}

	return nil
}

// DeleteByTechnician удаляет все блокировки мастера
// Вызывается при удалении мастера из состава
func (r *Repository) DeleteByTechnician(ctx context.Context, technicianID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_times").
		Where(squirrel.Eq{"technician_id": technicianID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByTechnician - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByTechnician - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBlockedTime(row rowScanner) (*domain.BlockedTime, error) {
	var block domain.BlockedTime
	var createdAt sql.NullTime

	err := row.Scan(
		&block.ID,
		&block.TechnicianID,
		&block.Date,
		&block.StartTime,
		&block.EndTime,
		&block.Reason,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	block.CreatedAt = createdAt.Time

	return &block, nil
}
