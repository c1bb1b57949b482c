package technician

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/roltrader/autoperks/internal/domain"
	"github.com/roltrader/autoperks/pkg/dbmetrics"
	"github.com/roltrader/autoperks/pkg/psqlbuilder"
)

// Repository репозиторий состава мастеров и их исключений по датам
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория мастеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет мастера в состав
// Ограничения на размер состава проверяются сервисным слоем
func (r *Repository) Create(ctx context.Context, tech *domain.Technician) (*domain.Technician, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("technicians").
		Columns("name", "email", "phone", "active", "specialties", "color").
		Values(tech.Name, tech.Email, tech.Phone, tech.Active, pq.Array(tech.Specialties), tech.Color).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&tech.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	tech.CreatedAt = createdAt.Time
	tech.UpdatedAt = updatedAt.Time

	return tech, nil
}

// GetByID получает мастера по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Technician, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "name", "email", "phone", "active", "specialties", "color", "created_at", "updated_at",
	).
		From("technicians").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	tech, err := scanTechnician(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTechnicianNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan technician: %v", ErrScanRow, err)
	}

	return tech, nil
}

// List получает весь состав в порядке добавления
// Порядок важен: разрешение "первый свободный мастер" при выборе слота идет по нему
func (r *Repository) List(ctx context.Context, onlyActive bool) ([]*domain.Technician, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id", "name", "email", "phone", "active", "specialties", "color", "created_at", "updated_at",
	).
		From("technicians").
		OrderBy("id ASC")

	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"active": true})
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

	technicians := make([]*domain.Technician, 0)
	for rows.Next() {
		tech, err := scanTechnician(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		technicians = append(technicians, tech)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return technicians, nil
}

// Count возвращает общее количество мастеров (активных и неактивных)
func (r *Repository) Count(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("technicians").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Update частично обновляет мастера (только non-nil поля)
func (r *Repository) Update(ctx context.Context, id int64, update domain.TechnicianUpdate) (*domain.Technician, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("technicians").
		Set("updated_at", squirrel.Expr("NOW()"))

	fields := 0
	if update.Name != nil {
		updateBuilder = updateBuilder.Set("name", *update.Name)
		fields++
	}
	if update.Email != nil {
		updateBuilder = updateBuilder.Set("email", *update.Email)
		fields++
	}
	if update.Phone != nil {
		updateBuilder = updateBuilder.Set("phone", *update.Phone)
		fields++
	}
	if update.Active != nil {
		updateBuilder = updateBuilder.Set("active", *update.Active)
		fields++
	}
	if update.Specialties != nil {
		updateBuilder = updateBuilder.Set("specialties", pq.Array(*update.Specialties))
		fields++
	}
	if update.Color != nil {
		updateBuilder = updateBuilder.Set("color", *update.Color)
		fields++
	}

	if fields == 0 {
		return nil, ErrEmptyUpdate
	}

	query, args, err := updateBuilder.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, name, email, phone, active, specialties, color, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	tech, err := scanTechnician(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTechnicianNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - scan technician: %v", ErrScanRow, err)
	}

	return tech, nil
}

// Delete удаляет мастера
// Связанные блокировки и исключения удаляются каскадно (FK ON DELETE CASCADE),
// сервисный слой дополнительно проверяет нижнюю границу состава
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("technicians").
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
		return ErrTechnicianNotFound
	}

	return nil
}

// Исключения по датам

// UpsertDateException создает или обновляет исключение мастера на дату
// На одну пару (мастер, дата) существует не более одного исключения
func (r *Repository) UpsertDateException(ctx context.Context, exc *domain.DateException) (*domain.DateException, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("technician_date_exceptions").
		Columns("technician_id", "exception_date", "available", "reason").
		Values(exc.TechnicianID, exc.Date, exc.Available, exc.Reason).
		Suffix(`ON CONFLICT (technician_id, exception_date)
			DO UPDATE SET available = EXCLUDED.available, reason = EXCLUDED.reason
			RETURNING id, created_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertDateException - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&exc.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertDateException - execute insert: %v", ErrExecQuery, err)
	}

	exc.CreatedAt = createdAt.Time

	return exc, nil
}

// GetDateException получает исключение мастера на конкретную дату
func (r *Repository) GetDateException(ctx context.Context, technicianID int64, date time.Time) (*domain.DateException, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "technician_id", "exception_date", "available", "reason", "created_at",
	).
		From("technician_date_exceptions").
		Where(squirrel.Eq{"technician_id": technicianID, "exception_date": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDateException - build select query: %v", ErrBuildQuery, err)
	}

	exc, err := scanDateException(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrExceptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDateException - scan exception: %v", ErrScanRow, err)
	}

	return exc, nil
}

// ListDateExceptions получает все исключения мастера
func (r *Repository) ListDateExceptions(ctx context.Context, technicianID int64) ([]*domain.DateException, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "technician_id", "exception_date", "available", "reason", "created_at",
	).
		From("technician_date_exceptions").
		Where(squirrel.Eq{"technician_id": technicianID}).
		OrderBy("exception_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListDateExceptions - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDateExceptions - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	exceptions := make([]*domain.DateException, 0)
	for rows.Next() {
		exc, err := scanDateException(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListDateExceptions - scan row: %v", ErrScanRow, err)
		}
		exceptions = append(exceptions, exc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDateExceptions - rows error: %v", ErrScanRow, err)
	}

	return exceptions, nil
}

// DeleteDateException удаляет исключение мастера на дату
func (r *Repository) DeleteDateException(ctx context.Context, technicianID int64, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("technician_date_exceptions").
		Where(squirrel.Eq{"technician_id": technicianID, "exception_date": date}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteDateException - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteDateException - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteDateException - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrExceptionNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTechnician(row rowScanner) (*domain.Technician, error) {
	var tech domain.Technician
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&tech.ID,
		&tech.Name,
		&tech.Email,
		&tech.Phone,
		&tech.Active,
		pq.Array(&tech.Specialties),
		&tech.Color,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	tech.CreatedAt = createdAt.Time
	tech.UpdatedAt = updatedAt.Time

	return &tech, nil
}

func scanDateException(row rowScanner) (*domain.DateException, error) {
	var exc domain.DateException
	var createdAt sql.NullTime

	err := row.Scan(
		&exc.ID,
		&exc.TechnicianID,
		&exc.Date,
		&exc.Available,
		&exc.Reason,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	exc.CreatedAt = createdAt.Time

	return &exc, nil
}
