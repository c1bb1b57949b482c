package booking

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/roltrader/autoperks/internal/domain"
	"github.com/roltrader/autoperks/pkg/dbmetrics"
	"github.com/roltrader/autoperks/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"technician_id",
	"service_id",
	"booking_date",
	"start_time",
	"duration_minutes",
	"status",
	"customer_name",
	"customer_email",
	"customer_phone",
	"service_name",
	"service_price",
	"vehicle_make",
	"vehicle_model",
	"vehicle_year",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её -
// usecase создания бронирования проверяет доступность слота и пишет в одной
// сериализуемой транзакции
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"technician_id",
			"service_id",
			"booking_date",
			"start_time",
			"duration_minutes",
			"status",
			"customer_name",
			"customer_email",
			"customer_phone",
			"service_name",
			"service_price",
			"vehicle_make",
			"vehicle_model",
			"vehicle_year",
			"notes",
		).
		Values(
			booking.TechnicianID,
			booking.ServiceID,
			booking.BookingDate,
			booking.StartTime,
			booking.DurationMinutes,
			booking.Status,
			booking.CustomerName,
			booking.CustomerEmail,
			booking.CustomerPhone,
			booking.ServiceName,
			booking.ServicePrice,
			booking.VehicleMake,
			booking.VehicleModel,
			booking.VehicleYear,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetWithFilter получает бронирования с гибкой фильтрацией
// Поддерживает фильтрацию по мастеру, конкретной дате, периоду и статусу.
// Отменённые бронирования исключаются, если не запрошены явно
// (статусом или IncludeCancelled) - для проверок занятости слотов
// отменённые записи не учитываются.
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings")

	if filter.TechnicianID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"technician_id": *filter.TechnicianID})
	}

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_date": *filter.Date})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": string(domain.StatusCancelled)})
	}

	if filter.Date != nil {
		// Для конкретной даты сортируем по времени начала
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("booking_date DESC, start_time DESC")
	}

	// Внутри транзакции выборка на конкретную дату блокирует строки -
	// защита от гонки при создании бронирования
	if dbmetrics.IsInTransaction(ctx) && filter.Date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// Update частично обновляет бронирование
// Обновляются только non-nil поля; валидация статусных переходов не выполняется
func (r *Repository) Update(ctx context.Context, id int64, update domain.BookingUpdate) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("updated_at", squirrel.Expr("NOW()"))

	fields := 0
	if update.TechnicianID != nil {
		updateBuilder = updateBuilder.Set("technician_id", *update.TechnicianID)
		fields++
	}
	if update.BookingDate != nil {
		updateBuilder = updateBuilder.Set("booking_date", *update.BookingDate)
		fields++
	}
	if update.StartTime != nil {
		updateBuilder = updateBuilder.Set("start_time", *update.StartTime)
		fields++
	}
	if update.DurationMinutes != nil {
		updateBuilder = updateBuilder.Set("duration_minutes", *update.DurationMinutes)
		fields++
	}
	if update.Status != nil {
		updateBuilder = updateBuilder.Set("status", *update.Status)
		fields++
	}
	if update.CustomerName != nil {
		updateBuilder = updateBuilder.Set("customer_name", *update.CustomerName)
		fields++
	}
	if update.CustomerEmail != nil {
		updateBuilder = updateBuilder.Set("customer_email", *update.CustomerEmail)
		fields++
	}
	if update.CustomerPhone != nil {
		updateBuilder = updateBuilder.Set("customer_phone", *update.CustomerPhone)
		fields++
	}
	if update.Notes != nil {
		updateBuilder = updateBuilder.Set("notes", *update.Notes)
		fields++
	}

	if fields == 0 {
		return nil, ErrEmptyUpdate
	}

	query, args, err := updateBuilder.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(bookingColumns)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// Cancel отменяет бронирование с указанием причины
// Запись сохраняется в истории, но перестает занимать слот
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Delete удаляет бронирование (физическое удаление, использовать осторожно)
// Рекомендуется использовать Cancel для сохранения истории
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
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
		return ErrBookingNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var bookingDate time.Time
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.TechnicianID,
		&booking.ServiceID,
		&bookingDate,
		&booking.StartTime,
		&booking.DurationMinutes,
		&booking.Status,
		&booking.CustomerName,
		&booking.CustomerEmail,
		&booking.CustomerPhone,
		&booking.ServiceName,
		&booking.ServicePrice,
		&booking.VehicleMake,
		&booking.VehicleModel,
		&booking.VehicleYear,
		&booking.Notes,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.BookingDate = bookingDate
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
