package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/roltrader/autoperks/internal/domain"
	technicianRepo "github.com/roltrader/autoperks/internal/infra/storage/technician"
	"github.com/roltrader/autoperks/pkg/types"
)

// Checker отвечает на вопрос "свободен ли мастер T на дату D в окне [start, end)?"
// Единственная реализация этой проверки в сервисе: календарь бронирования,
// подбор альтернатив и создание бронирования обязаны давать одинаковый ответ
// для одних и тех же данных
type Checker struct {
	technicianRepo  TechnicianRepository
	blockedTimeRepo BlockedTimeRepository
	bookingRepo     BookingRepository
	logger          Logger
}

// NewChecker создает новый checker доступности
func NewChecker(
	technicianRepo TechnicianRepository,
	blockedTimeRepo BlockedTimeRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *Checker {
	return &Checker{
		technicianRepo:  technicianRepo,
		blockedTimeRepo: blockedTimeRepo,
		bookingRepo:     bookingRepo,
		logger:          logger,
	}
}

// IsAvailable проверяет доступность мастера в окне [start, end) на дату date:
//  1. Неактивный мастер недоступен.
//  2. Исключение по дате с available=false закрывает весь день,
//     независимо от запрошенного окна.
//  3. Любая блокировка, пересекающая окно, делает мастера недоступным.
//
// Существующие бронирования здесь НЕ учитываются - см. HasConflict
func (c *Checker) IsAvailable(ctx context.Context, technicianID int64, date time.Time, start, end types.TimeString) (bool, error) {
	if !start.IsBefore(end) {
		return false, fmt.Errorf("%w: [%s, %s)", ErrInvalidTimeRange, start, end)
	}

	tech, err := c.technicianRepo.GetByID(ctx, technicianID)
	if err != nil {
		if errors.Is(err, technicianRepo.ErrTechnicianNotFound) {
			return false, ErrTechnicianNotFound
		}
		return false, fmt.Errorf("%w: IsAvailable - get technician: %v", ErrInternal, err)
	}

	if !tech.Active {
		return false, nil
	}

	exc, err := c.technicianRepo.GetDateException(ctx, technicianID, date)
	if err != nil && !errors.Is(err, technicianRepo.ErrExceptionNotFound) {
		return false, fmt.Errorf("%w: IsAvailable - get date exception: %v", ErrInternal, err)
	}
	if exc != nil && !exc.Available {
		return false, nil
	}

	blocks, err := c.blockedTimeRepo.GetByTechnicianAndDate(ctx, technicianID, date)
	if err != nil {
		return false, fmt.Errorf("%w: IsAvailable - get blocked times: %v", ErrInternal, err)
	}

	for _, block := range blocks {
		if block.Overlaps(start, end) {
			return false, nil
		}
	}

	return true, nil
}

// HasConflict проверяет, пересекается ли окно [start, end) с каким-либо
// не отмененным бронированием мастера на дату date
// Граничащие интервалы (конец одного равен началу другого) конфликтом не считаются
func (c *Checker) HasConflict(ctx context.Context, technicianID int64, date time.Time, start, end types.TimeString) (bool, error) {
	if !start.IsBefore(end) {
		return false, fmt.Errorf("%w: [%s, %s)", ErrInvalidTimeRange, start, end)
	}

	bookings, err := c.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		TechnicianID: &technicianID,
		Date:         &date,
	})
	if err != nil {
		return false, fmt.Errorf("%w: HasConflict - get bookings: %v", ErrInternal, err)
	}

	for _, booking := range bookings {
		if !booking.OccupiesSlot() {
			continue
		}

		bookingEnd, err := booking.EndTime()
		if err != nil {
			// Бронирование с некорректным временем не должно блокировать слот
			c.logger.Warn("HasConflict: booking id=%d has invalid start time %q, skipping", booking.ID, booking.StartTime)
			continue
		}

		if types.Overlaps(booking.StartTime, bookingEnd, start, end) {
			return true, nil
		}
	}

	return false, nil
}

// IsFree композитная проверка: мастер доступен и не занят бронированием
func (c *Checker) IsFree(ctx context.Context, technicianID int64, date time.Time, start, end types.TimeString) (bool, error) {
	available, err := c.IsAvailable(ctx, technicianID, date, start, end)
	if err != nil {
		return false, err
	}
	if !available {
		return false, nil
	}

	conflict, err := c.HasConflict(ctx, technicianID, date, start, end)
	if err != nil {
		return false, err
	}

	return !conflict, nil
}
