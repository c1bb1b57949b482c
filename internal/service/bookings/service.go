package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	bookingRepo "github.com/roltrader/autoperks/internal/infra/storage/booking"
	"github.com/roltrader/autoperks/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
// Создание бронирования живёт в отдельном usecase с транзакционной проверкой слота
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetBookings получает бронирования с гибкой фильтрацией
//
// Примеры использования:
// - Бронирования мастера на дату: указать TechnicianID и Date
// - Бронирования за период: StartDate и EndDate
// - Только подтверждённые: указать Status = "confirmed"
// - Включая отменённые: IncludeCancelled = true
func (s *Service) GetBookings(ctx context.Context, req *models.GetBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := "GetBookings: fetching bookings"
	if req.TechnicianID != nil {
		logMsg += fmt.Sprintf(", technician=%d", *req.TechnicianID)
	}
	if req.Date != nil {
		logMsg += fmt.Sprintf(", date=%s", req.Date.Format("2006-01-02"))
	}
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s",
			req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeCancelled {
		logMsg += ", includeCancelled=true"
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetBookings: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBookings: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Update частично обновляет бронирование
// Статусные переходы не ограничены: админ может выставить любой допустимый статус
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Update: updating booking id=%d", id)

	update, err := req.ToDomainUpdate()
	if err != nil {
		s.logger.Warn("Update: invalid update for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	booking, err := s.bookingRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Update: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		if errors.Is(err, bookingRepo.ErrEmptyUpdate) {
			s.logger.Warn("Update: empty update for booking id=%d", id)
			return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
		}
		s.logger.Error("Update: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет бронирование
// Отменённое бронирование сохраняется в истории, но перестаёт занимать слот
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d", id)

	reason := strings.TrimSpace(req.CancellationReason)
	if reason == "" {
		s.logger.Warn("Cancel: empty cancellation reason for booking id=%d", id)
		return fmt.Errorf("%w: cancellation reason is required", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", id, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, id, reason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", id)
	return nil
}
