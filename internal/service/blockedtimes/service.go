package blockedtimes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/roltrader/autoperks/internal/domain"
	blockedRepo "github.com/roltrader/autoperks/internal/infra/storage/blockedtime"
	techRepo "github.com/roltrader/autoperks/internal/infra/storage/technician"
	"github.com/roltrader/autoperks/internal/service/blockedtimes/models"
	"github.com/roltrader/autoperks/pkg/types"
)

// Service сервис для управления блокировками времени мастеров
type Service struct {
	blockedRepo BlockedTimeRepository
	techRepo    TechnicianRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(
	blockedRepo BlockedTimeRepository,
	techRepo TechnicianRepository,
	logger Logger,
) *Service {
	return &Service{
		blockedRepo: blockedRepo,
		techRepo:    techRepo,
		logger:      logger,
	}
}

// Create создаёт блокировку времени мастера
// Интервал блокировки полуоткрытый [start, end): начало строго раньше конца
func (s *Service) Create(ctx context.Context, req *models.CreateBlockedTimeRequest) (*models.BlockedTimeResponse, error) {
	s.logger.Info("Create: blocking technician id=%d, date=%s, %s-%s",
		req.TechnicianID, req.Date, req.StartTime, req.EndTime)

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		s.logger.Warn("Create: invalid date=%s", req.Date)
		return nil, fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		s.logger.Warn("Create: invalid start time=%s", req.StartTime)
		return nil, fmt.Errorf("%w: invalid start time format, expected HH:MM", ErrInvalidInput)
	}

	endTime, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		s.logger.Warn("Create: invalid end time=%s", req.EndTime)
		return nil, fmt.Errorf("%w: invalid end time format, expected HH:MM", ErrInvalidInput)
	}

	if !startTime.IsBefore(endTime) {
		s.logger.Warn("Create: invalid time range %s-%s for technician id=%d",
			req.StartTime, req.EndTime, req.TechnicianID)
		return nil, ErrInvalidTimeRange
	}

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		s.logger.Warn("Create: empty reason for technician id=%d", req.TechnicianID)
		return nil, fmt.Errorf("%w: reason is required", ErrInvalidInput)
	}
	if len(reason) > domain.MaxReasonLength {
		s.logger.Warn("Create: reason too long for technician id=%d", req.TechnicianID)
		return nil, fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	if _, err := s.techRepo.GetByID(ctx, req.TechnicianID); err != nil {
		if errors.Is(err, techRepo.ErrTechnicianNotFound) {
			s.logger.Warn("Create: technician id=%d not found", req.TechnicianID)
			return nil, ErrTechnicianNotFound
		}
		s.logger.Error("Create: repository error for technician id=%d: %v", req.TechnicianID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	block, err := s.blockedRepo.Create(ctx, &domain.BlockedTime{
		TechnicianID: req.TechnicianID,
		Date:         date,
		StartTime:    startTime,
		EndTime:      endTime,
		Reason:       reason,
	})
	if err != nil {
		s.logger.Error("Create: repository error for technician id=%d: %v", req.TechnicianID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully blocked time id=%d for technician id=%d", block.ID, block.TechnicianID)
	return models.FromDomainBlockedTime(block), nil
}

// GetByID получает блокировку по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BlockedTimeResponse, error) {
	s.logger.Info("GetByID: fetching blocked time id=%d", id)

	block, err := s.blockedRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, blockedRepo.ErrBlockedTimeNotFound) {
			s.logger.Warn("GetByID: blocked time id=%d not found", id)
			return nil, ErrBlockedTimeNotFound
		}
		s.logger.Error("GetByID: repository error for blocked time id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlockedTime(block), nil
}

// List возвращает блокировки с фильтрацией по мастеру и дате
func (s *Service) List(ctx context.Context, req *models.ListBlockedTimesRequest) (*models.BlockedTimeListResponse, error) {
	s.logger.Info("List: fetching blocked times, technician=%v, date=%v", req.TechnicianID, req.Date)

	blocks, err := s.blockedRepo.List(ctx, req.TechnicianID, req.Date)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d blocked times", len(blocks))
	return models.FromDomainBlockedTimeList(blocks), nil
}

// Delete удаляет блокировку
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: removing blocked time id=%d", id)

	if err := s.blockedRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockedRepo.ErrBlockedTimeNotFound) {
			s.logger.Warn("Delete: blocked time id=%d not found", id)
			return ErrBlockedTimeNotFound
		}
		s.logger.Error("Delete: repository error for blocked time id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully removed blocked time id=%d", id)
	return nil
}
