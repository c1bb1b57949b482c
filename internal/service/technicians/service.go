package technicians

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/roltrader/autoperks/internal/domain"
	techRepo "github.com/roltrader/autoperks/internal/infra/storage/technician"
	"github.com/roltrader/autoperks/internal/service/technicians/models"
)

// Service сервис для управления составом мастеров
// Поддерживает инвариант размера состава: от MinTechnicians до MaxTechnicians включительно
type Service struct {
	techRepo    TechnicianRepository
	blockedRepo BlockedTimeRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса мастеров
func NewService(
	techRepo TechnicianRepository,
	blockedRepo BlockedTimeRepository,
	logger Logger,
) *Service {
	return &Service{
		techRepo:    techRepo,
		blockedRepo: blockedRepo,
		logger:      logger,
	}
}

// Create добавляет нового мастера в состав
// Отклоняет запрос, если состав уже достиг максимального размера
func (s *Service) Create(ctx context.Context, req *models.CreateTechnicianRequest) (*models.TechnicianResponse, error) {
	s.logger.Info("Create: adding technician name=%s", req.Name)

	if strings.TrimSpace(req.Name) == "" {
		s.logger.Warn("Create: empty technician name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	count, err := s.techRepo.Count(ctx)
	if err != nil {
		s.logger.Error("Create: failed to count technicians: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	// Граница проверяется по всем мастерам, включая неактивных
	if count >= domain.MaxTechnicians {
		s.logger.Warn("Create: roster full, count=%d, max=%d", count, domain.MaxTechnicians)
		return nil, ErrRosterFull
	}

	tech, err := s.techRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully added technician id=%d", tech.ID)
	return models.FromDomainTechnician(tech), nil
}

// GetByID получает мастера по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.TechnicianResponse, error) {
	s.logger.Info("GetByID: fetching technician id=%d", id)

	tech, err := s.techRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, techRepo.ErrTechnicianNotFound) {
			s.logger.Warn("GetByID: technician id=%d not found", id)
			return nil, ErrTechnicianNotFound
		}
		s.logger.Error("GetByID: repository error for technician id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTechnician(tech), nil
}

// List возвращает состав мастеров в порядке добавления
func (s *Service) List(ctx context.Context, onlyActive bool) (*models.TechnicianListResponse, error) {
	s.logger.Info("List: fetching technicians, onlyActive=%v", onlyActive)

	techs, err := s.techRepo.List(ctx, onlyActive)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d technicians", len(techs))
	return models.FromDomainTechnicianList(techs), nil
}

// Update частично обновляет данные мастера
// Границы размера состава здесь не проверяются: обновление не меняет количество
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateTechnicianRequest) (*models.TechnicianResponse, error) {
	s.logger.Info("Update: updating technician id=%d", id)

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		s.logger.Warn("Update: empty technician name for id=%d", id)
		return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
	}

	tech, err := s.techRepo.Update(ctx, id, req.ToDomainUpdate())
	if err != nil {
		if errors.Is(err, techRepo.ErrTechnicianNotFound) {
			s.logger.Warn("Update: technician id=%d not found", id)
			return nil, ErrTechnicianNotFound
		}
		if errors.Is(err, techRepo.ErrEmptyUpdate) {
			s.logger.Warn("Update: empty update for technician id=%d", id)
			return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
		}
		s.logger.Error("Update: repository error for technician id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated technician id=%d", id)
	return models.FromDomainTechnician(tech), nil
}

// Delete удаляет мастера из состава
// Отклоняет запрос, если состав уже на минимальном размере
// Каскадно удаляет блокировки и исключения по датам мастера
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: removing technician id=%d", id)

	if _, err := s.techRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, techRepo.ErrTechnicianNotFound) {
			s.logger.Warn("Delete: technician id=%d not found", id)
			return ErrTechnicianNotFound
		}
		s.logger.Error("Delete: repository error for technician id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	count, err := s.techRepo.Count(ctx)
	if err != nil {
		s.logger.Error("Delete: failed to count technicians: %v", err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if count <= domain.MinTechnicians {
		s.logger.Warn("Delete: roster at minimum, count=%d, min=%d", count, domain.MinTechnicians)
		return ErrRosterAtMinimum
	}

	// Сначала чистим блокировки, чтобы они не остались висеть без мастера
	if err := s.blockedRepo.DeleteByTechnician(ctx, id); err != nil {
		s.logger.Error("Delete: failed to purge blocked times for technician id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - failed to purge blocked times: %v", ErrInternal, err)
	}

	if err := s.techRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, techRepo.ErrTechnicianNotFound) {
			s.logger.Warn("Delete: technician id=%d not found during deletion", id)
			return ErrTechnicianNotFound
		}
		s.logger.Error("Delete: repository error for technician id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully removed technician id=%d", id)
	return nil
}

// SetDateException устанавливает исключение по дате для мастера
// Повторный вызов на ту же дату перезаписывает существующее исключение
func (s *Service) SetDateException(ctx context.Context, technicianID int64, req *models.SetDateExceptionRequest) (*models.DateExceptionResponse, error) {
	s.logger.Info("SetDateException: technician id=%d, date=%s, available=%v", technicianID, req.Date, req.Available)

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		s.logger.Warn("SetDateException: invalid date=%s for technician id=%d", req.Date, technicianID)
		return nil, fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	if _, err := s.techRepo.GetByID(ctx, technicianID); err != nil {
		if errors.Is(err, techRepo.ErrTechnicianNotFound) {
			s.logger.Warn("SetDateException: technician id=%d not found", technicianID)
			return nil, ErrTechnicianNotFound
		}
		s.logger.Error("SetDateException: repository error for technician id=%d: %v", technicianID, err)
		return nil, fmt.Errorf("%w: SetDateException - repository error: %v", ErrInternal, err)
	}

	exc, err := s.techRepo.UpsertDateException(ctx, &domain.DateException{
		TechnicianID: technicianID,
		Date:         date,
		Available:    req.Available,
		Reason:       req.Reason,
	})
	if err != nil {
		s.logger.Error("SetDateException: repository error for technician id=%d: %v", technicianID, err)
		return nil, fmt.Errorf("%w: SetDateException - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetDateException: successfully set exception id=%d for technician id=%d", exc.ID, technicianID)
	return models.FromDomainDateException(exc), nil
}

// ListDateExceptions возвращает исключения по датам мастера
func (s *Service) ListDateExceptions(ctx context.Context, technicianID int64) (*models.DateExceptionListResponse, error) {
	s.logger.Info("ListDateExceptions: technician id=%d", technicianID)

	excs, err := s.techRepo.ListDateExceptions(ctx, technicianID)
	if err != nil {
		s.logger.Error("ListDateExceptions: repository error for technician id=%d: %v", technicianID, err)
		return nil, fmt.Errorf("%w: ListDateExceptions - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDateExceptionList(excs), nil
}

// ClearDateException снимает исключение по дате у мастера
func (s *Service) ClearDateException(ctx context.Context, technicianID int64, dateStr string) error {
	s.logger.Info("ClearDateException: technician id=%d, date=%s", technicianID, dateStr)

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		s.logger.Warn("ClearDateException: invalid date=%s for technician id=%d", dateStr, technicianID)
		return fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	if err := s.techRepo.DeleteDateException(ctx, technicianID, date); err != nil {
		if errors.Is(err, techRepo.ErrExceptionNotFound) {
			s.logger.Warn("ClearDateException: exception not found for technician id=%d, date=%s", technicianID, dateStr)
			return ErrExceptionNotFound
		}
		s.logger.Error("ClearDateException: repository error for technician id=%d: %v", technicianID, err)
		return fmt.Errorf("%w: ClearDateException - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ClearDateException: successfully cleared exception for technician id=%d, date=%s", technicianID, dateStr)
	return nil
}
