package catalog

import (
	"context"
	"errors"
	"fmt"

	serviceRepo "github.com/roltrader/autoperks/internal/infra/storage/service"
	"github.com/roltrader/autoperks/internal/service/catalog/models"
)

// Service сервис каталога услуг
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// List возвращает активные услуги каталога
func (s *Service) List(ctx context.Context) (*models.ServiceListResponse, error) {
	s.logger.Info("List: fetching services")

	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d services", len(services))
	return models.FromDomainServiceList(services), nil
}

// GetByID получает услугу по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ServiceResponse, error) {
	s.logger.Info("GetByID: fetching service id=%d", id)

	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("GetByID: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByID: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(svc), nil
}
