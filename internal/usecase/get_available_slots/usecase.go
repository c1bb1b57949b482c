package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/roltrader/autoperks/internal/domain"
	serviceRepo "github.com/roltrader/autoperks/internal/infra/storage/service"
)

// UseCase use case для получения сетки доступных слотов на день
type UseCase struct {
	techRepo    TechnicianRepository
	serviceRepo ServiceRepository
	checker     AvailabilityChecker
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	techRepo TechnicianRepository,
	serviceRepo ServiceRepository,
	checker AvailabilityChecker,
	logger Logger,
) *UseCase {
	return &UseCase{
		techRepo:    techRepo,
		serviceRepo: serviceRepo,
		checker:     checker,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, date=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу - её длительность определяет занимаемый интервал
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Получаем активных мастеров в порядке добавления
	technicians, err := uc.techRepo.List(ctx, true)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list technicians: %v", err)
		return nil, fmt.Errorf("%w: failed to list technicians: %v", ErrInternal, err)
	}

	// 4. Строим сетку слотов и собираем свободных мастеров для каждого
	slots, err := uc.computeSlots(ctx, technicians, req.Date, service.DurationMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to compute slots: %v", err)
		return nil, fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
	}

	available := 0
	for _, slot := range slots {
		if slot.Available {
			available++
		}
	}
	uc.logger.Info("GetAvailableSlots: %d/%d slots available for service=%d, date=%s",
		available, len(slots), req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		ServiceID:       req.ServiceID,
		DurationMinutes: service.DurationMinutes,
		Slots:           slots,
	}, nil
}
