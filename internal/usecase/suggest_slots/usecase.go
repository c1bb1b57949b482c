package suggest_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/roltrader/autoperks/internal/domain"
	serviceRepo "github.com/roltrader/autoperks/internal/infra/storage/service"
)

// UseCase use case для подбора ближайших свободных слотов
type UseCase struct {
	techRepo     TechnicianRepository
	serviceRepo  ServiceRepository
	checker      AvailabilityChecker
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	techRepo TechnicianRepository,
	serviceRepo ServiceRepository,
	checker AvailabilityChecker,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		techRepo:     techRepo,
		serviceRepo:  serviceRepo,
		checker:      checker,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет use case подбора ближайших свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SuggestSlots: service=%d, fromDate=%s, maxSuggestions=%d",
		req.ServiceID, req.FromDate.Format(domain.DateFormat), req.MaxSuggestions)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SuggestSlots: validation failed: %v", err)
		return nil, err
	}

	maxSuggestions := resolveMaxSuggestions(req.MaxSuggestions)

	// 2. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("SuggestSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("SuggestSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Получаем активных мастеров в порядке добавления
	technicians, err := uc.techRepo.List(ctx, true)
	if err != nil {
		uc.logger.Error("SuggestSlots: failed to list technicians: %v", err)
		return nil, fmt.Errorf("%w: failed to list technicians: %v", ErrInternal, err)
	}

	// 4. Сканируем окно дней начиная с запрошенной даты и собираем ближайшие свободные слоты
	suggestions, err := uc.scanForSuggestions(ctx, technicians, service.DurationMinutes, maxSuggestions, req.FromDate, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Error("SuggestSlots: failed to scan for suggestions: %v", err)
		return nil, fmt.Errorf("%w: failed to scan for suggestions: %v", ErrInternal, err)
	}

	uc.logger.Info("SuggestSlots: found %d suggestions for service=%d", len(suggestions), req.ServiceID)

	return &Response{
		ServiceID:   req.ServiceID,
		Suggestions: suggestions,
	}, nil
}
