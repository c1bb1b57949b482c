package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/roltrader/autoperks/internal/domain"
	serviceRepo "github.com/roltrader/autoperks/internal/infra/storage/service"
	techRepo "github.com/roltrader/autoperks/internal/infra/storage/technician"
	"github.com/roltrader/autoperks/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	techRepo     TechnicianRepository
	serviceRepo  ServiceRepository
	checker      AvailabilityChecker
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	techRepo TechnicianRepository,
	serviceRepo ServiceRepository,
	checker AvailabilityChecker,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		techRepo:     techRepo,
		serviceRepo:  serviceRepo,
		checker:      checker,
		txManager:    txManager,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка слота и вставка выполняются в одной сериализуемой транзакции,
// поэтому два конкурентных запроса на один слот не создадут пересекающихся бронирований
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%d, date=%s, time=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация даты и времени
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}
	if err := validateBookingTime(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateBooking: booking time validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем услугу - её длительность определяет занимаемый интервал
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	slotEnd, err := req.StartTime.AddMinutes(service.DurationMinutes)
	if err != nil {
		slotEnd = types.TimeString("23:59")
	}

	// Бронирования от администратора не требуют подтверждения
	status := domain.StatusPending
	if req.CreatedByAdmin {
		status = domain.StatusConfirmed
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Определяем мастера: заданный в запросе или первый свободный
		technicianID, err := uc.resolveTechnician(txCtx, req, slotEnd)
		if err != nil {
			return err
		}

		// 5.2. Создаем бронирование с денормализацией данных услуги
		booking := &domain.Booking{
			TechnicianID:    technicianID,
			ServiceID:       req.ServiceID,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: service.DurationMinutes,
			Status:          status,
			CustomerName:    req.CustomerName,
			CustomerEmail:   req.CustomerEmail,
			CustomerPhone:   req.CustomerPhone,
			ServiceName:     service.Name,
			ServicePrice:    service.Price,
			VehicleMake:     req.VehicleMake,
			VehicleModel:    req.VehicleModel,
			VehicleYear:     req.VehicleYear,
			Notes:           req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d for technician id=%d",
		result.ID, result.TechnicianID)

	return &Response{
		ID:              result.ID,
		TechnicianID:    result.TechnicianID,
		ServiceID:       result.ServiceID,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		CustomerName:    result.CustomerName,
		CustomerEmail:   result.CustomerEmail,
		CustomerPhone:   result.CustomerPhone,
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		VehicleMake:     result.VehicleMake,
		VehicleModel:    result.VehicleModel,
		VehicleYear:     result.VehicleYear,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// resolveTechnician возвращает ID мастера для бронирования
// Если мастер задан в запросе - проверяет, что он существует и свободен на слоте
// Если не задан - берёт первого свободного мастера в порядке добавления в состав
func (uc *UseCase) resolveTechnician(ctx context.Context, req *Request, slotEnd types.TimeString) (int64, error) {
	if req.TechnicianID != nil {
		if _, err := uc.techRepo.GetByID(ctx, *req.TechnicianID); err != nil {
			if errors.Is(err, techRepo.ErrTechnicianNotFound) {
				uc.logger.Warn("CreateBooking: technician id=%d not found", *req.TechnicianID)
				return 0, ErrTechnicianNotFound
			}
			uc.logger.Error("CreateBooking: failed to get technician id=%d: %v", *req.TechnicianID, err)
			return 0, fmt.Errorf("%w: failed to get technician: %v", ErrInternal, err)
		}

		free, err := uc.checker.IsFree(ctx, *req.TechnicianID, req.Date, req.StartTime, slotEnd)
		if err != nil {
			uc.logger.Error("CreateBooking: availability check failed for technician id=%d: %v", *req.TechnicianID, err)
			return 0, fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
		}
		if !free {
			uc.logger.Warn("CreateBooking: slot not available for technician id=%d, date=%s, time=%s",
				*req.TechnicianID, req.Date.Format(domain.DateFormat), req.StartTime)
			return 0, ErrSlotNotAvailable
		}

		return *req.TechnicianID, nil
	}

	technicians, err := uc.techRepo.List(ctx, true)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list technicians: %v", err)
		return 0, fmt.Errorf("%w: failed to list technicians: %v", ErrInternal, err)
	}

	for _, tech := range technicians {
		free, err := uc.checker.IsFree(ctx, tech.ID, req.Date, req.StartTime, slotEnd)
		if err != nil {
			uc.logger.Error("CreateBooking: availability check failed for technician id=%d: %v", tech.ID, err)
			return 0, fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
		}
		if free {
			return tech.ID, nil
		}
	}

	uc.logger.Warn("CreateBooking: no free technician for date=%s, time=%s",
		req.Date.Format(domain.DateFormat), req.StartTime)
	return 0, ErrSlotNotAvailable
}
