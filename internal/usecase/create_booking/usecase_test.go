package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roltrader/autoperks/internal/domain"
	serviceRepo "github.com/roltrader/autoperks/internal/infra/storage/service"
	techRepo "github.com/roltrader/autoperks/internal/infra/storage/technician"
	"github.com/roltrader/autoperks/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	created *domain.Booking
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.created = booking
	result := *booking
	result.ID = 42
	return &result, nil
}

type fakeTechRepo struct {
	technicians []*domain.Technician
}

func (f *fakeTechRepo) GetByID(ctx context.Context, id int64) (*domain.Technician, error) {
	for _, tech := range f.technicians {
		if tech.ID == id {
			return tech, nil
		}
	}
	return nil, techRepo.ErrTechnicianNotFound
}

func (f *fakeTechRepo) List(ctx context.Context, onlyActive bool) ([]*domain.Technician, error) {
	return f.technicians, nil
}

type fakeServiceRepo struct {
	service *domain.Service
	err     error
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.service, nil
}

type fakeChecker struct {
	isFree func(technicianID int64, date time.Time, start, end types.TimeString) (bool, error)
}

func (f *fakeChecker) IsFree(ctx context.Context, technicianID int64, date time.Time, start, end types.TimeString) (bool, error) {
	return f.isFree(technicianID, date, start, end)
}

// passthroughTx выполняет функцию без настоящей транзакции
type passthroughTx struct {
	calls int
}

func (m *passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

var (
	roster = []*domain.Technician{
		{ID: 1, Name: "Mike", Active: true},
		{ID: 2, Name: "Sarah", Active: true},
	}

	oilChange = &domain.Service{ID: 3, Name: "Oil Change", Price: 45, DurationMinutes: 45, Active: true}

	monMorning = time.Date(2026, 3, 16, 10, 15, 0, 0, time.UTC)
	tuesday    = time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)
)

func allFree() *fakeChecker {
	return &fakeChecker{isFree: func(int64, time.Time, types.TimeString, types.TimeString) (bool, error) {
		return true, nil
	}}
}

func validRequest() *Request {
	techID := int64(1)
	return &Request{
		TechnicianID:  &techID,
		ServiceID:     3,
		Date:          tuesday,
		StartTime:     "10:00",
		CustomerName:  "John Smith",
		CustomerEmail: "john@example.com",
		CustomerPhone: "+1-555-0199",
	}
}

func newTestUseCase(bookings *fakeBookingRepo, checker *fakeChecker, tx *passthroughTx) *UseCase {
	return NewUseCase(
		bookings,
		&fakeTechRepo{technicians: roster},
		&fakeServiceRepo{service: oilChange},
		checker,
		tx,
		&fixedTime{now: monMorning},
		nopLogger{},
	)
}

func TestExecute_Success(t *testing.T) {
	bookings := &fakeBookingRepo{}
	tx := &passthroughTx{}
	uc := newTestUseCase(bookings, allFree(), tx)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, int64(1), resp.TechnicianID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, 45, resp.DurationMinutes)
	assert.Equal(t, "Oil Change", resp.ServiceName)
	assert.Equal(t, float64(45), resp.ServicePrice)

	assert.Equal(t, 1, tx.calls, "create must run inside a transaction")
	require.NotNil(t, bookings.created)
	assert.Equal(t, domain.StatusPending, bookings.created.Status)
}

func TestExecute_VehicleInfoStoredAsFreeText(t *testing.T) {
	bookings := &fakeBookingRepo{}
	uc := newTestUseCase(bookings, allFree(), &passthroughTx{})

	vehicleMake := "Toyota"
	vehicleModel := "Corolla"
	vehicleYear := "2019-2020 facelift"
	req := validRequest()
	req.VehicleMake = &vehicleMake
	req.VehicleModel = &vehicleModel
	req.VehicleYear = &vehicleYear

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, bookings.created)
	require.NotNil(t, bookings.created.VehicleYear)
	assert.Equal(t, "2019-2020 facelift", *bookings.created.VehicleYear)
	assert.Equal(t, "Toyota", *bookings.created.VehicleMake)
	assert.Equal(t, "Corolla", *bookings.created.VehicleModel)
}

func TestExecute_AdminCallerGetsConfirmedStatus(t *testing.T) {
	bookings := &fakeBookingRepo{}
	uc := newTestUseCase(bookings, allFree(), &passthroughTx{})

	req := validRequest()
	req.CreatedByAdmin = true

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	require.NotNil(t, bookings.created)
	assert.Equal(t, domain.StatusConfirmed, bookings.created.Status)
}

func TestExecute_SlotTaken(t *testing.T) {
	checker := &fakeChecker{isFree: func(int64, time.Time, types.TimeString, types.TimeString) (bool, error) {
		return false, nil
	}}
	uc := newTestUseCase(&fakeBookingRepo{}, checker, &passthroughTx{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_ConflictWindowMatchesServiceDuration(t *testing.T) {
	var gotStart, gotEnd types.TimeString
	checker := &fakeChecker{isFree: func(_ int64, _ time.Time, start, end types.TimeString) (bool, error) {
		gotStart, gotEnd = start, end
		return true, nil
	}}
	uc := newTestUseCase(&fakeBookingRepo{}, checker, &passthroughTx{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("10:00"), gotStart)
	assert.Equal(t, types.TimeString("10:45"), gotEnd)
}

func TestExecute_AutoAssignsFirstFreeTechnician(t *testing.T) {
	// Мастер 1 занят, мастер 2 свободен
	checker := &fakeChecker{isFree: func(technicianID int64, _ time.Time, _, _ types.TimeString) (bool, error) {
		return technicianID != 1, nil
	}}
	bookings := &fakeBookingRepo{}
	uc := newTestUseCase(bookings, checker, &passthroughTx{})

	req := validRequest()
	req.TechnicianID = nil

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.TechnicianID)
}

func TestExecute_AutoAssignNoneFree(t *testing.T) {
	checker := &fakeChecker{isFree: func(int64, time.Time, types.TimeString, types.TimeString) (bool, error) {
		return false, nil
	}}
	uc := newTestUseCase(&fakeBookingRepo{}, checker, &passthroughTx{})

	req := validRequest()
	req.TechnicianID = nil

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_UnknownTechnician(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, allFree(), &passthroughTx{})

	req := validRequest()
	unknown := int64(99)
	req.TechnicianID = &unknown

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTechnicianNotFound)
}

func TestExecute_UnknownService(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeTechRepo{technicians: roster},
		&fakeServiceRepo{err: serviceRepo.ErrServiceNotFound},
		allFree(),
		&passthroughTx{},
		&fixedTime{now: monMorning},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_PastDate(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, allFree(), &passthroughTx{})

	req := validRequest()
	req.Date = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_TodayElapsedSlot(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, allFree(), &passthroughTx{})

	req := validRequest()
	req.Date = time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	req.StartTime = "10:00" // сейчас 10:15

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_TodayFutureSlotAllowed(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, allFree(), &passthroughTx{})

	req := validRequest()
	req.Date = time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	req.StartTime = "10:30"

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, allFree(), &passthroughTx{})

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"zero service id", func(r *Request) { r.ServiceID = 0 }},
		{"missing date", func(r *Request) { r.Date = time.Time{} }},
		{"missing start time", func(r *Request) { r.StartTime = "" }},
		{"malformed start time", func(r *Request) { r.StartTime = "25:99" }},
		{"missing customer name", func(r *Request) { r.CustomerName = "  " }},
		{"missing customer phone", func(r *Request) { r.CustomerPhone = "" }},
		{"negative technician id", func(r *Request) {
			bad := int64(-1)
			r.TechnicianID = &bad
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
