package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roltrader/autoperks/internal/domain"
	technicianRepo "github.com/roltrader/autoperks/internal/infra/storage/technician"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTechRepo struct {
	getByID          func(ctx context.Context, id int64) (*domain.Technician, error)
	getDateException func(ctx context.Context, technicianID int64, date time.Time) (*domain.DateException, error)
}

func (f *fakeTechRepo) GetByID(ctx context.Context, id int64) (*domain.Technician, error) {
	return f.getByID(ctx, id)
}

func (f *fakeTechRepo) GetDateException(ctx context.Context, technicianID int64, date time.Time) (*domain.DateException, error) {
	if f.getDateException == nil {
		return nil, technicianRepo.ErrExceptionNotFound
	}
	return f.getDateException(ctx, technicianID, date)
}

type fakeBlockedRepo struct {
	blocks []*domain.BlockedTime
}

func (f *fakeBlockedRepo) GetByTechnicianAndDate(ctx context.Context, technicianID int64, date time.Time) ([]*domain.BlockedTime, error) {
	return f.blocks, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

func activeTechRepo() *fakeTechRepo {
	return &fakeTechRepo{
		getByID: func(ctx context.Context, id int64) (*domain.Technician, error) {
			return &domain.Technician{ID: id, Name: "Mike", Active: true}, nil
		},
	}
}

var testDate = time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

func TestIsAvailable_FreeDay(t *testing.T) {
	checker := NewChecker(activeTechRepo(), &fakeBlockedRepo{}, &fakeBookingRepo{}, nopLogger{})

	available, err := checker.IsAvailable(context.Background(), 1, testDate, "09:00", "10:00")
	require.NoError(t, err)
	assert.True(t, available)
}

func TestIsAvailable_InvalidRange(t *testing.T) {
	checker := NewChecker(activeTechRepo(), &fakeBlockedRepo{}, &fakeBookingRepo{}, nopLogger{})

	_, err := checker.IsAvailable(context.Background(), 1, testDate, "10:00", "10:00")
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = checker.IsAvailable(context.Background(), 1, testDate, "11:00", "10:00")
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestIsAvailable_UnknownTechnician(t *testing.T) {
	techs := &fakeTechRepo{
		getByID: func(ctx context.Context, id int64) (*domain.Technician, error) {
			return nil, technicianRepo.ErrTechnicianNotFound
		},
	}
	checker := NewChecker(techs, &fakeBlockedRepo{}, &fakeBookingRepo{}, nopLogger{})

	_, err := checker.IsAvailable(context.Background(), 99, testDate, "09:00", "10:00")
	assert.ErrorIs(t, err, ErrTechnicianNotFound)
}

func TestIsAvailable_InactiveTechnician(t *testing.T) {
	techs := &fakeTechRepo{
		getByID: func(ctx context.Context, id int64) (*domain.Technician, error) {
			return &domain.Technician{ID: id, Name: "Mike", Active: false}, nil
		},
	}
	checker := NewChecker(techs, &fakeBlockedRepo{}, &fakeBookingRepo{}, nopLogger{})

	available, err := checker.IsAvailable(context.Background(), 1, testDate, "09:00", "10:00")
	require.NoError(t, err)
	assert.False(t, available)
}

func TestIsAvailable_DayOffException(t *testing.T) {
	techs := activeTechRepo()
	techs.getDateException = func(ctx context.Context, technicianID int64, date time.Time) (*domain.DateException, error) {
		return &domain.DateException{TechnicianID: technicianID, Date: date, Available: false}, nil
	}
	checker := NewChecker(techs, &fakeBlockedRepo{}, &fakeBookingRepo{}, nopLogger{})

	// Исключение закрывает весь день независимо от запрошенного окна
	available, err := checker.IsAvailable(context.Background(), 1, testDate, "16:00", "16:30")
	require.NoError(t, err)
	assert.False(t, available)
}

func TestIsAvailable_ReEnablingException(t *testing.T) {
	techs := activeTechRepo()
	techs.getDateException = func(ctx context.Context, technicianID int64, date time.Time) (*domain.DateException, error) {
		return &domain.DateException{TechnicianID: technicianID, Date: date, Available: true}, nil
	}
	checker := NewChecker(techs, &fakeBlockedRepo{}, &fakeBookingRepo{}, nopLogger{})

	available, err := checker.IsAvailable(context.Background(), 1, testDate, "09:00", "10:00")
	require.NoError(t, err)
	assert.True(t, available)
}

func TestIsAvailable_BlockedWindow(t *testing.T) {
	blocked := &fakeBlockedRepo{blocks: []*domain.BlockedTime{
		{TechnicianID: 1, StartTime: "09:00", EndTime: "10:00"},
	}}
	checker := NewChecker(activeTechRepo(), blocked, &fakeBookingRepo{}, nopLogger{})

	available, err := checker.IsAvailable(context.Background(), 1, testDate, "09:30", "10:30")
	require.NoError(t, err)
	assert.False(t, available)

	// Окно, граничащее с блокировкой, доступно
	available, err = checker.IsAvailable(context.Background(), 1, testDate, "10:00", "11:00")
	require.NoError(t, err)
	assert.True(t, available)
}

func TestHasConflict_OverlappingBooking(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, TechnicianID: 1, StartTime: "09:00", DurationMinutes: 60, Status: domain.StatusConfirmed},
	}}
	checker := NewChecker(activeTechRepo(), &fakeBlockedRepo{}, bookings, nopLogger{})

	conflict, err := checker.HasConflict(context.Background(), 1, testDate, "09:30", "10:30")
	require.NoError(t, err)
	assert.True(t, conflict)

	// Интервал, начинающийся ровно в момент окончания бронирования, не конфликтует
	conflict, err = checker.HasConflict(context.Background(), 1, testDate, "10:00", "11:00")
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestHasConflict_CancelledBookingIgnored(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, TechnicianID: 1, StartTime: "09:00", DurationMinutes: 60, Status: domain.StatusCancelled},
	}}
	checker := NewChecker(activeTechRepo(), &fakeBlockedRepo{}, bookings, nopLogger{})

	conflict, err := checker.HasConflict(context.Background(), 1, testDate, "09:00", "10:00")
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestHasConflict_SkipsBookingWithBrokenTime(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, TechnicianID: 1, StartTime: "garbage", DurationMinutes: 60, Status: domain.StatusConfirmed},
	}}
	checker := NewChecker(activeTechRepo(), &fakeBlockedRepo{}, bookings, nopLogger{})

	conflict, err := checker.HasConflict(context.Background(), 1, testDate, "09:00", "10:00")
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestIsFree_CombinesAvailabilityAndConflicts(t *testing.T) {
	blocked := &fakeBlockedRepo{blocks: []*domain.BlockedTime{
		{TechnicianID: 1, StartTime: "08:00", EndTime: "09:00"},
	}}
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, TechnicianID: 1, StartTime: "10:00", DurationMinutes: 30, Status: domain.StatusPending},
	}}
	checker := NewChecker(activeTechRepo(), blocked, bookings, nopLogger{})

	free, err := checker.IsFree(context.Background(), 1, testDate, "08:30", "09:30")
	require.NoError(t, err)
	assert.False(t, free, "blocked window")

	free, err = checker.IsFree(context.Background(), 1, testDate, "10:00", "10:30")
	require.NoError(t, err)
	assert.False(t, free, "booking conflict")

	free, err = checker.IsFree(context.Background(), 1, testDate, "09:00", "10:00")
	require.NoError(t, err)
	assert.True(t, free, "gap between block and booking")
}
