package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roltrader/autoperks/internal/domain"
	serviceRepo "github.com/roltrader/autoperks/internal/infra/storage/service"
	"github.com/roltrader/autoperks/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTechRepo struct {
	technicians []*domain.Technician
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

var (
	testDate = time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	roster = []*domain.Technician{
		{ID: 1, Name: "Mike", Active: true},
		{ID: 2, Name: "Sarah", Active: true},
	}

	carWash = &domain.Service{ID: 1, Name: "Car Wash", Price: 25, DurationMinutes: 30, Active: true}
)

func allFree() *fakeChecker {
	return &fakeChecker{isFree: func(int64, time.Time, types.TimeString, types.TimeString) (bool, error) {
		return true, nil
	}}
}

func TestExecute_AllFree(t *testing.T) {
	uc := NewUseCase(&fakeTechRepo{technicians: roster}, &fakeServiceRepo{service: carWash}, allFree(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testDate})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 20)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Equal(t, types.TimeString("08:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("17:30"), resp.Slots[19].StartTime)

	for _, slot := range resp.Slots {
		assert.True(t, slot.Available)
		assert.Equal(t, []int64{1, 2}, slot.TechnicianIDs)
	}
}

func TestExecute_BlockedTechnicianExcludedFromSlot(t *testing.T) {
	// Мастер 1 занят с 09:00 до 10:00, мастер 2 свободен
	checker := &fakeChecker{isFree: func(technicianID int64, _ time.Time, start, end types.TimeString) (bool, error) {
		if technicianID == 1 && types.Overlaps("09:00", "10:00", start, end) {
			return false, nil
		}
		return true, nil
	}}
	uc := NewUseCase(&fakeTechRepo{technicians: roster}, &fakeServiceRepo{service: carWash}, checker, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testDate})
	require.NoError(t, err)

	bySlot := make(map[types.TimeString]Slot, len(resp.Slots))
	for _, slot := range resp.Slots {
		bySlot[slot.StartTime] = slot
	}

	assert.Equal(t, []int64{1, 2}, bySlot["08:30"].TechnicianIDs)
	assert.Equal(t, []int64{2}, bySlot["09:00"].TechnicianIDs)
	assert.Equal(t, []int64{2}, bySlot["09:30"].TechnicianIDs)
	assert.Equal(t, []int64{1, 2}, bySlot["10:00"].TechnicianIDs)

	assert.True(t, bySlot["09:00"].Available)
}

func TestExecute_NoFreeTechnicians(t *testing.T) {
	checker := &fakeChecker{isFree: func(int64, time.Time, types.TimeString, types.TimeString) (bool, error) {
		return false, nil
	}}
	uc := NewUseCase(&fakeTechRepo{technicians: roster}, &fakeServiceRepo{service: carWash}, checker, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testDate})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		assert.False(t, slot.Available)
		assert.Empty(t, slot.TechnicianIDs)
	}
}

func TestExecute_LongServiceOverrunsClosingTime(t *testing.T) {
	fullValet := &domain.Service{ID: 4, Name: "Full Valet", Price: 120, DurationMinutes: 240, Active: true}
	uc := NewUseCase(&fakeTechRepo{technicians: roster}, &fakeServiceRepo{service: fullValet}, allFree(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 4, Date: testDate})
	require.NoError(t, err)

	// Поздние слоты предлагаются, даже если услуга выходит за время закрытия
	last := resp.Slots[len(resp.Slots)-1]
	assert.Equal(t, types.TimeString("17:30"), last.StartTime)
	assert.True(t, last.Available)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := NewUseCase(&fakeTechRepo{technicians: roster}, &fakeServiceRepo{err: serviceRepo.ErrServiceNotFound}, allFree(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 99, Date: testDate})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeTechRepo{technicians: roster}, &fakeServiceRepo{service: carWash}, allFree(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 0, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ServiceID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
