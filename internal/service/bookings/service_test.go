package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roltrader/autoperks/internal/domain"
	bookingRepo "github.com/roltrader/autoperks/internal/infra/storage/booking"
	"github.com/roltrader/autoperks/internal/service/bookings/models"
	"github.com/roltrader/autoperks/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	getByIDFn       func(ctx context.Context, id int64) (*domain.Booking, error)
	getWithFilterFn func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	updateFn        func(ctx context.Context, id int64, update domain.BookingUpdate) (*domain.Booking, error)
	cancelFn        func(ctx context.Context, id int64, reason string) error
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeBookingRepo) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.getWithFilterFn(ctx, filter)
}

func (f *fakeBookingRepo) Update(ctx context.Context, id int64, update domain.BookingUpdate) (*domain.Booking, error) {
	return f.updateFn(ctx, id, update)
}

func (f *fakeBookingRepo) Cancel(ctx context.Context, id int64, reason string) error {
	return f.cancelFn(ctx, id, reason)
}

func sampleBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:              1,
		TechnicianID:    1,
		ServiceID:       3,
		BookingDate:     time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		DurationMinutes: 45,
		Status:          status,
		CustomerName:    "John Smith",
		CustomerPhone:   "+1-555-0199",
		ServiceName:     "Oil Change",
		ServicePrice:    45,
	}
}

func TestGetByID_ComputesEndTime(t *testing.T) {
	repo := &fakeBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return sampleBooking(domain.StatusConfirmed), nil
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "2026-03-17", resp.BookingDate)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "10:45", resp.EndTime)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &fakeBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return nil, bookingRepo.ErrBookingNotFound
		},
	}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetBookings_FilterPassthrough(t *testing.T) {
	techID := int64(2)

	var gotFilter domain.BookingsFilter
	repo := &fakeBookingRepo{
		getWithFilterFn: func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
			gotFilter = filter
			return []*domain.Booking{sampleBooking(domain.StatusConfirmed)}, nil
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetBookings(context.Background(), &models.GetBookingsRequest{
		TechnicianID:     &techID,
		Status:           ptr.Ptr("confirmed"),
		IncludeCancelled: true,
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)

	require.NotNil(t, gotFilter.TechnicianID)
	assert.Equal(t, techID, *gotFilter.TechnicianID)
	require.NotNil(t, gotFilter.Status)
	assert.Equal(t, domain.StatusConfirmed, *gotFilter.Status)
	assert.True(t, gotFilter.IncludeCancelled)
}

func TestGetBookings_InvalidStatus(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, nopLogger{})

	_, err := svc.GetBookings(context.Background(), &models.GetBookingsRequest{Status: ptr.Ptr("archived")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_Success(t *testing.T) {
	var gotUpdate domain.BookingUpdate
	repo := &fakeBookingRepo{
		updateFn: func(ctx context.Context, id int64, update domain.BookingUpdate) (*domain.Booking, error) {
			gotUpdate = update
			b := sampleBooking(domain.StatusConfirmed)
			b.BookingDate = time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC)
			b.StartTime = "14:00"
			return b, nil
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), 1, &models.UpdateBookingRequest{
		BookingDate: ptr.Ptr("2026-03-18"),
		StartTime:   ptr.Ptr("14:00"),
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-03-18", resp.BookingDate)
	require.NotNil(t, gotUpdate.BookingDate)
	assert.Equal(t, time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC), *gotUpdate.BookingDate)
	require.NotNil(t, gotUpdate.StartTime)
}

func TestUpdate_InvalidFields(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, nopLogger{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateBookingRequest{BookingDate: ptr.Ptr("18.03.2026")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(context.Background(), 1, &models.UpdateBookingRequest{StartTime: ptr.Ptr("2pm")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(context.Background(), 1, &models.UpdateBookingRequest{Status: ptr.Ptr("archived")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_EmptyUpdate(t *testing.T) {
	repo := &fakeBookingRepo{
		updateFn: func(ctx context.Context, id int64, update domain.BookingUpdate) (*domain.Booking, error) {
			return nil, bookingRepo.ErrEmptyUpdate
		},
	}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateBookingRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel_Success(t *testing.T) {
	var gotReason string
	repo := &fakeBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return sampleBooking(domain.StatusPending), nil
		},
		cancelFn: func(ctx context.Context, id int64, reason string) error {
			gotReason = reason
			return nil
		},
	}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{CancellationReason: "  Customer request  "})
	require.NoError(t, err)
	assert.Equal(t, "Customer request", gotReason)
}

func TestCancel_RequiresReason(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{CancellationReason: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel_TerminalStatuses(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusCompleted, domain.StatusCancelled} {
		repo := &fakeBookingRepo{
			getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
				return sampleBooking(status), nil
			},
		}
		svc := NewService(repo, nopLogger{})

		err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{CancellationReason: "why not"})
		assert.ErrorIs(t, err, ErrCannotCancel, "status %s", status)
	}
}

func TestCancel_NotFound(t *testing.T) {
	repo := &fakeBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return nil, bookingRepo.ErrBookingNotFound
		},
	}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 99, &models.CancelBookingRequest{CancellationReason: "gone"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
