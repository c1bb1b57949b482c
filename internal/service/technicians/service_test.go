package technicians

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roltrader/autoperks/internal/domain"
	techRepo "github.com/roltrader/autoperks/internal/infra/storage/technician"
	"github.com/roltrader/autoperks/internal/service/technicians/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTechRepo struct {
	createFn              func(ctx context.Context, tech *domain.Technician) (*domain.Technician, error)
	getByIDFn             func(ctx context.Context, id int64) (*domain.Technician, error)
	listFn                func(ctx context.Context, onlyActive bool) ([]*domain.Technician, error)
	countFn               func(ctx context.Context) (int, error)
	updateFn              func(ctx context.Context, id int64, update domain.TechnicianUpdate) (*domain.Technician, error)
	deleteFn              func(ctx context.Context, id int64) error
	upsertDateExceptionFn func(ctx context.Context, exc *domain.DateException) (*domain.DateException, error)
	listDateExceptionsFn  func(ctx context.Context, technicianID int64) ([]*domain.DateException, error)
	deleteDateExceptionFn func(ctx context.Context, technicianID int64, date time.Time) error
}

func (f *fakeTechRepo) Create(ctx context.Context, tech *domain.Technician) (*domain.Technician, error) {
	return f.createFn(ctx, tech)
}

func (f *fakeTechRepo) GetByID(ctx context.Context, id int64) (*domain.Technician, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeTechRepo) List(ctx context.Context, onlyActive bool) ([]*domain.Technician, error) {
	return f.listFn(ctx, onlyActive)
}

func (f *fakeTechRepo) Count(ctx context.Context) (int, error) {
	return f.countFn(ctx)
}

func (f *fakeTechRepo) Update(ctx context.Context, id int64, update domain.TechnicianUpdate) (*domain.Technician, error) {
	return f.updateFn(ctx, id, update)
}

func (f *fakeTechRepo) Delete(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeTechRepo) UpsertDateException(ctx context.Context, exc *domain.DateException) (*domain.DateException, error) {
	return f.upsertDateExceptionFn(ctx, exc)
}

func (f *fakeTechRepo) ListDateExceptions(ctx context.Context, technicianID int64) ([]*domain.DateException, error) {
	return f.listDateExceptionsFn(ctx, technicianID)
}

func (f *fakeTechRepo) DeleteDateException(ctx context.Context, technicianID int64, date time.Time) error {
	return f.deleteDateExceptionFn(ctx, technicianID, date)
}

type fakeBlockedRepo struct {
	purgedTechnicianID int64
	err                error
}

func (f *fakeBlockedRepo) DeleteByTechnician(ctx context.Context, technicianID int64) error {
	f.purgedTechnicianID = technicianID
	return f.err
}

func existingTech(id int64) *domain.Technician {
	return &domain.Technician{ID: id, Name: "Mike", Active: true}
}

func TestCreate_Success(t *testing.T) {
	repo := &fakeTechRepo{
		countFn: func(ctx context.Context) (int, error) { return 3, nil },
		createFn: func(ctx context.Context, tech *domain.Technician) (*domain.Technician, error) {
			created := *tech
			created.ID = 4
			return &created, nil
		},
	}
	svc := NewService(repo, &fakeBlockedRepo{}, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateTechnicianRequest{Name: "Tom"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), resp.ID)
	assert.True(t, resp.Active)
	assert.NotNil(t, resp.Specialties)
}

func TestCreate_RosterFull(t *testing.T) {
	repo := &fakeTechRepo{
		countFn: func(ctx context.Context) (int, error) { return domain.MaxTechnicians, nil },
	}
	svc := NewService(repo, &fakeBlockedRepo{}, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateTechnicianRequest{Name: "Tom"})
	assert.ErrorIs(t, err, ErrRosterFull)
}

func TestCreate_EmptyName(t *testing.T) {
	svc := NewService(&fakeTechRepo{}, &fakeBlockedRepo{}, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateTechnicianRequest{Name: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete_Success(t *testing.T) {
	var deleted int64
	repo := &fakeTechRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Technician, error) { return existingTech(id), nil },
		countFn:   func(ctx context.Context) (int, error) { return 3, nil },
		deleteFn: func(ctx context.Context, id int64) error {
			deleted = id
			return nil
		},
	}
	blocked := &fakeBlockedRepo{}
	svc := NewService(repo, blocked, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 2))
	assert.Equal(t, int64(2), deleted)
	assert.Equal(t, int64(2), blocked.purgedTechnicianID, "blocked times must be purged with the technician")
}

func TestDelete_RosterAtMinimum(t *testing.T) {
	repo := &fakeTechRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Technician, error) { return existingTech(id), nil },
		countFn:   func(ctx context.Context) (int, error) { return domain.MinTechnicians, nil },
	}
	svc := NewService(repo, &fakeBlockedRepo{}, nopLogger{})

	err := svc.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, ErrRosterAtMinimum)
}

func TestDelete_NotFound(t *testing.T) {
	repo := &fakeTechRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Technician, error) {
			return nil, techRepo.ErrTechnicianNotFound
		},
	}
	svc := NewService(repo, &fakeBlockedRepo{}, nopLogger{})

	err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrTechnicianNotFound)
}

func TestUpdate_MapsRepositoryErrors(t *testing.T) {
	name := "New Name"

	repo := &fakeTechRepo{
		updateFn: func(ctx context.Context, id int64, update domain.TechnicianUpdate) (*domain.Technician, error) {
			return nil, techRepo.ErrTechnicianNotFound
		},
	}
	svc := NewService(repo, &fakeBlockedRepo{}, nopLogger{})

	_, err := svc.Update(context.Background(), 99, &models.UpdateTechnicianRequest{Name: &name})
	assert.ErrorIs(t, err, ErrTechnicianNotFound)

	repo.updateFn = func(ctx context.Context, id int64, update domain.TechnicianUpdate) (*domain.Technician, error) {
		return nil, techRepo.ErrEmptyUpdate
	}
	_, err = svc.Update(context.Background(), 1, &models.UpdateTechnicianRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_EmptyName(t *testing.T) {
	svc := NewService(&fakeTechRepo{}, &fakeBlockedRepo{}, nopLogger{})

	empty := ""
	_, err := svc.Update(context.Background(), 1, &models.UpdateTechnicianRequest{Name: &empty})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSetDateException_Success(t *testing.T) {
	var upserted *domain.DateException
	repo := &fakeTechRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Technician, error) { return existingTech(id), nil },
		upsertDateExceptionFn: func(ctx context.Context, exc *domain.DateException) (*domain.DateException, error) {
			upserted = exc
			result := *exc
			result.ID = 7
			return &result, nil
		},
	}
	svc := NewService(repo, &fakeBlockedRepo{}, nopLogger{})

	resp, err := svc.SetDateException(context.Background(), 1, &models.SetDateExceptionRequest{
		Date:      "2026-03-20",
		Available: false,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "2026-03-20", resp.Date)
	assert.False(t, resp.Available)
	assert.Equal(t, time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC), upserted.Date)
}

func TestSetDateException_BadDate(t *testing.T) {
	svc := NewService(&fakeTechRepo{}, &fakeBlockedRepo{}, nopLogger{})

	_, err := svc.SetDateException(context.Background(), 1, &models.SetDateExceptionRequest{Date: "20.03.2026"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestClearDateException(t *testing.T) {
	repo := &fakeTechRepo{
		deleteDateExceptionFn: func(ctx context.Context, technicianID int64, date time.Time) error {
			return nil
		},
	}
	svc := NewService(repo, &fakeBlockedRepo{}, nopLogger{})

	require.NoError(t, svc.ClearDateException(context.Background(), 1, "2026-03-20"))

	repo.deleteDateExceptionFn = func(ctx context.Context, technicianID int64, date time.Time) error {
		return techRepo.ErrExceptionNotFound
	}
	err := svc.ClearDateException(context.Background(), 1, "2026-03-21")
	assert.ErrorIs(t, err, ErrExceptionNotFound)
}
