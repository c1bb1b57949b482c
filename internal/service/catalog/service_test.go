package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roltrader/autoperks/internal/domain"
	serviceRepo "github.com/roltrader/autoperks/internal/infra/storage/service"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeServiceRepo struct {
	services []*domain.Service
	err      error
}

func (f *fakeServiceRepo) List(ctx context.Context) ([]*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.services, nil
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, svc := range f.services {
		if svc.ID == id {
			return svc, nil
		}
	}
	return nil, serviceRepo.ErrServiceNotFound
}

func TestList(t *testing.T) {
	repo := &fakeServiceRepo{services: []*domain.Service{
		{ID: 1, Name: "Car Wash", Price: 25, DurationMinutes: 30, Active: true},
		{ID: 2, Name: "Full Detail", Price: 150, DurationMinutes: 180, Active: true},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Services, 2)
	assert.Equal(t, "Car Wash", resp.Services[0].Name)
	assert.Equal(t, 30, resp.Services[0].DurationMinutes)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeServiceRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
