package suggest_slots

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	suggestSlots "github.com/roltrader/autoperks/internal/usecase/suggest_slots"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp *suggestSlots.Response
	err  error
	got  *suggestSlots.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *suggestSlots.Request) (*suggestSlots.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func doRequest(t *testing.T, uc *fakeUseCase, query string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/slots/suggestions"+query, nil)
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandle_PassesFromDateAndLimit(t *testing.T) {
	uc := &fakeUseCase{resp: &suggestSlots.Response{ServiceID: 1}}

	rec := doRequest(t, uc, "?serviceId=1&date=2026-03-18&limit=3")
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.got)
	assert.Equal(t, int64(1), uc.got.ServiceID)
	assert.Equal(t, time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC), uc.got.FromDate)
	assert.Equal(t, 3, uc.got.MaxSuggestions)
}

func TestHandle_MissingDate(t *testing.T) {
	uc := &fakeUseCase{resp: &suggestSlots.Response{ServiceID: 1}}

	rec := doRequest(t, uc, "?serviceId=1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)
}

func TestHandle_UnparseableDate(t *testing.T) {
	uc := &fakeUseCase{resp: &suggestSlots.Response{ServiceID: 1}}

	rec := doRequest(t, uc, "?serviceId=1&date=18.03.2026")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)
}

func TestHandle_ServiceNotFound(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{err: suggestSlots.ErrServiceNotFound}, "?serviceId=404&date=2026-03-18")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
