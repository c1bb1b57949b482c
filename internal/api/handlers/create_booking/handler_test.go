package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roltrader/autoperks/internal/api/middleware"
	"github.com/roltrader/autoperks/internal/domain"
	createBooking "github.com/roltrader/autoperks/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp *createBooking.Response
	err  error
	got  *createBooking.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

const validBody = `{
	"serviceId": 3,
	"bookingDate": "2026-03-17",
	"startTime": "10:00",
	"customerName": "John Smith",
	"customerPhone": "+1-555-0199"
}`

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:              42,
		TechnicianID:    1,
		ServiceID:       3,
		BookingDate:     time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		DurationMinutes: 45,
		Status:          "pending",
		CustomerName:    "John Smith",
		CustomerPhone:   "+1-555-0199",
		ServiceName:     "Oil Change",
		ServicePrice:    45,
	}}

	rec := doRequest(t, uc, validBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "2026-03-17", resp.BookingDate)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "pending", resp.Status)

	require.NotNil(t, uc.got)
	assert.Equal(t, int64(3), uc.got.ServiceID)
	assert.Nil(t, uc.got.TechnicianID)
	assert.False(t, uc.got.CreatedByAdmin)
}

func TestHandle_AdminIdentityMarksRequest(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{ID: 42, StartTime: "10:00"}}

	handler := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString(validBody))
	ctx := middleware.WithIdentity(req.Context(), &domain.Identity{UserID: 1, Role: domain.RoleAdmin})
	rec := httptest.NewRecorder()
	handler.Handle(rec, req.WithContext(ctx))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.True(t, uc.got.CreatedByAdmin)
}

func TestHandle_SlotConflict(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{err: createBooking.ErrSlotNotAvailable}, validBody)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_NotFoundErrors(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{err: createBooking.ErrServiceNotFound}, validBody)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, &fakeUseCase{err: createBooking.ErrTechnicianNotFound}, validBody)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_BadRequestErrors(t *testing.T) {
	for _, err := range []error{
		createBooking.ErrInvalidDate,
		createBooking.ErrTooLateToBook,
		createBooking.ErrInvalidInput,
	} {
		rec := doRequest(t, &fakeUseCase{err: err}, validBody)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "error %v", err)
	}
}

func TestHandle_MalformedBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UnparseableDate(t *testing.T) {
	body := `{"serviceId": 3, "bookingDate": "17.03.2026", "startTime": "10:00", "customerName": "J", "customerPhone": "1"}`
	rec := doRequest(t, &fakeUseCase{}, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
