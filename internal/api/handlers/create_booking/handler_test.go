package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halqallaf/villa-booking-service/internal/domain"
	createBooking "github.com/halqallaf/villa-booking-service/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error
	got  *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{
		resp: &createBooking.Response{
			ID:         1,
			ClientName: "Alice",
			Date:       "2024-03-01",
			Slot:       domain.SlotMorning,
			Price:      100,
			Status:     string(domain.StatusConfirmed),
			CreatedAt:  time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
			UpdatedAt:  time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		},
	}

	rec := doRequest(t, uc, `{"clientName":"Alice","date":"2024-03-01","slot":"morning","price":100}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, domain.SlotMorning, uc.got.Slot)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2024-03-01", resp.Date)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestHandle_MalformedBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"clientName":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ValidationError(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrInvalidInput}

	rec := doRequest(t, uc, `{"clientName":"","date":"2024-03-01","slot":"morning","price":100}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_SlotConflict(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrSlotNotAvailable}

	rec := doRequest(t, uc, `{"clientName":"Alice","date":"2024-03-01","slot":"full","price":100}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: errors.New("boom")}

	rec := doRequest(t, uc, `{"clientName":"Alice","date":"2024-03-01","slot":"morning","price":100}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}
