package create_booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halqallaf/villa-booking-service/internal/domain"
	bookingRepo "github.com/halqallaf/villa-booking-service/internal/infra/storage/booking"
	"github.com/halqallaf/villa-booking-service/pkg/types"
)

type fakeRepo struct {
	existing  []*domain.Booking
	getErr    error
	createErr error
	created   *domain.Booking
	nextID    int64
}

func (f *fakeRepo) GetByDate(_ context.Context, _ types.DateString) ([]*domain.Booking, error) {
	return f.existing, f.getErr
}

func (f *fakeRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	stored := *b
	stored.ID = f.nextID
	f.created = &stored
	return &stored, nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeMetrics struct {
	created   int
	conflicts int
}

func (f *fakeMetrics) IncBookingCreated()  { f.created++ }
func (f *fakeMetrics) IncBookingConflict() { f.conflicts++ }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		ClientName: "Alice",
		Date:       "2024-03-01",
		Slot:       domain.SlotMorning,
		Price:      100,
	}
}

func TestExecute_CreatesBooking(t *testing.T) {
	repo := &fakeRepo{}
	tx := &fakeTxManager{}
	m := &fakeMetrics{}
	uc := NewUseCase(repo, tx, m, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Alice", resp.ClientName)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, 1, m.created)
	assert.Zero(t, m.conflicts)
}

func TestExecute_ValidationFailures(t *testing.T) {
	longName := make([]byte, domain.MaxClientNameLength+1)
	for i := range longName {
		longName[i] = 'a'
	}

	tests := []struct {
		name   string
		modify func(req *Request)
	}{
		{"empty client name", func(req *Request) { req.ClientName = "  " }},
		{"client name too long", func(req *Request) { req.ClientName = string(longName) }},
		{"missing date", func(req *Request) { req.Date = "" }},
		{"malformed date", func(req *Request) { req.Date = "01.03.2024" }},
		{"unknown slot", func(req *Request) { req.Slot = "night" }},
		{"zero price for paid booking", func(req *Request) { req.Price = 0 }},
		{"negative price", func(req *Request) { req.Price = -5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			uc := NewUseCase(repo, &fakeTxManager{}, nil, nopLogger{})

			req := validRequest()
			tt.modify(req)

			_, err := uc.Execute(context.Background(), req)

			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, repo.created, "validation must happen before any write")
		})
	}
}

func TestExecute_FreeBookingZeroesPrice(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewUseCase(repo, &fakeTxManager{}, nil, nopLogger{})

	req := validRequest()
	req.IsFree = true
	req.Price = 500

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, resp.IsFree)
	assert.Zero(t, resp.Price)
	assert.Zero(t, repo.created.Price)
}

func TestExecute_SlotConflict(t *testing.T) {
	repo := &fakeRepo{
		existing: []*domain.Booking{
			{Slot: domain.SlotFullDay, Status: domain.StatusConfirmed},
		},
	}
	m := &fakeMetrics{}
	uc := NewUseCase(repo, &fakeTxManager{}, m, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, repo.created)
	assert.Equal(t, 1, m.conflicts)
	assert.Zero(t, m.created)
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	repo := &fakeRepo{
		existing: []*domain.Booking{
			{Slot: domain.SlotFullDay, Status: domain.StatusCancelled},
		},
	}
	uc := NewUseCase(repo, &fakeTxManager{}, nil, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, repo.created)
}

func TestExecute_LostRaceMapsToConflict(t *testing.T) {
	// Проверка прошла, но вставку отклонило ограничение в БД:
	// конкурент успел занять слот между SELECT и INSERT
	repo := &fakeRepo{createErr: bookingRepo.ErrSlotTaken}
	m := &fakeMetrics{}
	uc := NewUseCase(repo, &fakeTxManager{}, m, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Equal(t, 1, m.conflicts)
}

func TestExecute_RepositoryFailure(t *testing.T) {
	repo := &fakeRepo{getErr: errors.New("connection refused")}
	uc := NewUseCase(repo, &fakeTxManager{}, nil, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrInternal)
	assert.NotErrorIs(t, err, ErrSlotNotAvailable)
}
