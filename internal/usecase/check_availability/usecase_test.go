package check_availability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halqallaf/villa-booking-service/internal/domain"
	"github.com/halqallaf/villa-booking-service/pkg/types"
)

type fakeRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeRepo) GetByDate(_ context.Context, _ types.DateString) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_FreeDay(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date: "2024-03-01",
		Slot: domain.SlotFullDay,
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Empty(t, resp.Occupied)
}

func TestExecute_OccupiedDay(t *testing.T) {
	repo := &fakeRepo{
		bookings: []*domain.Booking{
			{Slot: domain.SlotMorning, Status: domain.StatusConfirmed},
		},
	}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date: "2024-03-01",
		Slot: domain.SlotFullDay,
	})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, []domain.SlotKind{domain.SlotMorning}, resp.Occupied)
}

func TestExecute_OppositeHalfIsFree(t *testing.T) {
	repo := &fakeRepo{
		bookings: []*domain.Booking{
			{Slot: domain.SlotMorning, Status: domain.StatusConfirmed},
		},
	}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date: "2024-03-01",
		Slot: domain.SlotEvening,
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: "2024-03-01", Slot: "night"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: "", Slot: domain.SlotMorning})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: "not-a-date", Slot: domain.SlotMorning})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_StorageFailureFailsClosed(t *testing.T) {
	repo := &fakeRepo{err: errors.New("connection refused")}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date: "2024-03-01",
		Slot: domain.SlotMorning,
	})

	require.ErrorIs(t, err, ErrInternal)
	// Слот сообщается как занятый, а не как свободный
	require.NotNil(t, resp)
	assert.False(t, resp.Available)
}
