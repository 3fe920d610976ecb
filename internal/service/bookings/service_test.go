package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halqallaf/villa-booking-service/internal/domain"
	bookingRepo "github.com/halqallaf/villa-booking-service/internal/infra/storage/booking"
	"github.com/halqallaf/villa-booking-service/internal/service/bookings/models"
	"github.com/halqallaf/villa-booking-service/pkg/ptr"
)

type fakeRepo struct {
	byID      map[int64]*domain.Booking
	updateErr error
	lastUpd   *domain.BookingUpdate
	cancelled []int64
	deleted   []int64
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeRepo) GetByDateRange(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return nil, nil
}

func (f *fakeRepo) Update(_ context.Context, id int64, upd domain.BookingUpdate) (*domain.Booking, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	f.lastUpd = &upd
	return b, nil
}

func (f *fakeRepo) Cancel(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.cancelled = append(f.cancelled, id)
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRepo(bookings ...*domain.Booking) *fakeRepo {
	repo := &fakeRepo{byID: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		repo.byID[b.ID] = b
	}
	return repo
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(newRepo(), nopLogger{})

	_, err := svc.GetByID(context.Background(), 42)

	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdate_EmptyRequest(t *testing.T) {
	svc := NewService(newRepo(), nopLogger{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateBookingRequest{})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_UnknownStatus(t *testing.T) {
	svc := NewService(newRepo(), nopLogger{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateBookingRequest{
		Status: ptr.Ptr("archived"),
	})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_FreeForcesZeroPrice(t *testing.T) {
	repo := newRepo(&domain.Booking{ID: 1, ClientName: "Alice", Status: domain.StatusConfirmed})
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateBookingRequest{
		IsFree: ptr.Ptr(true),
		Price:  ptr.Ptr(250.0),
	})

	require.NoError(t, err)
	require.NotNil(t, repo.lastUpd.Price)
	assert.Zero(t, *repo.lastUpd.Price)
}

func TestUpdate_SlotConflictOnReactivation(t *testing.T) {
	repo := newRepo(&domain.Booking{ID: 1, Status: domain.StatusCancelled})
	repo.updateErr = bookingRepo.ErrSlotTaken
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateBookingRequest{
		Status: ptr.Ptr(string(domain.StatusConfirmed)),
	})

	require.ErrorIs(t, err, ErrSlotConflict)
}

func TestCancel(t *testing.T) {
	repo := newRepo(&domain.Booking{ID: 1, Status: domain.StatusConfirmed})
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Cancel(context.Background(), 1))
	assert.Equal(t, []int64{1}, repo.cancelled)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	repo := newRepo(&domain.Booking{ID: 1, Status: domain.StatusCancelled})
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 1)

	require.ErrorIs(t, err, ErrCannotCancel)
	assert.Empty(t, repo.cancelled)
}

func TestCancel_NotFound(t *testing.T) {
	svc := NewService(newRepo(), nopLogger{})

	require.ErrorIs(t, svc.Cancel(context.Background(), 42), ErrBookingNotFound)
}

func TestDelete(t *testing.T) {
	repo := newRepo(&domain.Booking{ID: 1, Status: domain.StatusConfirmed})
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Equal(t, []int64{1}, repo.deleted)

	require.ErrorIs(t, svc.Delete(context.Background(), 42), ErrBookingNotFound)
}

func TestList_InvalidRange(t *testing.T) {
	svc := NewService(newRepo(), nopLogger{})

	_, err := svc.List(context.Background(), &models.GetBookingsRequest{
		DateFrom: "2024-03-31",
		DateTo:   "2024-03-01",
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.List(context.Background(), &models.GetBookingsRequest{
		DateFrom: "",
		DateTo:   "2024-03-01",
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}
