package export_data

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halqallaf/villa-booking-service/internal/domain"
	"github.com/halqallaf/villa-booking-service/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByDateRange(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeExpenseRepo struct {
	expenses []*domain.Expense
}

func (f *fakeExpenseRepo) GetByDateRange(_ context.Context, _, _ types.DateString) ([]*domain.Expense, error) {
	return f.expenses, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_FilenameUsesCurrentDate(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeExpenseRepo{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{
		DateFrom: "2024-03-01",
		DateTo:   "2024-03-31",
	})

	require.NoError(t, err)
	assert.Equal(t, "villa-data-2024-03-15.json", resp.Filename)
}

func TestExecute_DocumentContent(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: 1, ClientName: "Alice", Date: "2024-03-01", Slot: domain.SlotMorning, Price: 50, Status: domain.StatusConfirmed},
		{ID: 2, ClientName: "Bob", Date: "2024-03-02", Slot: domain.SlotFullDay, Price: 90, Status: domain.StatusCancelled},
	}
	expenses := []*domain.Expense{
		{ID: 3, Title: "Pool service", Amount: 20, Category: domain.CategoryMaintenance, Date: "2024-03-05"},
	}

	uc := NewUseCase(&fakeBookingRepo{bookings: bookings}, &fakeExpenseRepo{expenses: expenses}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		DateFrom: "2024-03-01",
		DateTo:   "2024-03-31",
	})
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(resp.Payload, &doc))

	assert.Equal(t, "2024-03-01", doc.DateRange.From)
	assert.Equal(t, "2024-03-31", doc.DateRange.To)

	// В списке обе записи, включая отмененную
	require.Len(t, doc.Bookings, 2)
	require.Len(t, doc.Expenses, 1)

	// Статистика считается только по активным бронированиям
	assert.Equal(t, 50.0, doc.Stats.TotalRevenue)
	assert.Equal(t, 1, doc.Stats.TotalBookings)
	assert.Equal(t, 30.0, doc.Stats.NetProfit)
}

func TestExecute_Deterministic(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: 1, ClientName: "Alice", Date: "2024-03-01", Slot: domain.SlotMorning, Price: 50, Status: domain.StatusConfirmed},
	}

	uc := NewUseCase(&fakeBookingRepo{bookings: bookings}, &fakeExpenseRepo{}, nopLogger{})

	req := &Request{DateFrom: "2024-03-01", DateTo: "2024-03-31"}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Payload, second.Payload)
}

func TestExecute_InvalidPeriod(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeExpenseRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{DateFrom: "2024-03-31", DateTo: "2024-03-01"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{DateFrom: "", DateTo: "2024-03-01"})
	require.ErrorIs(t, err, ErrInvalidInput)
}
