package expenses

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halqallaf/villa-booking-service/internal/domain"
	expenseRepo "github.com/halqallaf/villa-booking-service/internal/infra/storage/expense"
	"github.com/halqallaf/villa-booking-service/internal/service/expenses/models"
	"github.com/halqallaf/villa-booking-service/pkg/ptr"
	"github.com/halqallaf/villa-booking-service/pkg/types"
)

type fakeRepo struct {
	byID    map[int64]*domain.Expense
	created *domain.Expense
	nextID  int64
}

func (f *fakeRepo) Create(_ context.Context, e *domain.Expense) (*domain.Expense, error) {
	f.nextID++
	stored := *e
	stored.ID = f.nextID
	f.created = &stored
	return &stored, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Expense, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, expenseRepo.ErrExpenseNotFound
	}
	return e, nil
}

func (f *fakeRepo) GetByDateRange(_ context.Context, _, _ types.DateString) ([]*domain.Expense, error) {
	return nil, nil
}

func (f *fakeRepo) Update(_ context.Context, id int64, _ domain.ExpenseUpdate) (*domain.Expense, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, expenseRepo.ErrExpenseNotFound
	}
	return e, nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return expenseRepo.ErrExpenseNotFound
	}
	delete(f.byID, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRepo() *fakeRepo {
	return &fakeRepo{byID: make(map[int64]*domain.Expense)}
}

func TestCreate(t *testing.T) {
	repo := newRepo()
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateExpenseRequest{
		Title:    "  Pool service  ",
		Amount:   45,
		Category: "maintenance",
		Date:     "2024-03-05",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Pool service", resp.Title)
	assert.Equal(t, "maintenance", resp.Category)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateExpenseRequest
	}{
		{"empty title", models.CreateExpenseRequest{Title: " ", Amount: 10, Category: "other", Date: "2024-03-05"}},
		{"negative amount", models.CreateExpenseRequest{Title: "x", Amount: -1, Category: "other", Date: "2024-03-05"}},
		{"bad date", models.CreateExpenseRequest{Title: "x", Amount: 10, Category: "other", Date: "05.03.2024"}},
		{"unknown category", models.CreateExpenseRequest{Title: "x", Amount: 10, Category: "fuel", Date: "2024-03-05"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newRepo(), nopLogger{})

			_, err := svc.Create(context.Background(), &tt.req)

			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewService(newRepo(), nopLogger{})

	_, err := svc.Update(context.Background(), 42, &models.UpdateExpenseRequest{
		Amount: ptr.Ptr(20.0),
	})

	require.ErrorIs(t, err, ErrExpenseNotFound)
}

func TestUpdate_EmptyRequest(t *testing.T) {
	svc := NewService(newRepo(), nopLogger{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateExpenseRequest{})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_UnknownCategory(t *testing.T) {
	svc := NewService(newRepo(), nopLogger{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateExpenseRequest{
		Category: ptr.Ptr("fuel"),
	})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	repo := newRepo()
	repo.byID[1] = &domain.Expense{ID: 1, Title: "Pool service"}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 1))
	require.ErrorIs(t, svc.Delete(context.Background(), 1), ErrExpenseNotFound)
}

func TestList_InvalidRange(t *testing.T) {
	svc := NewService(newRepo(), nopLogger{})

	_, err := svc.List(context.Background(), "2024-03-31", "2024-03-01")
	require.ErrorIs(t, err, ErrInvalidInput)
}
