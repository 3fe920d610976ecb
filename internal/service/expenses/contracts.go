package expenses

import (
	"context"

	"github.com/halqallaf/villa-booking-service/internal/domain"
	"github.com/halqallaf/villa-booking-service/pkg/types"
)

// ExpenseRepository интерфейс репозитория расходов
type ExpenseRepository interface {
	Create(ctx context.Context, expense *domain.Expense) (*domain.Expense, error)
	GetByID(ctx context.Context, id int64) (*domain.Expense, error)
	GetByDateRange(ctx context.Context, from, to types.DateString) ([]*domain.Expense, error)
	Update(ctx context.Context, id int64, upd domain.ExpenseUpdate) (*domain.Expense, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
