package get_expenses

import (
	"context"

	"github.com/halqallaf/villa-booking-service/internal/service/expenses/models"
	"github.com/halqallaf/villa-booking-service/pkg/types"
)

type ExpenseService interface {
	List(ctx context.Context, from, to types.DateString) (*models.ExpenseListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
