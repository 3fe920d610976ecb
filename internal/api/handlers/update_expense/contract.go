package update_expense

import (
	"context"

	"github.com/halqallaf/villa-booking-service/internal/service/expenses/models"
)

type ExpenseService interface {
	Update(ctx context.Context, id int64, req *models.UpdateExpenseRequest) (*models.ExpenseResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
