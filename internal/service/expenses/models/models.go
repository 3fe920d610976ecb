package models

import (
	"time"

	"github.com/halqallaf/villa-booking-service/internal/domain"
	"github.com/halqallaf/villa-booking-service/pkg/types"
)

// Request модели

// CreateExpenseRequest запрос на создание расхода
type CreateExpenseRequest struct {
	Title    string           `json:"title"`
	Amount   float64          `json:"amount"`
	Category string           `json:"category"`
	Date     types.DateString `json:"date"`
	Notes    *string          `json:"notes,omitempty"`
}

// UpdateExpenseRequest запрос на обновление расхода
type UpdateExpenseRequest struct {
	Title    *string           `json:"title,omitempty"`
	Amount   *float64          `json:"amount,omitempty"`
	Category *string           `json:"category,omitempty"`
	Date     *types.DateString `json:"date,omitempty"`
	Notes    *string           `json:"notes,omitempty"`
}

// Response модели

// ExpenseResponse ответ с данными расхода
type ExpenseResponse struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Amount    float64 `json:"amount"`
	Category  string  `json:"category"`
	Date      string  `json:"date"`
	Notes     *string `json:"notes,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// ExpenseListResponse ответ со списком расходов
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToDomainUpdate конвертирует request в domain модель обновления
func (r *UpdateExpenseRequest) ToDomainUpdate() (domain.ExpenseUpdate, error) {
	upd := domain.ExpenseUpdate{
		Title:  r.Title,
		Amount: r.Amount,
		Date:   r.Date,
		Notes:  r.Notes,
	}

	if r.Category != nil {
		category, err := domain.ParseExpenseCategory(*r.Category)
		if err != nil {
			return upd, err
		}
		upd.Category = &category
	}

	return upd, nil
}

// FromDomainExpense конвертирует domain модель в DTO
func FromDomainExpense(e *domain.Expense) *ExpenseResponse {
	return &ExpenseResponse{
		ID:        e.ID,
		Title:     e.Title,
		Amount:    e.Amount,
		Category:  string(e.Category),
		Date:      e.Date.String(),
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
		UpdatedAt: e.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainExpenseList конвертирует список domain моделей в DTO
func FromDomainExpenseList(expenses []*domain.Expense) *ExpenseListResponse {
	resp := &ExpenseListResponse{
		Expenses: make([]ExpenseResponse, 0, len(expenses)),
	}

	for _, expense := range expenses {
		resp.Expenses = append(resp.Expenses, *FromDomainExpense(expense))
	}

	return resp
}
