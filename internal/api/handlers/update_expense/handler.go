package update_expense

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/halqallaf/villa-booking-service/internal/api/handlers"
	"github.com/halqallaf/villa-booking-service/internal/service/expenses"
	"github.com/halqallaf/villa-booking-service/internal/service/expenses/models"
)

const (
	msgInvalidExpenseID   = "некорректный ID расхода"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные для обновления"
	msgNotFound           = "расход не найден"
)

type Handler struct {
	service ExpenseService
	logger  Logger
}

func NewHandler(service ExpenseService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/expenses/{expenseId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	expenseID, err := strconv.ParseInt(vars["expenseId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /expenses/{id} - Invalid expense ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidExpenseID)
		return
	}

	var req models.UpdateExpenseRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /expenses/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), expenseID, &req)
	if err != nil {
		switch {
		case errors.Is(err, expenses.ErrInvalidInput):
			h.logger.Warn("PATCH /expenses/{id} - Validation failed: expense_id=%d, error=%v", expenseID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, expenses.ErrExpenseNotFound):
			h.logger.Warn("PATCH /expenses/{id} - Expense not found: expense_id=%d", expenseID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /expenses/{id} - Failed to update expense: expense_id=%d, error=%v",
				expenseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /expenses/{id} - Expense updated successfully: expense_id=%d", expenseID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
