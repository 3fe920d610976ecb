package create_expense

import (
	"errors"
	"net/http"

	"github.com/halqallaf/villa-booking-service/internal/api/handlers"
	"github.com/halqallaf/villa-booking-service/internal/service/expenses"
	"github.com/halqallaf/villa-booking-service/internal/service/expenses/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные расхода"
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

// Handle POST /api/v1/expenses
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateExpenseRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /expenses - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, expenses.ErrInvalidInput):
			h.logger.Warn("POST /expenses - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /expenses - Failed to create expense: title=%q, error=%v",
				req.Title, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /expenses - Expense created successfully: expense_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
