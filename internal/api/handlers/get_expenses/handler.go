package get_expenses

import (
	"errors"
	"net/http"

	"github.com/halqallaf/villa-booking-service/internal/api/handlers"
	"github.com/halqallaf/villa-booking-service/internal/service/expenses"
	"github.com/halqallaf/villa-booking-service/pkg/types"
)

const (
	msgInvalidPeriod = "некорректные параметры from или to"
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

// Handle GET /api/v1/expenses?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	from := types.DateString(query.Get("from"))
	to := types.DateString(query.Get("to"))

	result, err := h.service.List(r.Context(), from, to)
	if err != nil {
		switch {
		case errors.Is(err, expenses.ErrInvalidInput):
			h.logger.Warn("GET /expenses - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /expenses - Failed to list expenses: from=%s, to=%s, error=%v",
				from, to, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /expenses - Fetched %d expenses: from=%s, to=%s",
		len(result.Expenses), from, to)
	handlers.RespondJSON(w, http.StatusOK, result)
}
