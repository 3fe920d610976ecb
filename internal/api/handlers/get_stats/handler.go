package get_stats

import (
	"errors"
	"net/http"

	"github.com/halqallaf/villa-booking-service/internal/api/handlers"
	getStats "github.com/halqallaf/villa-booking-service/internal/usecase/get_stats"
	"github.com/halqallaf/villa-booking-service/pkg/types"
)

const (
	msgInvalidPeriod = "некорректные параметры from или to"
)

type Handler struct {
	useCase GetStatsUseCase
	logger  Logger
}

func NewHandler(useCase GetStatsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/stats?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &getStats.Request{
		DateFrom: types.DateString(query.Get("from")),
		DateTo:   types.DateString(query.Get("to")),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getStats.ErrInvalidInput):
			h.logger.Warn("GET /stats - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /stats - Failed to compute stats: from=%s, to=%s, error=%v",
				req.DateFrom, req.DateTo, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stats - Stats computed: from=%s, to=%s, bookings=%d",
		req.DateFrom, req.DateTo, result.Stats.TotalBookings)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
