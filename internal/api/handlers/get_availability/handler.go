package get_availability

import (
	"errors"
	"net/http"

	"github.com/halqallaf/villa-booking-service/internal/api/handlers"
	"github.com/halqallaf/villa-booking-service/internal/domain"
	checkAvailability "github.com/halqallaf/villa-booking-service/internal/usecase/check_availability"
	"github.com/halqallaf/villa-booking-service/pkg/types"
)

const (
	msgInvalidInput = "некорректные параметры date или slot"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?date=YYYY-MM-DD&slot=morning|evening|full
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &checkAvailability.Request{
		Date: types.DateString(query.Get("date")),
		Slot: domain.SlotKind(query.Get("slot")),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid params: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /availability - Failed to check availability: date=%s, slot=%s, error=%v",
				req.Date, req.Slot, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - date=%s, slot=%s, available=%t",
		req.Date, req.Slot, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
