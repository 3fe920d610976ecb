package get_bookings

import (
	"errors"
	"net/http"

	"github.com/halqallaf/villa-booking-service/internal/api/handlers"
	"github.com/halqallaf/villa-booking-service/internal/service/bookings"
	"github.com/halqallaf/villa-booking-service/internal/service/bookings/models"
	"github.com/halqallaf/villa-booking-service/pkg/types"
)

const (
	msgInvalidPeriod = "некорректные параметры from или to"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.GetBookingsRequest{
		DateFrom: types.DateString(query.Get("from")),
		DateTo:   types.DateString(query.Get("to")),
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: from=%s, to=%s, error=%v",
				req.DateFrom, req.DateTo, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Fetched %d bookings: from=%s, to=%s",
		len(result.Bookings), req.DateFrom, req.DateTo)
	handlers.RespondJSON(w, http.StatusOK, result)
}
