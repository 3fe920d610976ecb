package get_calendar

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/halqallaf/villa-booking-service/internal/api/handlers"
	getCalendar "github.com/halqallaf/villa-booking-service/internal/usecase/get_calendar"
)

const (
	msgInvalidMonth = "некорректный месяц, ожидается YYYY-MM"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/{month}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	req := &getCalendar.Request{Month: vars["month"]}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /calendar/{month} - Invalid month %q: %v", req.Month, err)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /calendar/{month} - Failed to build calendar: month=%s, error=%v",
				req.Month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar/{month} - Calendar built: month=%s, cells=%d",
		result.Month, len(result.Cells))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
