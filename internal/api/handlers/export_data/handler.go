package export_data

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/halqallaf/villa-booking-service/internal/api/handlers"
	exportData "github.com/halqallaf/villa-booking-service/internal/usecase/export_data"
	"github.com/halqallaf/villa-booking-service/pkg/types"
)

const (
	msgInvalidPeriod = "некорректные параметры from или to"
)

type Handler struct {
	useCase ExportDataUseCase
	logger  Logger
}

func NewHandler(useCase ExportDataUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/export?from=YYYY-MM-DD&to=YYYY-MM-DD
//
// Отдает документ как скачиваемый файл: клиент сохраняет его под
// именем из Content-Disposition.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &exportData.Request{
		DateFrom: types.DateString(query.Get("from")),
		DateTo:   types.DateString(query.Get("to")),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, exportData.ErrInvalidInput):
			h.logger.Warn("GET /export - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /export - Failed to export data: from=%s, to=%s, error=%v",
				req.DateFrom, req.DateTo, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /export - Export ready: from=%s, to=%s, file=%s, bytes=%d",
		req.DateFrom, req.DateTo, result.Filename, len(result.Payload))

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Payload)
}
