package get_stats

import (
	"github.com/halqallaf/villa-booking-service/internal/domain"
	"github.com/halqallaf/villa-booking-service/pkg/types"
)

// Request модель запроса статистики за период
type Request struct {
	DateFrom types.DateString // Начало периода (включительно)
	DateTo   types.DateString // Конец периода (включительно)
}

// Response модель ответа со статистикой
type Response struct {
	DateFrom types.DateString
	DateTo   types.DateString
	Stats    domain.StatsSummary
}
