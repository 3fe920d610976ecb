package get_calendar

import (
	"time"

	"github.com/halqallaf/villa-booking-service/internal/domain"
	getCalendar "github.com/halqallaf/villa-booking-service/internal/usecase/get_calendar"
)

// CalendarResponse HTTP response model: сетка месяца 6x7
type CalendarResponse struct {
	Month string         `json:"month"` // YYYY-MM
	Cells []CellResponse `json:"cells"`
}

// CellResponse одна ячейка календарной сетки
type CellResponse struct {
	Date           string            `json:"date"`
	IsCurrentMonth bool              `json:"isCurrentMonth"`
	Bookings       []BookingResponse `json:"bookings"`
}

// BookingResponse бронирование внутри ячейки
type BookingResponse struct {
	ID         int64   `json:"id"`
	ClientName string  `json:"clientName"`
	Slot       string  `json:"slot"`
	Price      float64 `json:"price"`
	IsFree     bool    `json:"isFree"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	cells := make([]CellResponse, 0, len(resp.Cells))
	for _, cell := range resp.Cells {
		cells = append(cells, toCellResponse(cell))
	}

	return &CalendarResponse{
		Month: resp.Month,
		Cells: cells,
	}
}

func toCellResponse(cell domain.DayCell) CellResponse {
	bookings := make([]BookingResponse, 0, len(cell.Bookings))
	for _, b := range cell.Bookings {
		bookings = append(bookings, BookingResponse{
			ID:         b.ID,
			ClientName: b.ClientName,
			Slot:       string(b.Slot),
			Price:      b.Price,
			IsFree:     b.IsFree,
			Status:     string(b.Status),
			CreatedAt:  b.CreatedAt.Format(time.RFC3339),
		})
	}

	return CellResponse{
		Date:           cell.Date.String(),
		IsCurrentMonth: cell.IsCurrentMonth,
		Bookings:       bookings,
	}
}
