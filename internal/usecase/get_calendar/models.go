package get_calendar

import "github.com/halqallaf/villa-booking-service/internal/domain"

// Request модель запроса календарной сетки
type Request struct {
	Month string // Месяц в формате YYYY-MM
}

// Response модель ответа с календарной сеткой месяца
type Response struct {
	Month string           // Запрошенный месяц (YYYY-MM)
	Cells []domain.DayCell // Ровно domain.GridCells ячеек
}
