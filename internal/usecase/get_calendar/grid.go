package get_calendar

import (
	"time"

	"github.com/halqallaf/villa-booking-service/internal/domain"
	"github.com/halqallaf/villa-booking-service/pkg/types"
)

// BuildGrid разворачивает месяц в фиксированную сетку 6x7 дней.
//
// Перед первым числом вставляются дни предыдущего месяца - столько,
// каков индекс дня недели первого числа (неделя начинается с воскресенья).
// После последнего числа добавляются дни следующего месяца, пока ячеек
// не станет ровно domain.GridCells. Сетка всегда 42 ячейки, независимо
// от того, на сколько недель реально растянулся месяц.
//
// Бронирования раскладываются по ячейкам строгим равенством строк дат.
// Чистая функция: не обращается к хранилищу.
func BuildGrid(month time.Time, bookings []*domain.Booking) []domain.DayCell {
	firstDay := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)

	// Индекс дня недели первого числа: Sunday = 0
	leading := int(firstDay.Weekday())
	gridStart := firstDay.AddDate(0, 0, -leading)

	byDate := bucketByDate(bookings)

	cells := make([]domain.DayCell, 0, domain.GridCells)
	for i := 0; i < domain.GridCells; i++ {
		day := gridStart.AddDate(0, 0, i)
		date := types.NewDateString(day)

		cells = append(cells, domain.DayCell{
			Date:           date,
			IsCurrentMonth: day.Year() == month.Year() && day.Month() == month.Month(),
			Bookings:       byDate[date],
		})
	}

	return cells
}

// bucketByDate группирует бронирования по строковому представлению даты
func bucketByDate(bookings []*domain.Booking) map[types.DateString][]*domain.Booking {
	byDate := make(map[types.DateString][]*domain.Booking, len(bookings))
	for _, b := range bookings {
		byDate[b.Date] = append(byDate[b.Date], b)
	}
	return byDate
}
