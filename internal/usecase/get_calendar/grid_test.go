package get_calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halqallaf/villa-booking-service/internal/domain"
	"github.com/halqallaf/villa-booking-service/pkg/types"
)

func month(t *testing.T, value string) time.Time {
	t.Helper()
	m, err := time.Parse(domain.MonthFormat, value)
	require.NoError(t, err)
	return m
}

func TestBuildGrid_AlwaysFortyTwoCells(t *testing.T) {
	for _, value := range []string{"2024-01", "2024-02", "2024-06", "2025-02", "2025-03", "2025-12"} {
		cells := BuildGrid(month(t, value), nil)
		assert.Len(t, cells, domain.GridCells, "month %s", value)
	}
}

func TestBuildGrid_LeadingFillerMatchesWeekday(t *testing.T) {
	// Март 2024: первое число - пятница, индекс дня недели 5
	cells := BuildGrid(month(t, "2024-03"), nil)

	require.Len(t, cells, domain.GridCells)

	for i := 0; i < 5; i++ {
		assert.False(t, cells[i].IsCurrentMonth, "cell %d", i)
	}
	assert.Equal(t, types.DateString("2024-02-25"), cells[0].Date)
	assert.Equal(t, types.DateString("2024-03-01"), cells[5].Date)
	assert.True(t, cells[5].IsCurrentMonth)
}

func TestBuildGrid_NoLeadingFillerWhenMonthStartsOnSunday(t *testing.T) {
	// Сентябрь 2024 начинается с воскресенья
	cells := BuildGrid(month(t, "2024-09"), nil)

	assert.Equal(t, types.DateString("2024-09-01"), cells[0].Date)
	assert.True(t, cells[0].IsCurrentMonth)
}

func TestBuildGrid_CurrentMonthCellCount(t *testing.T) {
	tests := []struct {
		month string
		days  int
	}{
		{"2024-02", 29},
		{"2025-02", 28},
		{"2024-04", 30},
		{"2024-03", 31},
	}

	for _, tt := range tests {
		cells := BuildGrid(month(t, tt.month), nil)

		current := 0
		for _, cell := range cells {
			if cell.IsCurrentMonth {
				current++
			}
		}
		assert.Equal(t, tt.days, current, "month %s", tt.month)
	}
}

func TestBuildGrid_BucketsBookingsByDate(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: 1, Date: "2024-03-01", Slot: domain.SlotMorning},
		{ID: 2, Date: "2024-03-01", Slot: domain.SlotEvening},
		{ID: 3, Date: "2024-03-15", Slot: domain.SlotFullDay},
	}

	cells := BuildGrid(month(t, "2024-03"), bookings)

	byDate := make(map[types.DateString]domain.DayCell, len(cells))
	for _, cell := range cells {
		byDate[cell.Date] = cell
	}

	require.Len(t, byDate[types.DateString("2024-03-01")].Bookings, 2)
	require.Len(t, byDate[types.DateString("2024-03-15")].Bookings, 1)
	assert.Empty(t, byDate[types.DateString("2024-03-02")].Bookings)
	assert.Equal(t, int64(3), byDate[types.DateString("2024-03-15")].Bookings[0].ID)
}

func TestBuildGrid_FillerBookingsVisible(t *testing.T) {
	// Бронирование на хвосте предыдущего месяца попадает в сетку,
	// если его день входит в ведущие ячейки
	bookings := []*domain.Booking{
		{ID: 7, Date: "2024-02-27", Slot: domain.SlotMorning},
	}

	cells := BuildGrid(month(t, "2024-03"), bookings)

	var found bool
	for _, cell := range cells {
		if cell.Date == "2024-02-27" {
			found = true
			assert.False(t, cell.IsCurrentMonth)
			assert.Len(t, cell.Bookings, 1)
		}
	}
	assert.True(t, found)
}
