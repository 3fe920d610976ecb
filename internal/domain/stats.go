package domain

import (
	"strings"

	"github.com/halqallaf/villa-booking-service/pkg/types"
)

// StatsSummary aggregate revenue and occupancy figures over a date range
type StatsSummary struct {
	TotalRevenue        float64
	TotalBookings       int
	TotalExpenses       float64
	NetProfit           float64
	UniqueClients       int
	AverageBookingValue float64
	OccupancyRate       float64 // Процент занятых единиц вместимости (0-100)

	ExpensesByCategory map[ExpenseCategory]float64
}

// ComputeStats reduces bookings and expenses into a StatsSummary for the
// inclusive date range [from, to]. Bookings are expected to be pre-filtered:
// cancelled records must not be passed in.
//
// Occupancy counts half-day units: a day offers two units, a full-day
// booking consumes both, a half-day booking consumes one.
func ComputeStats(bookings []*Booking, expenses []*Expense, from, to types.DateString) StatsSummary {
	stats := StatsSummary{
		TotalBookings:      len(bookings),
		ExpensesByCategory: make(map[ExpenseCategory]float64),
	}

	clients := make(map[string]struct{})
	occupiedUnits := 0

	for _, b := range bookings {
		stats.TotalRevenue += b.Price
		occupiedUnits += b.Slot.Units()

		name := strings.ToLower(strings.TrimSpace(b.ClientName))
		if name != "" {
			clients[name] = struct{}{}
		}
	}
	stats.UniqueClients = len(clients)

	for _, e := range expenses {
		stats.TotalExpenses += e.Amount
		stats.ExpensesByCategory[e.Category] += e.Amount
	}

	stats.NetProfit = stats.TotalRevenue - stats.TotalExpenses

	if stats.TotalBookings > 0 {
		stats.AverageBookingValue = stats.TotalRevenue / float64(stats.TotalBookings)
	}

	if days := daysInclusive(from, to); days > 0 {
		totalUnits := days * HalfDayUnitsPerDay
		stats.OccupancyRate = float64(occupiedUnits) / float64(totalUnits) * 100
	}

	return stats
}

// daysInclusive число дней в диапазоне, обе границы включительно.
// Для некорректного диапазона возвращает 0.
func daysInclusive(from, to types.DateString) int {
	start, err := from.ToTime()
	if err != nil {
		return 0
	}
	end, err := to.ToTime()
	if err != nil {
		return 0
	}
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
