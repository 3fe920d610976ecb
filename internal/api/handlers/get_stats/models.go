package get_stats

import (
	getStats "github.com/halqallaf/villa-booking-service/internal/usecase/get_stats"
)

// StatsResponse HTTP response model
type StatsResponse struct {
	DateFrom            string             `json:"dateFrom"`
	DateTo              string             `json:"dateTo"`
	TotalRevenue        float64            `json:"totalRevenue"`
	TotalBookings       int                `json:"totalBookings"`
	TotalExpenses       float64            `json:"totalExpenses"`
	NetProfit           float64            `json:"netProfit"`
	UniqueClients       int                `json:"uniqueClients"`
	AverageBookingValue float64            `json:"averageBookingValue"`
	OccupancyRate       float64            `json:"occupancyRate"`
	ExpensesByCategory  map[string]float64 `json:"expensesByCategory"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getStats.Response) *StatsResponse {
	byCategory := make(map[string]float64, len(resp.Stats.ExpensesByCategory))
	for category, amount := range resp.Stats.ExpensesByCategory {
		byCategory[string(category)] = amount
	}

	return &StatsResponse{
		DateFrom:            resp.DateFrom.String(),
		DateTo:              resp.DateTo.String(),
		TotalRevenue:        resp.Stats.TotalRevenue,
		TotalBookings:       resp.Stats.TotalBookings,
		TotalExpenses:       resp.Stats.TotalExpenses,
		NetProfit:           resp.Stats.NetProfit,
		UniqueClients:       resp.Stats.UniqueClients,
		AverageBookingValue: resp.Stats.AverageBookingValue,
		OccupancyRate:       resp.Stats.OccupancyRate,
		ExpensesByCategory:  byCategory,
	}
}
