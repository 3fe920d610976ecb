package export_data

import (
	"time"

	"github.com/halqallaf/villa-booking-service/internal/domain"
	"github.com/halqallaf/villa-booking-service/pkg/types"
)

// Request модель запроса на экспорт данных за период
type Request struct {
	DateFrom types.DateString // Начало периода (включительно)
	DateTo   types.DateString // Конец периода (включительно)
}

// Response модель ответа с сериализованным документом экспорта
type Response struct {
	Filename string // Предлагаемое имя файла (villa-data-YYYY-MM-DD.json)
	Payload  []byte // Сериализованный Document
}

// Document структура экспортируемого документа.
// Порядок полей фиксирован объявлением структуры - сериализация
// детерминирована для одинаковых входных данных.
type Document struct {
	DateRange DateRangeDoc  `json:"dateRange"`
	Stats     StatsDoc      `json:"stats"`
	Bookings  []BookingDoc  `json:"bookings"`
	Expenses  []ExpenseDoc  `json:"expenses"`
}

// DateRangeDoc экспортируемый период
type DateRangeDoc struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// StatsDoc экспортируемая статистика
type StatsDoc struct {
	TotalRevenue        float64            `json:"totalRevenue"`
	TotalBookings       int                `json:"totalBookings"`
	TotalExpenses       float64            `json:"totalExpenses"`
	NetProfit           float64            `json:"netProfit"`
	UniqueClients       int                `json:"uniqueClients"`
	AverageBookingValue float64            `json:"averageBookingValue"`
	OccupancyRate       float64            `json:"occupancyRate"`
	ExpensesByCategory  map[string]float64 `json:"expensesByCategory"`
}

// BookingDoc экспортируемое бронирование
type BookingDoc struct {
	ID         int64   `json:"id"`
	ClientName string  `json:"clientName"`
	Phone      *string `json:"phone,omitempty"`
	Notes      *string `json:"notes,omitempty"`
	Date       string  `json:"date"`
	Slot       string  `json:"slot"`
	Price      float64 `json:"price"`
	IsFree     bool    `json:"isFree"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// ExpenseDoc экспортируемый расход
type ExpenseDoc struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Amount    float64 `json:"amount"`
	Category  string  `json:"category"`
	Date      string  `json:"date"`
	Notes     *string `json:"notes,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

func toBookingDoc(b *domain.Booking) BookingDoc {
	return BookingDoc{
		ID:         b.ID,
		ClientName: b.ClientName,
		Phone:      b.Phone,
		Notes:      b.Notes,
		Date:       b.Date.String(),
		Slot:       string(b.Slot),
		Price:      b.Price,
		IsFree:     b.IsFree,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  b.UpdatedAt.Format(time.RFC3339),
	}
}

func toExpenseDoc(e *domain.Expense) ExpenseDoc {
	return ExpenseDoc{
		ID:        e.ID,
		Title:     e.Title,
		Amount:    e.Amount,
		Category:  string(e.Category),
		Date:      e.Date.String(),
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
		UpdatedAt: e.UpdatedAt.Format(time.RFC3339),
	}
}

func toStatsDoc(s domain.StatsSummary) StatsDoc {
	byCategory := make(map[string]float64, len(s.ExpensesByCategory))
	for category, amount := range s.ExpensesByCategory {
		byCategory[string(category)] = amount
	}

	return StatsDoc{
		TotalRevenue:        s.TotalRevenue,
		TotalBookings:       s.TotalBookings,
		TotalExpenses:       s.TotalExpenses,
		NetProfit:           s.NetProfit,
		UniqueClients:       s.UniqueClients,
		AverageBookingValue: s.AverageBookingValue,
		OccupancyRate:       s.OccupancyRate,
		ExpensesByCategory:  byCategory,
	}
}
