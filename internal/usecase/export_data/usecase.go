package export_data

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/halqallaf/villa-booking-service/internal/domain"
)

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// UseCase use case экспорта данных за период
type UseCase struct {
	bookingRepo  BookingRepository
	expenseRepo  ExpenseRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, expenseRepo ExpenseRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		expenseRepo:  expenseRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute собирает документ экспорта за период.
// В список бронирований попадают записи во всех статусах, но статистика
// считается только по неотмененным - так же, как в GetStats.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ExportData: period=%s to %s", req.DateFrom, req.DateTo)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ExportData: validation failed: %v", err)
		return nil, err
	}

	bookings, err := uc.bookingRepo.GetByDateRange(ctx, domain.BookingsFilter{
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
	})
	if err != nil {
		uc.logger.Error("ExportData: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	expenses, err := uc.expenseRepo.GetByDateRange(ctx, req.DateFrom, req.DateTo)
	if err != nil {
		uc.logger.Error("ExportData: failed to get expenses: %v", err)
		return nil, fmt.Errorf("%w: failed to get expenses: %v", ErrInternal, err)
	}

	active := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if !b.IsCancelled() {
			active = append(active, b)
		}
	}
	stats := domain.ComputeStats(active, expenses, req.DateFrom, req.DateTo)

	doc := Document{
		DateRange: DateRangeDoc{
			From: req.DateFrom.String(),
			To:   req.DateTo.String(),
		},
		Stats:    toStatsDoc(stats),
		Bookings: make([]BookingDoc, 0, len(bookings)),
		Expenses: make([]ExpenseDoc, 0, len(expenses)),
	}
	for _, b := range bookings {
		doc.Bookings = append(doc.Bookings, toBookingDoc(b))
	}
	for _, e := range expenses {
		doc.Expenses = append(doc.Expenses, toExpenseDoc(e))
	}

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		uc.logger.Error("ExportData: failed to marshal document: %v", err)
		return nil, fmt.Errorf("%w: failed to marshal document: %v", ErrInternal, err)
	}

	filename := fmt.Sprintf("villa-data-%s.json", uc.timeProvider.Now().Format(domain.DateFormat))

	uc.logger.Info("ExportData: exported %d bookings, %d expenses (%d bytes)",
		len(bookings), len(expenses), len(payload))

	return &Response{
		Filename: filename,
		Payload:  payload,
	}, nil
}

// validateRequest валидирует период запроса
func validateRequest(req *Request) error {
	if req.DateFrom.IsZero() || req.DateTo.IsZero() {
		return fmt.Errorf("%w: both dateFrom and dateTo are required", ErrInvalidInput)
	}
	if err := req.DateFrom.Validate(); err != nil {
		return fmt.Errorf("%w: invalid dateFrom: %v", ErrInvalidInput, err)
	}
	if err := req.DateTo.Validate(); err != nil {
		return fmt.Errorf("%w: invalid dateTo: %v", ErrInvalidInput, err)
	}
	if req.DateTo.IsBefore(req.DateFrom) {
		return fmt.Errorf("%w: dateTo must not be before dateFrom", ErrInvalidInput)
	}
	return nil
}
