package get_stats

import (
	"context"
	"fmt"

	"github.com/halqallaf/villa-booking-service/internal/domain"
)

// UseCase use case расчета статистики за период
type UseCase struct {
	bookingRepo BookingRepository
	expenseRepo ExpenseRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, expenseRepo ExpenseRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

// Execute считает статистику доходов, расходов и занятости за период.
// Отмененные бронирования не участвуют ни в выручке, ни в занятости.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetStats: period=%s to %s", req.DateFrom, req.DateTo)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetStats: validation failed: %v", err)
		return nil, err
	}

	bookings, err := uc.bookingRepo.GetByDateRange(ctx, domain.BookingsFilter{
		DateFrom:         req.DateFrom,
		DateTo:           req.DateTo,
		ExcludeCancelled: true,
	})
	if err != nil {
		uc.logger.Error("GetStats: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	expenses, err := uc.expenseRepo.GetByDateRange(ctx, req.DateFrom, req.DateTo)
	if err != nil {
		uc.logger.Error("GetStats: failed to get expenses: %v", err)
		return nil, fmt.Errorf("%w: failed to get expenses: %v", ErrInternal, err)
	}

	stats := domain.ComputeStats(bookings, expenses, req.DateFrom, req.DateTo)

	uc.logger.Info("GetStats: bookings=%d, expenses=%d, revenue=%.3f, occupancy=%.1f%%",
		stats.TotalBookings, len(expenses), stats.TotalRevenue, stats.OccupancyRate)

	return &Response{
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
		Stats:    stats,
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
