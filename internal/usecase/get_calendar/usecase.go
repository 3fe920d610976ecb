package get_calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/halqallaf/villa-booking-service/internal/domain"
	"github.com/halqallaf/villa-booking-service/pkg/types"
)

// UseCase use case построения календарной сетки месяца
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute строит календарную сетку запрошенного месяца
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendar: month=%s", req.Month)

	month, err := time.Parse(domain.MonthFormat, req.Month)
	if err != nil {
		uc.logger.Warn("GetCalendar: invalid month %q: %v", req.Month, err)
		return nil, fmt.Errorf("%w: month must be in YYYY-MM format", ErrInvalidInput)
	}

	firstDay := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)

	// В ячейки попадают бронирования во всех статусах: отображение
	// отмененных - забота слоя представления
	bookings, err := uc.bookingRepo.GetByDateRange(ctx, domain.BookingsFilter{
		DateFrom: types.NewDateString(firstDay),
		DateTo:   types.NewDateString(lastDay),
	})
	if err != nil {
		uc.logger.Error("GetCalendar: failed to get bookings for month=%s: %v", req.Month, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	cells := BuildGrid(month, bookings)

	uc.logger.Info("GetCalendar: month=%s, bookings=%d, cells=%d", req.Month, len(bookings), len(cells))

	return &Response{
		Month: req.Month,
		Cells: cells,
	}, nil
}
