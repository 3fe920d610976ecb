package check_availability

import (
	"context"
	"fmt"

	"github.com/halqallaf/villa-booking-service/internal/domain"
)

// UseCase use case проверки доступности слота на дату
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

// Execute выполняет проверку доступности слота.
//
// При ошибке чтения из хранилища слот сообщается как недоступный
// (fail closed): лучше отказать в брони при деградировавшей БД,
// чем допустить двойное бронирование.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: date=%s, slot=%s", req.Date, req.Slot)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	bookings, err := uc.bookingRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get bookings for date=%s: %v", req.Date, err)
		return &Response{
				Date:      req.Date,
				Slot:      req.Slot,
				Available: false,
			},
			fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	occupied := domain.NewSlotSet(bookings)
	available := !domain.Conflicts(occupied, req.Slot)

	uc.logger.Info("CheckAvailability: date=%s, slot=%s, available=%t, occupied=%d",
		req.Date, req.Slot, available, len(occupied))

	return &Response{
		Date:      req.Date,
		Slot:      req.Slot,
		Available: available,
		Occupied:  occupiedKinds(occupied),
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.Date.Validate(); err != nil {
		return fmt.Errorf("%w: invalid date format: %v", ErrInvalidInput, err)
	}
	if !req.Slot.IsValid() {
		return fmt.Errorf("%w: unknown slot kind %q", ErrInvalidInput, req.Slot)
	}
	return nil
}

// occupiedKinds возвращает занятые слоты в стабильном порядке
func occupiedKinds(set domain.SlotSet) []domain.SlotKind {
	kinds := make([]domain.SlotKind, 0, len(set))
	for _, k := range []domain.SlotKind{domain.SlotMorning, domain.SlotEvening, domain.SlotFullDay} {
		if set.Contains(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}
