package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/halqallaf/villa-booking-service/internal/domain"
	bookingRepo "github.com/halqallaf/villa-booking-service/internal/infra/storage/booking"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil, если сбор метрик выключен
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования.
//
// Проверка доступности и вставка выполняются в одной сериализуемой
// транзакции: проверка, сделанная вызывающим раньше, не учитывается,
// потому что между ней и записью мог вклиниться другой писатель.
// Даже если два экземпляра сервиса пройдут проверку одновременно,
// ограничение уникальности в БД отклонит вторую вставку - такой отказ
// тоже возвращается как ErrSlotNotAvailable, а не как внутренняя ошибка.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%q, date=%s, slot=%s, price=%.3f, free=%t",
		req.ClientName, req.Date, req.Slot, req.Price, req.IsFree)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем входные данные
	price := req.Price
	if req.IsFree {
		price = 0
	}

	var result *domain.Booking

	// 3. Проверка доступности и вставка в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем неотмененные бронирования даты с блокировкой (FOR UPDATE)
		existing, err := uc.bookingRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings for date=%s: %v", req.Date, err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 3.2. Проверяем конфликт слотов
		occupied := domain.NewSlotSet(existing)
		if domain.Conflicts(occupied, req.Slot) {
			uc.logger.Warn("CreateBooking: slot conflict, date=%s, slot=%s, occupied=%d",
				req.Date, req.Slot, len(occupied))
			return ErrSlotNotAvailable
		}

		// 3.3. Создаем бронирование
		booking := &domain.Booking{
			ClientName: strings.TrimSpace(req.ClientName),
			Phone:      req.Phone,
			Notes:      req.Notes,
			Date:       req.Date,
			Slot:       req.Slot,
			Price:      price,
			IsFree:     req.IsFree,
			Status:     domain.StatusConfirmed,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Конкурентный писатель успел занять слот - это конфликт,
			// а не сбой хранилища
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: lost race for date=%s, slot=%s", req.Date, req.Slot)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) && uc.metrics != nil {
			uc.metrics.IncBookingConflict()
		}
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.IncBookingCreated()
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)
	return fromDomainBooking(result), nil
}
