package bookings

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/halqallaf/villa-booking-service/internal/domain"
	bookingRepo "github.com/halqallaf/villa-booking-service/internal/infra/storage/booking"
	"github.com/halqallaf/villa-booking-service/internal/service/bookings/models"
	"github.com/halqallaf/villa-booking-service/pkg/ptr"
	"github.com/halqallaf/villa-booking-service/pkg/types"
)

// Service сервис для работы с бронированиями.
// Создание бронирований сюда не входит: оно идет через usecase
// create_booking, чтобы всегда проходить проверку доступности.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования за период, по возрастанию даты.
// Возвращаются бронирования во всех статусах - фильтрация отмененных
// остается на вызывающем.
func (s *Service) List(ctx context.Context, req *models.GetBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings for period=%s to %s", req.DateFrom, req.DateTo)

	if err := validateRange(req.DateFrom, req.DateTo); err != nil {
		s.logger.Warn("List: invalid period: %v", err)
		return nil, err
	}

	bookings, err := s.bookingRepo.GetByDateRange(ctx, domain.BookingsFilter{
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
	})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Update обновляет изменяемые поля бронирования.
// Слот и дата через этот метод не меняются.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Update: updating booking id=%d", id)

	upd, err := req.ToDomainUpdate()
	if err != nil {
		s.logger.Warn("Update: invalid status for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if err := validateUpdate(&upd); err != nil {
		s.logger.Warn("Update: validation failed for booking id=%d: %v", id, err)
		return nil, err
	}

	// Бесплатное бронирование всегда с нулевой ценой
	if upd.IsFree != nil && *upd.IsFree {
		upd.Price = ptr.Ptr(0.0)
	}

	booking, err := s.bookingRepo.Update(ctx, id, upd)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			s.logger.Warn("Update: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrSlotTaken):
			s.logger.Warn("Update: booking id=%d cannot return to an occupied slot", id)
			return nil, ErrSlotConflict
		default:
			s.logger.Error("Update: repository error for booking id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Update: successfully updated booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// Cancel переводит бронирование в статус cancelled, освобождая слот,
// но сохраняя запись для истории
func (s *Service) Cancel(ctx context.Context, id int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", id, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", id)
	return nil
}

// Delete физически удаляет бронирование
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}

// validateUpdate валидирует изменяемые поля
func validateUpdate(upd *domain.BookingUpdate) error {
	if upd.IsEmpty() {
		return fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	if upd.ClientName != nil && strings.TrimSpace(*upd.ClientName) == "" {
		return fmt.Errorf("%w: clientName must not be empty", ErrInvalidInput)
	}

	if upd.Price != nil {
		if math.IsNaN(*upd.Price) || math.IsInf(*upd.Price, 0) {
			return fmt.Errorf("%w: price must be a finite number", ErrInvalidInput)
		}
		if *upd.Price < 0 {
			return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
		}
	}

	return nil
}

// validateRange валидирует период выборки
func validateRange(from, to types.DateString) error {
	if from.IsZero() || to.IsZero() {
		return fmt.Errorf("%w: both dateFrom and dateTo are required", ErrInvalidInput)
	}
	if err := from.Validate(); err != nil {
		return fmt.Errorf("%w: invalid dateFrom: %v", ErrInvalidInput, err)
	}
	if err := to.Validate(); err != nil {
		return fmt.Errorf("%w: invalid dateTo: %v", ErrInvalidInput, err)
	}
	if to.IsBefore(from) {
		return fmt.Errorf("%w: dateTo must not be before dateFrom", ErrInvalidInput)
	}
	return nil
}
