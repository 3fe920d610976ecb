package domain

import (
	"time"

	"github.com/halqallaf/villa-booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusPending   BookingStatus = "pending"
	StatusCancelled BookingStatus = "cancelled"
)

// ParseBookingStatus парсит статус из строки, отклоняя неизвестные значения
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case StatusConfirmed, StatusPending, StatusCancelled:
		return BookingStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// Booking represents a single slot reservation of the property
type Booking struct {
	ID         int64
	ClientName string
	Phone      *string
	Notes      *string
	Date       types.DateString
	Slot       SlotKind
	Price      float64
	IsFree     bool
	Status     BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the booking has been cancelled.
// Cancelled bookings are kept for history but do not occupy slots.
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can transition to cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed || b.Status == StatusPending
}

// BookingUpdate набор изменяемых полей бронирования.
// Слот и дата намеренно отсутствуют: их смена обязана проходить через
// удаление и повторное создание, чтобы заново пройти проверку доступности.
type BookingUpdate struct {
	ClientName *string
	Phone      *string
	Notes      *string
	Price      *float64
	IsFree     *bool
	Status     *BookingStatus
}

// IsEmpty проверяет, что ни одно поле не меняется
func (u *BookingUpdate) IsEmpty() bool {
	return u.ClientName == nil &&
		u.Phone == nil &&
		u.Notes == nil &&
		u.Price == nil &&
		u.IsFree == nil &&
		u.Status == nil
}

// BookingsFilter фильтр для выборки бронирований за период
type BookingsFilter struct {
	DateFrom         types.DateString // Начало периода (включительно)
	DateTo           types.DateString // Конец периода (включительно)
	ExcludeCancelled bool             // Исключать ли отмененные бронирования
}
