package models

import (
	"time"

	"github.com/halqallaf/villa-booking-service/internal/domain"
	"github.com/halqallaf/villa-booking-service/pkg/types"
)

// Request модели

// UpdateBookingRequest запрос на обновление бронирования.
// Слот и дата здесь отсутствуют намеренно: их смена должна проходить
// через удаление и повторное создание с новой проверкой доступности.
type UpdateBookingRequest struct {
	ClientName *string  `json:"clientName,omitempty"`
	Phone      *string  `json:"phone,omitempty"`
	Notes      *string  `json:"notes,omitempty"`
	Price      *float64 `json:"price,omitempty"`
	IsFree     *bool    `json:"isFree,omitempty"`
	Status     *string  `json:"status,omitempty"`
}

// GetBookingsRequest запрос на получение бронирований за период
type GetBookingsRequest struct {
	DateFrom types.DateString `json:"dateFrom"`
	DateTo   types.DateString `json:"dateTo"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         int64   `json:"id"`
	ClientName string  `json:"clientName"`
	Phone      *string `json:"phone,omitempty"`
	Notes      *string `json:"notes,omitempty"`
	Date       string  `json:"date"` // "2025-10-15"
	Slot       string  `json:"slot"` // morning | evening | full
	Price      float64 `json:"price"`
	IsFree     bool    `json:"isFree"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// ToDomainUpdate конвертирует request в domain модель обновления
func (r *UpdateBookingRequest) ToDomainUpdate() (domain.BookingUpdate, error) {
	upd := domain.BookingUpdate{
		ClientName: r.ClientName,
		Phone:      r.Phone,
		Notes:      r.Notes,
		Price:      r.Price,
		IsFree:     r.IsFree,
	}

	if r.Status != nil {
		status, err := domain.ParseBookingStatus(*r.Status)
		if err != nil {
			return upd, err
		}
		upd.Status = &status
	}

	return upd, nil
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
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

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(booking))
	}

	return resp
}
