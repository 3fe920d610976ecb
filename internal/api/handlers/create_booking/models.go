package create_booking

import (
	"time"

	"github.com/halqallaf/villa-booking-service/internal/domain"
	createBooking "github.com/halqallaf/villa-booking-service/internal/usecase/create_booking"
	"github.com/halqallaf/villa-booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ClientName string  `json:"clientName"`
	Phone      *string `json:"phone,omitempty"`
	Notes      *string `json:"notes,omitempty"`
	Date       string  `json:"date"` // "2025-10-15"
	Slot       string  `json:"slot"` // morning | evening | full
	Price      float64 `json:"price"`
	IsFree     bool    `json:"isFree"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Формат даты и слота проверяет валидация use case.
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		ClientName: r.ClientName,
		Phone:      r.Phone,
		Notes:      r.Notes,
		Date:       types.DateString(r.Date),
		Slot:       domain.SlotKind(r.Slot),
		Price:      r.Price,
		IsFree:     r.IsFree,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:         resp.ID,
		ClientName: resp.ClientName,
		Phone:      resp.Phone,
		Notes:      resp.Notes,
		Date:       resp.Date.String(),
		Slot:       string(resp.Slot),
		Price:      resp.Price,
		IsFree:     resp.IsFree,
		Status:     resp.Status,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
