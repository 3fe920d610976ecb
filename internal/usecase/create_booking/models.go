package create_booking

import (
	"time"

	"github.com/halqallaf/villa-booking-service/internal/domain"
	"github.com/halqallaf/villa-booking-service/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ClientName string           // Имя клиента
	Phone      *string          // Телефон (опционально)
	Notes      *string          // Заметки (опционально)
	Date       types.DateString // Дата бронирования
	Slot       domain.SlotKind  // Запрашиваемый слот
	Price      float64          // Цена; при IsFree принудительно обнуляется
	IsFree     bool             // Бесплатное бронирование
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64
	ClientName string
	Phone      *string
	Notes      *string
	Date       types.DateString
	Slot       domain.SlotKind
	Price      float64
	IsFree     bool
	Status     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// fromDomainBooking конвертирует доменное бронирование в ответ use case
func fromDomainBooking(b *domain.Booking) *Response {
	return &Response{
		ID:         b.ID,
		ClientName: b.ClientName,
		Phone:      b.Phone,
		Notes:      b.Notes,
		Date:       b.Date,
		Slot:       b.Slot,
		Price:      b.Price,
		IsFree:     b.IsFree,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}
