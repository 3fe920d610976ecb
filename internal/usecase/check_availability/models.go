package check_availability

import (
	"github.com/halqallaf/villa-booking-service/internal/domain"
	"github.com/halqallaf/villa-booking-service/pkg/types"
)

// Request модель запроса на проверку доступности слота
type Request struct {
	Date types.DateString // Дата бронирования
	Slot domain.SlotKind  // Запрашиваемый слот
}

// Response модель ответа проверки доступности
type Response struct {
	Date      types.DateString  // Дата, на которую выполнялась проверка
	Slot      domain.SlotKind   // Запрашиваемый слот
	Available bool              // Доступен ли слот
	Occupied  []domain.SlotKind // Уже занятые слоты этого дня
}
