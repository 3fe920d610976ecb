package create_booking

import (
	"fmt"
	"math"
	"strings"

	"github.com/halqallaf/villa-booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Все ошибки валидации возвращаются до первого обращения к хранилищу.
func validateRequest(req *Request) error {
	name := strings.TrimSpace(req.ClientName)
	if name == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: clientName exceeds %d characters", ErrInvalidInput, domain.MaxClientNameLength)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.Date.Validate(); err != nil {
		return fmt.Errorf("%w: invalid date format: %v", ErrInvalidInput, err)
	}

	if !req.Slot.IsValid() {
		return fmt.Errorf("%w: unknown slot kind %q", ErrInvalidInput, req.Slot)
	}

	if math.IsNaN(req.Price) || math.IsInf(req.Price, 0) {
		return fmt.Errorf("%w: price must be a finite number", ErrInvalidInput)
	}

	// Платное бронирование обязано иметь положительную цену;
	// у бесплатного цена принудительно обнуляется перед записью
	if !req.IsFree && req.Price <= 0 {
		return fmt.Errorf("%w: price must be positive for a paid booking", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
