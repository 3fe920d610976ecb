package get_availability

import (
	checkAvailability "github.com/halqallaf/villa-booking-service/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date      string   `json:"date"`
	Slot      string   `json:"slot"`
	Available bool     `json:"available"`
	Occupied  []string `json:"occupied"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	occupied := make([]string, 0, len(resp.Occupied))
	for _, kind := range resp.Occupied {
		occupied = append(occupied, string(kind))
	}

	return &AvailabilityResponse{
		Date:      resp.Date.String(),
		Slot:      string(resp.Slot),
		Available: resp.Available,
		Occupied:  occupied,
	}
}
