package domain

import "github.com/halqallaf/villa-booking-service/pkg/types"

// DayCell represents a single cell of the month calendar grid.
// Cells that belong to the adjacent months (filler days) carry
// IsCurrentMonth=false and are never bookable through the UI.
type DayCell struct {
	Date           types.DateString
	IsCurrentMonth bool
	Bookings       []*Booking
}
