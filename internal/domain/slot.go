package domain

import "fmt"

// SlotKind represents the bookable unit of time within a single day
type SlotKind string

const (
	SlotMorning SlotKind = "morning"
	SlotEvening SlotKind = "evening"
	SlotFullDay SlotKind = "full"
)

// ParseSlotKind парсит слот из строки, отклоняя неизвестные значения
func ParseSlotKind(s string) (SlotKind, error) {
	switch SlotKind(s) {
	case SlotMorning, SlotEvening, SlotFullDay:
		return SlotKind(s), nil
	default:
		return "", fmt.Errorf("unknown slot kind %q", s)
	}
}

// IsValid returns true if the slot kind is one of the three known values
func (k SlotKind) IsValid() bool {
	switch k {
	case SlotMorning, SlotEvening, SlotFullDay:
		return true
	default:
		return false
	}
}

// Units returns how many half-day capacity units the slot consumes.
// A full-day booking occupies both halves of the day.
func (k SlotKind) Units() int {
	if k == SlotFullDay {
		return 2
	}
	return 1
}

// SlotSet набор занятых слотов в пределах одного дня
type SlotSet map[SlotKind]struct{}

// NewSlotSet собирает набор занятых слотов из списка бронирований,
// пропуская отмененные
func NewSlotSet(bookings []*Booking) SlotSet {
	set := make(SlotSet, len(bookings))
	for _, b := range bookings {
		if b.IsCancelled() {
			continue
		}
		set[b.Slot] = struct{}{}
	}
	return set
}

// Contains проверяет, занят ли слот
func (s SlotSet) Contains(kind SlotKind) bool {
	_, ok := s[kind]
	return ok
}

// IsEmpty проверяет, что ни один слот не занят
func (s SlotSet) IsEmpty() bool {
	return len(s) == 0
}

// Conflicts reports whether a requested slot collides with the already
// occupied slots of the same day. The full-day slot is mutually exclusive
// with everything; morning and evening only collide with themselves.
func Conflicts(existing SlotSet, requested SlotKind) bool {
	if existing.Contains(SlotFullDay) {
		return true
	}

	switch requested {
	case SlotFullDay:
		return !existing.IsEmpty()
	case SlotMorning:
		return existing.Contains(SlotMorning)
	case SlotEvening:
		return existing.Contains(SlotEvening)
	default:
		// Неизвестный слот никогда не считается свободным
		return true
	}
}
