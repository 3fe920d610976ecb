package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConflicts(t *testing.T) {
	tests := []struct {
		name      string
		existing  []SlotKind
		requested SlotKind
		want      bool
	}{
		{
			name:      "empty day accepts morning",
			existing:  nil,
			requested: SlotMorning,
			want:      false,
		},
		{
			name:      "empty day accepts evening",
			existing:  nil,
			requested: SlotEvening,
			want:      false,
		},
		{
			name:      "empty day accepts full day",
			existing:  nil,
			requested: SlotFullDay,
			want:      false,
		},
		{
			name:      "morning and evening coexist",
			existing:  []SlotKind{SlotMorning},
			requested: SlotEvening,
			want:      false,
		},
		{
			name:      "evening and morning coexist",
			existing:  []SlotKind{SlotEvening},
			requested: SlotMorning,
			want:      false,
		},
		{
			name:      "morning rejects second morning",
			existing:  []SlotKind{SlotMorning},
			requested: SlotMorning,
			want:      true,
		},
		{
			name:      "evening rejects second evening",
			existing:  []SlotKind{SlotEvening},
			requested: SlotEvening,
			want:      true,
		},
		{
			name:      "full day blocks morning",
			existing:  []SlotKind{SlotFullDay},
			requested: SlotMorning,
			want:      true,
		},
		{
			name:      "full day blocks evening",
			existing:  []SlotKind{SlotFullDay},
			requested: SlotEvening,
			want:      true,
		},
		{
			name:      "full day blocks full day",
			existing:  []SlotKind{SlotFullDay},
			requested: SlotFullDay,
			want:      true,
		},
		{
			name:      "morning blocks full day",
			existing:  []SlotKind{SlotMorning},
			requested: SlotFullDay,
			want:      true,
		},
		{
			name:      "evening blocks full day",
			existing:  []SlotKind{SlotEvening},
			requested: SlotFullDay,
			want:      true,
		},
		{
			name:      "both halves block full day",
			existing:  []SlotKind{SlotMorning, SlotEvening},
			requested: SlotFullDay,
			want:      true,
		},
		{
			name:      "unknown slot is never free",
			existing:  nil,
			requested: SlotKind("night"),
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := make(SlotSet, len(tt.existing))
			for _, k := range tt.existing {
				existing[k] = struct{}{}
			}

			assert.Equal(t, tt.want, Conflicts(existing, tt.requested))
		})
	}
}

func TestNewSlotSet_SkipsCancelled(t *testing.T) {
	bookings := []*Booking{
		{Slot: SlotMorning, Status: StatusConfirmed},
		{Slot: SlotEvening, Status: StatusCancelled},
	}

	set := NewSlotSet(bookings)

	assert.True(t, set.Contains(SlotMorning))
	assert.False(t, set.Contains(SlotEvening))
}

func TestSlotKind_Units(t *testing.T) {
	assert.Equal(t, 1, SlotMorning.Units())
	assert.Equal(t, 1, SlotEvening.Units())
	assert.Equal(t, 2, SlotFullDay.Units())
}

func TestParseSlotKind(t *testing.T) {
	for _, valid := range []string{"morning", "evening", "full"} {
		kind, err := ParseSlotKind(valid)
		require.NoError(t, err)
		assert.Equal(t, SlotKind(valid), kind)
	}

	_, err := ParseSlotKind("night")
	assert.Error(t, err)

	_, err = ParseSlotKind("")
	assert.Error(t, err)
}
