package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateString(t *testing.T) {
	d := NewDateString(time.Date(2024, 3, 1, 15, 30, 0, 0, time.UTC))
	assert.Equal(t, "2024-03-01", d.String())
}

func TestNewDateStringFromString(t *testing.T) {
	d, err := NewDateStringFromString("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, DateString("2024-03-01"), d)

	for _, invalid := range []string{"", "01.03.2024", "2024-3-1", "2024-13-01", "2024-02-30"} {
		_, err := NewDateStringFromString(invalid)
		assert.Error(t, err, "input %q", invalid)
	}
}

func TestDateString_Validate(t *testing.T) {
	assert.NoError(t, DateString("2024-02-29").Validate())
	assert.Error(t, DateString("2023-02-29").Validate())
	assert.Error(t, DateString("").Validate())
}

func TestDateString_Ordering(t *testing.T) {
	a := DateString("2024-03-01")
	b := DateString("2024-03-02")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsBefore(a))
}

func TestDateString_ToTime(t *testing.T) {
	d := DateString("2024-03-01")

	tm, err := d.ToTime()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), tm)
}
