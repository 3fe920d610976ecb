package types

import (
	"fmt"
	"time"
)

// dateLayout формат календарной даты (YYYY-MM-DD)
const dateLayout = "2006-01-02"

// DateString календарная дата без компоненты времени, хранится как "YYYY-MM-DD".
// Используется везде, где бронирования сопоставляются по дню:
// строковое равенство двух DateString эквивалентно равенству дат.
type DateString string

// NewDateString создает DateString из time.Time (время отбрасывается)
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// NewDateStringFromString парсит дату из строки формата YYYY-MM-DD
func NewDateStringFromString(s string) (DateString, error) {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", fmt.Errorf("types: invalid date string %q: %w", s, err)
	}
	return DateString(s), nil
}

// String возвращает дату в формате YYYY-MM-DD
func (d DateString) String() string {
	return string(d)
}

// IsZero проверяет, что дата не задана
func (d DateString) IsZero() bool {
	return d == ""
}

// Validate проверяет формат даты
func (d DateString) Validate() error {
	_, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return fmt.Errorf("types: invalid date string %q: %w", string(d), err)
	}
	return nil
}

// ToTime конвертирует дату в time.Time (полночь UTC)
func (d DateString) ToTime() (time.Time, error) {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("types: invalid date string %q: %w", string(d), err)
	}
	return t, nil
}

// IsBefore проверяет, что дата раньше other
// Лексикографическое сравнение корректно для формата YYYY-MM-DD
func (d DateString) IsBefore(other DateString) bool {
	return d < other
}

// IsAfter проверяет, что дата позже other
func (d DateString) IsAfter(other DateString) bool {
	return d > other
}
