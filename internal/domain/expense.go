package domain

import (
	"time"

	"github.com/halqallaf/villa-booking-service/pkg/types"
)

// ExpenseCategory represents the category of a property expense
type ExpenseCategory string

const (
	CategoryMaintenance ExpenseCategory = "maintenance"
	CategoryUtilities   ExpenseCategory = "utilities"
	CategoryCleaning    ExpenseCategory = "cleaning"
	CategorySupplies    ExpenseCategory = "supplies"
	CategoryInsurance   ExpenseCategory = "insurance"
	CategoryOther       ExpenseCategory = "other"
)

// ParseExpenseCategory парсит категорию из строки, отклоняя неизвестные значения
func ParseExpenseCategory(s string) (ExpenseCategory, error) {
	switch ExpenseCategory(s) {
	case CategoryMaintenance, CategoryUtilities, CategoryCleaning,
		CategorySupplies, CategoryInsurance, CategoryOther:
		return ExpenseCategory(s), nil
	default:
		return "", ErrInvalidCategory
	}
}

// IsValid returns true if the category is one of the known values
func (c ExpenseCategory) IsValid() bool {
	_, err := ParseExpenseCategory(string(c))
	return err == nil
}

// Expense represents a property-related expense record
type Expense struct {
	ID       int64
	Title    string
	Amount   float64
	Category ExpenseCategory
	Date     types.DateString
	Notes    *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ExpenseUpdate набор изменяемых полей расхода
type ExpenseUpdate struct {
	Title    *string
	Amount   *float64
	Category *ExpenseCategory
	Date     *types.DateString
	Notes    *string
}

// IsEmpty проверяет, что ни одно поле не меняется
func (u *ExpenseUpdate) IsEmpty() bool {
	return u.Title == nil &&
		u.Amount == nil &&
		u.Category == nil &&
		u.Date == nil &&
		u.Notes == nil
}
