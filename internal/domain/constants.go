package domain

// Time format constants
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// Calendar grid dimensions: the month view is always rendered as
// six full weeks regardless of how many weeks the month spans
const (
	GridWeeks   = 6
	GridColumns = 7
	GridCells   = GridWeeks * GridColumns
)

// HalfDayUnitsPerDay сколько единиц вместимости дает один день:
// утренний и вечерний слоты
const HalfDayUnitsPerDay = 2

// Business validation constants
const (
	MaxClientNameLength = 200
	MaxNotesLength      = 500
	MaxTitleLength      = 200
)
