package expense

import "errors"

var (
	// ErrExpenseNotFound возвращается, когда расход не найден
	ErrExpenseNotFound = errors.New("expense.repository: expense not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("expense.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("expense.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("expense.repository: failed to scan row")
)
