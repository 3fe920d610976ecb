package expense

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/halqallaf/villa-booking-service/internal/domain"
	"github.com/halqallaf/villa-booking-service/pkg/psqlbuilder"
	"github.com/halqallaf/villa-booking-service/pkg/txmanager"
	"github.com/halqallaf/villa-booking-service/pkg/types"
)

var expenseColumns = []string{
	"id",
	"title",
	"amount",
	"category",
	"date",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с расходами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расходов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый расход
func (r *Repository) Create(ctx context.Context, e *domain.Expense) (*domain.Expense, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("expenses").
		Columns("title", "amount", "category", "date", "notes").
		Values(e.Title, e.Amount, e.Category, e.Date.String(), e.Notes).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&e.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	e.CreatedAt = createdAt.Time
	e.UpdatedAt = updatedAt.Time

	return e, nil
}

// GetByID получает расход по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Expense, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(expenseColumns...).
		From("expenses").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	e, err := scanExpense(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrExpenseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan expense: %v", ErrScanRow, err)
	}

	return e, nil
}

// GetByDateRange получает расходы за период (границы включительно),
// отсортированные по дате по возрастанию
func (r *Repository) GetByDateRange(ctx context.Context, from, to types.DateString) ([]*domain.Expense, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(expenseColumns...).
		From("expenses").
		Where(squirrel.GtOrEq{"date": from.String()}).
		Where(squirrel.LtOrEq{"date": to.String()}).
		OrderBy("date ASC, created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanExpenses(rows)
}

// Update обновляет поля расхода
func (r *Repository) Update(ctx context.Context, id int64, upd domain.ExpenseUpdate) (*domain.Expense, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("expenses").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(expenseColumns, ", "))

	if upd.Title != nil {
		updateBuilder = updateBuilder.Set("title", *upd.Title)
	}
	if upd.Amount != nil {
		updateBuilder = updateBuilder.Set("amount", *upd.Amount)
	}
	if upd.Category != nil {
		updateBuilder = updateBuilder.Set("category", *upd.Category)
	}
	if upd.Date != nil {
		updateBuilder = updateBuilder.Set("date", upd.Date.String())
	}
	if upd.Notes != nil {
		updateBuilder = updateBuilder.Set("notes", *upd.Notes)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	e, err := scanExpense(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrExpenseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - scan expense: %v", ErrScanRow, err)
	}

	return e, nil
}

// Delete удаляет расход
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("expenses").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanExpense сканирует одну строку в расход
func scanExpense(row rowScanner) (*domain.Expense, error) {
	var e domain.Expense
	var date time.Time
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Amount,
		&e.Category,
		&date,
		&e.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	e.Date = types.NewDateString(date)
	e.CreatedAt = createdAt.Time
	e.UpdatedAt = updatedAt.Time

	return &e, nil
}

// scanExpenses сканирует результаты запроса в слайс расходов
func scanExpenses(rows *sql.Rows) ([]*domain.Expense, error) {
	expenses := make([]*domain.Expense, 0)

	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanExpenses - scan row: %v", ErrScanRow, err)
		}
		expenses = append(expenses, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanExpenses - rows error: %v", ErrScanRow, err)
	}

	return expenses, nil
}
