package expenses

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/halqallaf/villa-booking-service/internal/domain"
	expenseRepo "github.com/halqallaf/villa-booking-service/internal/infra/storage/expense"
	"github.com/halqallaf/villa-booking-service/internal/service/expenses/models"
	"github.com/halqallaf/villa-booking-service/pkg/types"
)

// Service сервис для работы с расходами
type Service struct {
	expenseRepo ExpenseRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса расходов
func NewService(expenseRepo ExpenseRepository, logger Logger) *Service {
	return &Service{
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

// Create создает новый расход
func (s *Service) Create(ctx context.Context, req *models.CreateExpenseRequest) (*models.ExpenseResponse, error) {
	s.logger.Info("Create: creating expense title=%q date=%s", req.Title, req.Date)

	if err := validateCreate(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	category, err := domain.ParseExpenseCategory(req.Category)
	if err != nil {
		s.logger.Warn("Create: unknown category %q", req.Category)
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, req.Category)
	}

	expense := &domain.Expense{
		Title:    strings.TrimSpace(req.Title),
		Amount:   req.Amount,
		Category: category,
		Date:     req.Date,
		Notes:    req.Notes,
	}

	created, err := s.expenseRepo.Create(ctx, expense)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created expense id=%d", created.ID)
	return models.FromDomainExpense(created), nil
}

// GetByID получает расход по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ExpenseResponse, error) {
	s.logger.Info("GetByID: fetching expense id=%d", id)

	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, expenseRepo.ErrExpenseNotFound) {
			s.logger.Warn("GetByID: expense id=%d not found", id)
			return nil, ErrExpenseNotFound
		}
		s.logger.Error("GetByID: repository error for expense id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainExpense(expense), nil
}

// List получает расходы за период, по возрастанию даты
func (s *Service) List(ctx context.Context, from, to types.DateString) (*models.ExpenseListResponse, error) {
	s.logger.Info("List: fetching expenses for period=%s to %s", from, to)

	if err := validateRange(from, to); err != nil {
		s.logger.Warn("List: invalid period: %v", err)
		return nil, err
	}

	expenses, err := s.expenseRepo.GetByDateRange(ctx, from, to)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d expenses", len(expenses))
	return models.FromDomainExpenseList(expenses), nil
}

// Update обновляет изменяемые поля расхода
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateExpenseRequest) (*models.ExpenseResponse, error) {
	s.logger.Info("Update: updating expense id=%d", id)

	upd, err := req.ToDomainUpdate()
	if err != nil {
		s.logger.Warn("Update: invalid category for expense id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: unknown category", ErrInvalidInput)
	}

	if err := validateUpdate(&upd); err != nil {
		s.logger.Warn("Update: validation failed for expense id=%d: %v", id, err)
		return nil, err
	}

	expense, err := s.expenseRepo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, expenseRepo.ErrExpenseNotFound) {
			s.logger.Warn("Update: expense id=%d not found", id)
			return nil, ErrExpenseNotFound
		}
		s.logger.Error("Update: repository error for expense id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated expense id=%d", id)
	return models.FromDomainExpense(expense), nil
}

// Delete физически удаляет расход
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting expense id=%d", id)

	if err := s.expenseRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, expenseRepo.ErrExpenseNotFound) {
			s.logger.Warn("Delete: expense id=%d not found", id)
			return ErrExpenseNotFound
		}
		s.logger.Error("Delete: repository error for expense id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted expense id=%d", id)
	return nil
}

// validateCreate валидирует данные нового расхода
func validateCreate(req *models.CreateExpenseRequest) error {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if len(title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title must not exceed %d characters", ErrInvalidInput, domain.MaxTitleLength)
	}

	if math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) {
		return fmt.Errorf("%w: amount must be a finite number", ErrInvalidInput)
	}
	if req.Amount < 0 {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}

	if err := req.Date.Validate(); err != nil {
		return fmt.Errorf("%w: invalid date: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateUpdate валидирует изменяемые поля
func validateUpdate(upd *domain.ExpenseUpdate) error {
	if upd.IsEmpty() {
		return fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	if upd.Title != nil {
		title := strings.TrimSpace(*upd.Title)
		if title == "" {
			return fmt.Errorf("%w: title must not be empty", ErrInvalidInput)
		}
		if len(title) > domain.MaxTitleLength {
			return fmt.Errorf("%w: title must not exceed %d characters", ErrInvalidInput, domain.MaxTitleLength)
		}
	}

	if upd.Amount != nil {
		if math.IsNaN(*upd.Amount) || math.IsInf(*upd.Amount, 0) {
			return fmt.Errorf("%w: amount must be a finite number", ErrInvalidInput)
		}
		if *upd.Amount < 0 {
			return fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
		}
	}

	if upd.Date != nil {
		if err := upd.Date.Validate(); err != nil {
			return fmt.Errorf("%w: invalid date: %v", ErrInvalidInput, err)
		}
	}

	return nil
}

// validateRange валидирует период выборки
func validateRange(from, to types.DateString) error {
	if from.IsZero() || to.IsZero() {
		return fmt.Errorf("%w: both dateFrom and dateTo are required", ErrInvalidInput)
	}
	if err := from.Validate(); err != nil {
		return fmt.Errorf("%w: invalid dateFrom: %v", ErrInvalidInput, err)
	}
	if err := to.Validate(); err != nil {
		return fmt.Errorf("%w: invalid dateTo: %v", ErrInvalidInput, err)
	}
	if to.IsBefore(from) {
		return fmt.Errorf("%w: dateTo must not be before dateFrom", ErrInvalidInput)
	}
	return nil
}
