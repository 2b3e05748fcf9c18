package service

import (
	"context"
	"strings"
	"time"

	"github.com/sangkips/lanchonete-pos/internal/domain/entity"
	"github.com/sangkips/lanchonete-pos/internal/domain/repository"
	"github.com/sangkips/lanchonete-pos/pkg/apperror"
	"github.com/shopspring/decimal"
)

// ExpenseService handles expense-related operations
type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
	clock
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repository.ExpenseRepository, loc *time.Location) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		clock:       newClock(loc),
	}
}

// CreateExpenseInput represents the create expense input
type CreateExpenseInput struct {
	Description string
	Category    string
	Amount      decimal.Decimal
	Date        string
}

// CreateExpense records an expense
func (s *ExpenseService) CreateExpense(ctx context.Context, input *CreateExpenseInput) (*entity.Expense, error) {
	input.Description = strings.TrimSpace(input.Description)
	input.Category = strings.TrimSpace(input.Category)

	var v apperror.Validator
	v.Check(input.Description != "", "descricao", "is required")
	v.Check(input.Category != "", "categoria", "is required")
	v.Check(input.Amount.IsPositive(), "valor", "must be greater than zero")
	v.Check(input.Date == "" || validDate(input.Date), "data", "must be a date in YYYY-MM-DD format")
	if err := v.Err(); err != nil {
		return nil, err
	}

	expense := &entity.Expense{
		Description: input.Description,
		Category:    input.Category,
		Amount:      input.Amount.Round(2),
		Date:        input.Date,
	}
	if expense.Date == "" {
		expense.Date = s.today()
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// ListExpenses returns expenses newest first, optionally for a single date
func (s *ExpenseService) ListExpenses(ctx context.Context, date string) ([]entity.Expense, error) {
	if err := checkDateFilter("data", date); err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.List(ctx, date)
	if err != nil {
		return nil, err
	}
	if expenses == nil {
		expenses = []entity.Expense{}
	}
	return expenses, nil
}

// DeleteExpense removes an expense
func (s *ExpenseService) DeleteExpense(ctx context.Context, id uint) error {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if expense == nil {
		return apperror.NewNotFoundError("Expense")
	}
	return s.expenseRepo.Delete(ctx, id)
}
