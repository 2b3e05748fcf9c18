package repository

import (
	"context"

	"github.com/sangkips/lanchonete-pos/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense data operations
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	GetByID(ctx context.Context, id uint) (*entity.Expense, error)
	// List returns expenses newest first. An empty date lists every day.
	List(ctx context.Context, date string) ([]entity.Expense, error)
	Delete(ctx context.Context, id uint) error
}
