package repository

import (
	"context"
	"errors"

	"github.com/sangkips/lanchonete-pos/internal/domain/entity"
	domainRepo "github.com/sangkips/lanchonete-pos/internal/domain/repository"
	"gorm.io/gorm"
)

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) domainRepo.ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *expenseRepository) GetByID(ctx context.Context, id uint) (*entity.Expense, error) {
	var expense entity.Expense
	err := r.db.WithContext(ctx).First(&expense, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &expense, err
}

func (r *expenseRepository) List(ctx context.Context, date string) ([]entity.Expense, error) {
	var expenses []entity.Expense
	err := r.db.WithContext(ctx).
		Scopes(OnDate(date), Newest).
		Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Expense{}, id).Error
}
