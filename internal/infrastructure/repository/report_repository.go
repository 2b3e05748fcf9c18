package repository

import (
	"context"

	"github.com/sangkips/lanchonete-pos/internal/domain/entity"
	domainRepo "github.com/sangkips/lanchonete-pos/internal/domain/repository"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) SalesTotal(ctx context.Context, rng domainRepo.DateRange) (*domainRepo.TotalResult, error) {
	var result domainRepo.TotalResult
	err := r.db.WithContext(ctx).Model(&entity.Sale{}).
		Scopes(InRange(rng)).
		Select("COUNT(*) AS count, COALESCE(SUM(total_price), 0) AS total").
		Scan(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *reportRepository) ExpensesTotal(ctx context.Context, rng domainRepo.DateRange) (*domainRepo.TotalResult, error) {
	var result domainRepo.TotalResult
	err := r.db.WithContext(ctx).Model(&entity.Expense{}).
		Scopes(InRange(rng)).
		Select("COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total").
		Scan(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *reportRepository) BestSellers(ctx context.Context, rng domainRepo.DateRange, limit int) ([]entity.BestSeller, error) {
	results := []entity.BestSeller{}
	err := r.db.WithContext(ctx).Model(&entity.Sale{}).
		Scopes(InRange(rng)).
		Select("product_type, item, SUM(quantity) AS quantity, SUM(total_price) AS total").
		Group("product_type, item").
		Order("quantity DESC").
		Order("item ASC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *reportRepository) ExpensesByCategory(ctx context.Context, rng domainRepo.DateRange) ([]domainRepo.CategoryTotalResult, error) {
	results := []domainRepo.CategoryTotalResult{}
	err := r.db.WithContext(ctx).Model(&entity.Expense{}).
		Scopes(InRange(rng)).
		Select("category, SUM(amount) AS total").
		Group("category").
		Order("total DESC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
