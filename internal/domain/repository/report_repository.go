package repository

import (
	"context"

	"github.com/sangkips/lanchonete-pos/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// DateRange is an inclusive range of YYYY-MM-DD dates
type DateRange struct {
	Start string
	End   string
}

// SingleDay returns the range covering only date.
func SingleDay(date string) DateRange {
	return DateRange{Start: date, End: date}
}

// TotalResult is a row count and the sum of its money column
type TotalResult struct {
	Count int64
	Total decimal.Decimal
}

// CategoryTotalResult is the expense total of one category
type CategoryTotalResult struct {
	Category string
	Total    decimal.Decimal
}

// ReportRepository defines the aggregation queries behind the reports
type ReportRepository interface {
	// SalesTotal sums sale lines in the range
	SalesTotal(ctx context.Context, r DateRange) (*TotalResult, error)

	// ExpensesTotal sums expenses in the range
	ExpensesTotal(ctx context.Context, r DateRange) (*TotalResult, error)

	// BestSellers ranks (category, item) pairs by quantity sold
	BestSellers(ctx context.Context, r DateRange, limit int) ([]entity.BestSeller, error)

	// ExpensesByCategory sums expenses per category
	ExpensesByCategory(ctx context.Context, r DateRange) ([]CategoryTotalResult, error)
}
