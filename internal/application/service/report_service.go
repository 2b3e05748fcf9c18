package service

import (
	"context"
	"time"

	"github.com/sangkips/lanchonete-pos/internal/domain/entity"
	"github.com/sangkips/lanchonete-pos/internal/domain/repository"
	"github.com/sangkips/lanchonete-pos/pkg/apperror"
	"github.com/shopspring/decimal"
)

// BestSellerLimit is how many items the daily ranking lists
const BestSellerLimit = 5

// ReportService builds the financial reports
type ReportService struct {
	reportRepo repository.ReportRepository
	clock
}

// NewReportService creates a new report service
func NewReportService(reportRepo repository.ReportRepository, loc *time.Location) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		clock:      newClock(loc),
	}
}

// DailyReport returns the summary of one day with its breakdowns. An empty
// date means today.
func (s *ReportService) DailyReport(ctx context.Context, date string) (*entity.Report, error) {
	if date == "" {
		date = s.today()
	}
	if err := checkDateFilter("data", date); err != nil {
		return nil, err
	}

	day := repository.SingleDay(date)
	report, err := s.summary(ctx, day)
	if err != nil {
		return nil, err
	}
	report.Date = date

	report.BestSellers, err = s.reportRepo.BestSellers(ctx, day, BestSellerLimit)
	if err != nil {
		return nil, err
	}
	if report.BestSellers == nil {
		report.BestSellers = []entity.BestSeller{}
	}

	byCategory, err := s.reportRepo.ExpensesByCategory(ctx, day)
	if err != nil {
		return nil, err
	}
	report.ExpensesByCategory = make(map[string]decimal.Decimal, len(byCategory))
	for _, c := range byCategory {
		report.ExpensesByCategory[c.Category] = c.Total
	}

	return report, nil
}

// PeriodReport returns the summary of an inclusive date range. It carries no
// breakdowns. Either bound defaults to today when empty.
func (s *ReportService) PeriodReport(ctx context.Context, start, end string) (*entity.Report, error) {
	if start == "" {
		start = s.today()
	}
	if end == "" {
		end = s.today()
	}

	var v apperror.Validator
	v.Check(validDate(start), "data_inicio", "must be a date in YYYY-MM-DD format")
	v.Check(validDate(end), "data_fim", "must be a date in YYYY-MM-DD format")
	if err := v.Err(); err != nil {
		return nil, err
	}
	if start > end {
		return nil, apperror.NewBadRequestError("data_inicio must not be after data_fim")
	}

	report, err := s.summary(ctx, repository.DateRange{Start: start, End: end})
	if err != nil {
		return nil, err
	}
	report.StartDate = start
	report.EndDate = end
	return report, nil
}

func (s *ReportService) summary(ctx context.Context, rng repository.DateRange) (*entity.Report, error) {
	sales, err := s.reportRepo.SalesTotal(ctx, rng)
	if err != nil {
		return nil, err
	}
	expenses, err := s.reportRepo.ExpensesTotal(ctx, rng)
	if err != nil {
		return nil, err
	}

	return &entity.Report{
		TotalSales:    sales.Total.Round(2),
		SalesCount:    sales.Count,
		TotalExpenses: expenses.Total.Round(2),
		ExpenseCount:  expenses.Count,
		Profit:        sales.Total.Sub(expenses.Total).Round(2),
	}, nil
}
