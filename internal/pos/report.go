package pos

import (
	"sort"

	"github.com/sangkips/lanchonete-pos/internal/domain/entity"
	"github.com/shopspring/decimal"
)

const (
	BreakdownUnavailable = "Detalhamento disponível apenas para relatórios de um único dia"
	NoSalesRecorded      = "Nenhuma venda registrada"
	NoExpensesRecorded   = "Nenhuma despesa registrada"
)

// CategoryTotal is one expense category of a daily report.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// ReportView is a report prepared for display. Profit is always
// non-negative; Loss carries the sign. A non-empty note replaces the
// corresponding list.
type ReportView struct {
	Date          string
	StartDate     string
	EndDate       string
	TotalSales    decimal.Decimal
	SalesCount    int64
	TotalExpenses decimal.Decimal
	ExpenseCount  int64
	Profit        decimal.Decimal
	Loss          bool

	BestSellers        []entity.BestSeller
	BestSellersNote    string
	ExpensesByCategory []CategoryTotal
	ExpensesNote       string
}

// IsPeriod reports whether the view covers more than one day.
func (v *ReportView) IsPeriod() bool {
	return v.StartDate != "" && v.StartDate != v.EndDate
}

// NewReportView decides what to show from the fields present in r, not from
// which endpoint produced it.
func NewReportView(r *entity.Report) *ReportView {
	v := &ReportView{
		Date:          r.Date,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		TotalSales:    r.TotalSales,
		SalesCount:    r.SalesCount,
		TotalExpenses: r.TotalExpenses,
		ExpenseCount:  r.ExpenseCount,
		Profit:        r.Profit.Abs(),
		Loss:          r.IsLoss(),
	}

	switch {
	case r.BestSellers == nil:
		v.BestSellersNote = BreakdownUnavailable
	case len(r.BestSellers) == 0:
		v.BestSellersNote = NoSalesRecorded
	default:
		v.BestSellers = r.BestSellers
	}

	switch {
	case r.ExpensesByCategory == nil:
		v.ExpensesNote = BreakdownUnavailable
	case len(r.ExpensesByCategory) == 0:
		v.ExpensesNote = NoExpensesRecorded
	default:
		v.ExpensesByCategory = make([]CategoryTotal, 0, len(r.ExpensesByCategory))
		for cat, total := range r.ExpensesByCategory {
			v.ExpensesByCategory = append(v.ExpensesByCategory, CategoryTotal{Category: cat, Total: total})
		}
		sort.Slice(v.ExpensesByCategory, func(i, j int) bool {
			a, b := v.ExpensesByCategory[i], v.ExpensesByCategory[j]
			if !a.Total.Equal(b.Total) {
				return a.Total.GreaterThan(b.Total)
			}
			return a.Category < b.Category
		})
	}
	return v
}
