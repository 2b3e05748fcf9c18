package pos

import (
	"testing"

	"github.com/sangkips/lanchonete-pos/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReportView_PeriodHasPlaceholders(t *testing.T) {
	v := NewReportView(&entity.Report{
		StartDate:  "2026-10-01",
		EndDate:    "2026-10-17",
		TotalSales: decimal.NewFromInt(100),
		Profit:     decimal.NewFromInt(100),
	})

	assert.True(t, v.IsPeriod())
	assert.Equal(t, BreakdownUnavailable, v.BestSellersNote)
	assert.Equal(t, BreakdownUnavailable, v.ExpensesNote)
	assert.Nil(t, v.BestSellers)
	assert.False(t, v.Loss)
}

func TestNewReportView_DailyEmptyBreakdowns(t *testing.T) {
	v := NewReportView(&entity.Report{
		Date:               "2026-10-17",
		BestSellers:        []entity.BestSeller{},
		ExpensesByCategory: map[string]decimal.Decimal{},
	})

	assert.False(t, v.IsPeriod())
	assert.Equal(t, NoSalesRecorded, v.BestSellersNote)
	assert.Equal(t, NoExpensesRecorded, v.ExpensesNote)
}

func TestNewReportView_DailyWithBreakdowns(t *testing.T) {
	v := NewReportView(&entity.Report{
		Date:        "2026-10-17",
		BestSellers: []entity.BestSeller{{Item: "X-Burger", Quantity: 3}},
		ExpensesByCategory: map[string]decimal.Decimal{
			"Gás":          decimal.NewFromInt(90),
			"Ingredientes": decimal.NewFromInt(120),
			"Limpeza":      decimal.NewFromInt(90),
		},
	})

	assert.Empty(t, v.BestSellersNote)
	assert.Empty(t, v.ExpensesNote)
	require.Len(t, v.ExpensesByCategory, 3)
	assert.Equal(t, "Ingredientes", v.ExpensesByCategory[0].Category)
	assert.Equal(t, "Gás", v.ExpensesByCategory[1].Category)
	assert.Equal(t, "Limpeza", v.ExpensesByCategory[2].Category)
}

func TestNewReportView_ProfitSign(t *testing.T) {
	loss := NewReportView(&entity.Report{Profit: decimal.RequireFromString("-12.50")})
	assert.True(t, loss.Loss)
	assert.True(t, loss.Profit.Equal(decimal.RequireFromString("12.50")))

	zero := NewReportView(&entity.Report{Profit: decimal.Zero})
	assert.False(t, zero.Loss)
}
