package entity

import (
	"encoding/json"

	"github.com/sangkips/lanchonete-pos/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// BestSeller is one row of the daily ranking of items by quantity sold.
type BestSeller struct {
	ProductType enum.ProductType `json:"tipo"`
	Item        string           `json:"item"`
	Quantity    int64            `json:"quantidade"`
	Total       decimal.Decimal  `json:"total"`
}

func (b BestSeller) MarshalJSON() ([]byte, error) {
	type Alias BestSeller
	return json.Marshal(&struct {
		Alias
		Total float64 `json:"total"`
	}{
		Alias: Alias(b),
		Total: Money(b.Total),
	})
}

// Report is the financial summary of a day or a date range. Only single-day
// reports carry the breakdowns; a nil BestSellers or ExpensesByCategory means
// the breakdown was not computed, an empty one means there was nothing to list.
type Report struct {
	Date               string                     `json:"data,omitempty"`
	StartDate          string                     `json:"data_inicio,omitempty"`
	EndDate            string                     `json:"data_fim,omitempty"`
	TotalSales         decimal.Decimal            `json:"total_vendas"`
	SalesCount         int64                      `json:"quantidade_vendas"`
	TotalExpenses      decimal.Decimal            `json:"total_despesas"`
	ExpenseCount       int64                      `json:"quantidade_despesas"`
	Profit             decimal.Decimal            `json:"lucro"`
	BestSellers        []BestSeller               `json:"produtos_mais_vendidos,omitempty"`
	ExpensesByCategory map[string]decimal.Decimal `json:"despesas_por_categoria,omitempty"`
}

// HasBreakdown reports whether the per-item and per-category figures are present.
func (r *Report) HasBreakdown() bool {
	return r.BestSellers != nil || r.ExpensesByCategory != nil
}

// IsLoss reports whether expenses exceeded sales. Zero profit is not a loss.
func (r *Report) IsLoss() bool {
	return r.Profit.IsNegative()
}

func (r Report) MarshalJSON() ([]byte, error) {
	type wire struct {
		Date               string              `json:"data,omitempty"`
		StartDate          string              `json:"data_inicio,omitempty"`
		EndDate            string              `json:"data_fim,omitempty"`
		TotalSales         float64             `json:"total_vendas"`
		SalesCount         int64               `json:"quantidade_vendas"`
		TotalExpenses      float64             `json:"total_despesas"`
		ExpenseCount       int64               `json:"quantidade_despesas"`
		Profit             float64             `json:"lucro"`
		BestSellers        *[]BestSeller       `json:"produtos_mais_vendidos,omitempty"`
		ExpensesByCategory *map[string]float64 `json:"despesas_por_categoria,omitempty"`
	}
	out := wire{
		Date:          r.Date,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		TotalSales:    Money(r.TotalSales),
		SalesCount:    r.SalesCount,
		TotalExpenses: Money(r.TotalExpenses),
		ExpenseCount:  r.ExpenseCount,
		Profit:        Money(r.Profit),
	}
	if r.BestSellers != nil {
		out.BestSellers = &r.BestSellers
	}
	if r.ExpensesByCategory != nil {
		byCategory := make(map[string]float64, len(r.ExpensesByCategory))
		for cat, v := range r.ExpensesByCategory {
			byCategory[cat] = Money(v)
		}
		out.ExpensesByCategory = &byCategory
	}
	return json.Marshal(out)
}
