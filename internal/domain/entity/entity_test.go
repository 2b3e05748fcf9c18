package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/sangkips/lanchonete-pos/internal/domain/enum"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaleJSON(t *testing.T) {
	order := "PED-1-ABC"
	s := Sale{
		ID:          7,
		OrderID:     &order,
		ProductType: enum.ProductTypeLanche,
		Item:        "X-Burger",
		Quantity:    2,
		UnitPrice:   decimal.RequireFromString("8.00"),
		Date:        "2026-10-17",
		CreatedAt:   time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC),
	}
	s.Recalculate()

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 7,
		"pedido_id": "PED-1-ABC",
		"tipo": "lanche",
		"item": "X-Burger",
		"quantidade": 2,
		"valor_unitario": 8,
		"valor_total": 16,
		"data": "2026-10-17",
		"data_hora": "2026-10-17T12:00:00Z"
	}`, string(out))

	var back Sale
	require.NoError(t, json.Unmarshal(out, &back))
	assert.True(t, back.TotalPrice.Equal(decimal.NewFromInt(16)))
	assert.Equal(t, "PED-1-ABC", back.OrderKey())
}

func TestSaleOrderKey(t *testing.T) {
	empty := ""
	assert.Equal(t, "single-3", (&Sale{ID: 3}).OrderKey())
	assert.Equal(t, "single-4", (&Sale{ID: 4, OrderID: &empty}).OrderKey())
}

func TestMenuJSON(t *testing.T) {
	desc := "Pão, hambúrguer e queijo"
	m := NewMenu()
	m.Add(MenuItem{Category: enum.ProductTypeLanche, Name: "X-Burger", Price: decimal.NewFromInt(15), Description: &desc})
	m.Add(MenuItem{Category: enum.ProductTypeBebida, Name: "Guaraná 350ml", Price: decimal.RequireFromString("4.5")})

	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"lanches": {"X-Burger": 15},
		"lanches_gourmet": {},
		"porcoes": {},
		"bebidas": {"Guaraná 350ml": 4.5},
		"descricoes_lanches": {"X-Burger": "Pão, hambúrguer e queijo"},
		"descricoes_lanches_gourmet": {}
	}`, string(out))

	var back Menu
	require.NoError(t, json.Unmarshal(out, &back))
	p, ok := back.Price(enum.ProductTypeBebida, "Guaraná 350ml")
	require.True(t, ok)
	assert.Equal(t, "4.5", p.String())
	assert.Equal(t, desc, back.Descriptions[enum.ProductTypeLanche]["X-Burger"])
}

func TestReportBreakdownPresence(t *testing.T) {
	daily := Report{Date: "2026-10-17", BestSellers: []BestSeller{}, ExpensesByCategory: map[string]decimal.Decimal{}}
	out, err := json.Marshal(daily)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"produtos_mais_vendidos":[]`)
	assert.Contains(t, string(out), `"despesas_por_categoria":{}`)

	var back Report
	require.NoError(t, json.Unmarshal(out, &back))
	assert.True(t, back.HasBreakdown())

	period := Report{StartDate: "2026-10-01", EndDate: "2026-10-17", Profit: decimal.NewFromInt(-5)}
	out, err = json.Marshal(period)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "produtos_mais_vendidos")

	back = Report{}
	require.NoError(t, json.Unmarshal(out, &back))
	assert.False(t, back.HasBreakdown())
	assert.True(t, back.IsLoss())
	assert.False(t, (&Report{}).IsLoss())
}

func TestNewReceipt(t *testing.T) {
	sales := []Sale{
		{Item: "X-Burger", ProductType: enum.ProductTypeLanche, Quantity: 2, UnitPrice: decimal.NewFromInt(8), TotalPrice: decimal.NewFromInt(16), Date: "2026-10-17"},
		{Item: "Soda", ProductType: enum.ProductTypeBebida, Quantity: 1, UnitPrice: decimal.NewFromInt(5), TotalPrice: decimal.NewFromInt(5), Date: "2026-10-17"},
	}
	r := NewReceipt(ReceiptHeader{StoreName: "Lanchonete"}, "PED-1", sales)

	assert.Equal(t, "2026-10-17", r.Date)
	assert.Len(t, r.Items, 2)
	assert.True(t, r.Total.Equal(decimal.NewFromInt(21)))

	out, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"total":21`)
}
