package pos

import (
	"errors"
	"testing"

	"github.com/sangkips/lanchonete-pos/internal/domain/entity"
	"github.com/sangkips/lanchonete-pos/internal/domain/enum"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMenu() *entity.Menu {
	menu := entity.NewMenu()
	menu.Add(entity.MenuItem{Category: enum.ProductTypeLanche, Name: "X-Burger", Price: decimal.RequireFromString("8.00")})
	menu.Add(entity.MenuItem{Category: enum.ProductTypeBebida, Name: "Soda", Price: decimal.RequireFromString("5.00")})
	menu.Add(entity.MenuItem{Category: enum.ProductTypeBebida, Name: "Cerveja", Price: decimal.RequireFromString("6.00")})
	return menu
}

func readyState() State {
	s := NewState(5)
	s.Today = "2026-10-17"
	s.Menu = testMenu()
	s.ExpenseCategories = []string{"Gás", "Limpeza"}
	return s
}

func notifications(effects []Effect) []Notify {
	var out []Notify
	for _, e := range effects {
		if n, ok := e.(Notify); ok {
			out = append(out, n)
		}
	}
	return out
}

func hasRequest(effects []Effect) bool {
	for _, e := range effects {
		switch e.(type) {
		case Render, Notify, Confirm:
		default:
			return true
		}
	}
	return false
}

func TestUpdate_AddItem(t *testing.T) {
	s, effects := Update(readyState(), AddItem{Category: enum.ProductTypeLanche, Name: "X-Burger"})

	require.Len(t, s.Cart.Lines, 1)
	assert.True(t, s.Cart.Lines[0].UnitPrice.Equal(decimal.NewFromInt(8)))
	require.Len(t, notifications(effects), 1)
	assert.Equal(t, LevelSuccess, notifications(effects)[0].Level)
	assert.IsType(t, Render{}, effects[len(effects)-1])
}

func TestUpdate_AddItem_UnknownItem(t *testing.T) {
	s, effects := Update(readyState(), AddItem{Category: enum.ProductTypeLanche, Name: "Pizza"})

	assert.True(t, s.Cart.IsEmpty())
	require.Len(t, notifications(effects), 1)
	assert.Equal(t, LevelError, notifications(effects)[0].Level)
}

func TestUpdate_ClearCart_AlwaysAsks(t *testing.T) {
	s := readyState()

	_, effects := Update(s, ClearCart{})
	require.Len(t, effects, 1)
	confirm, ok := effects[0].(Confirm)
	require.True(t, ok)

	// Confirming on an empty cart is a no-op.
	after, _ := Update(s, confirm.Then)
	assert.True(t, after.Cart.IsEmpty())
}

func TestUpdate_Checkout_EmptyCart(t *testing.T) {
	_, effects := Update(readyState(), Checkout{})

	assert.False(t, hasRequest(effects))
	require.Len(t, notifications(effects), 1)
	assert.Equal(t, LevelError, notifications(effects)[0].Level)
}

func TestUpdate_Checkout_ReusesPendingOrderID(t *testing.T) {
	s, _ := Update(readyState(), AddItem{Category: enum.ProductTypeLanche, Name: "X-Burger"})

	s, _ = Update(s, batchFinished{Kind: batchCheckout, OrderID: "PED-1", Done: 0, Total: 1, Err: errors.New("boom")})
	assert.Equal(t, "PED-1", s.PendingOrderID)
	assert.Len(t, s.Cart.Lines, 1)

	_, effects := Update(s, Checkout{})
	require.Len(t, effects, 1)
	assert.Equal(t, "PED-1", effects[0].(SubmitOrder).OrderID)

	// Editing the cart starts a new order.
	s, _ = Update(s, ChangeQuantity{Line: 0, Delta: 1})
	_, effects = Update(s, Checkout{})
	assert.Empty(t, effects[0].(SubmitOrder).OrderID)
}

func TestUpdate_Checkout_TouchingPendingOrderStartsNewOne(t *testing.T) {
	pending, _ := Update(readyState(), AddItem{Category: enum.ProductTypeLanche, Name: "X-Burger"})
	pending, _ = Update(pending, batchFinished{Kind: batchCheckout, OrderID: "PED-1", Done: 1, Total: 2, Err: errors.New("boom")})
	require.Equal(t, "PED-1", pending.PendingOrderID)

	for _, kind := range []batchKind{batchEdit, batchDelete} {
		s, _ := Update(pending, batchFinished{Kind: kind, OrderID: "PED-1", Done: 1, Total: 1})
		assert.Empty(t, s.PendingOrderID)
		_, effects := Update(s, Checkout{})
		assert.Empty(t, effects[0].(SubmitOrder).OrderID)
	}

	// Other orders leave the pending id alone.
	s, _ := Update(pending, batchFinished{Kind: batchDelete, OrderID: "PED-2", Done: 1, Total: 1})
	assert.Equal(t, "PED-1", s.PendingOrderID)
}

func TestUpdate_Checkout_PartialFailureMessage(t *testing.T) {
	s := readyState()
	_, effects := Update(s, batchFinished{Kind: batchCheckout, OrderID: "PED-1", Done: 1, Total: 2, Err: errors.New("boom")})

	n := notifications(effects)
	require.Len(t, n, 1)
	assert.Contains(t, n[0].Message, "1 de 2 itens registrados")
}

func TestUpdate_GenerateReport_Branching(t *testing.T) {
	s := readyState()

	t.Run("same day calls the daily endpoint", func(t *testing.T) {
		_, effects := Update(s, GenerateReport{Start: "2026-10-17", End: "2026-10-17"})
		require.NotEmpty(t, effects)
		assert.Equal(t, FetchDailyReport{Date: "2026-10-17", Into: TargetReport}, effects[0])
	})

	t.Run("range calls the period endpoint", func(t *testing.T) {
		_, effects := Update(s, GenerateReport{Start: "2026-10-01", End: "2026-10-17"})
		require.NotEmpty(t, effects)
		assert.Equal(t, FetchPeriodReport{Start: "2026-10-01", End: "2026-10-17"}, effects[0])
	})

	t.Run("start after end is a user error", func(t *testing.T) {
		_, effects := Update(s, GenerateReport{Start: "2026-10-18", End: "2026-10-17"})
		assert.False(t, hasRequest(effects))
		assert.Len(t, notifications(effects), 1)
	})

	t.Run("missing dates is a user error", func(t *testing.T) {
		_, effects := Update(s, GenerateReport{Start: "2026-10-18"})
		assert.False(t, hasRequest(effects))
		assert.Len(t, notifications(effects), 1)
	})
}

func TestUpdate_ReportLoaded_PeriodRendersPlaceholder(t *testing.T) {
	s, effects := Update(readyState(), reportLoaded{Into: TargetReport, Report: &entity.Report{
		StartDate: "2026-10-01",
		EndDate:   "2026-10-17",
	}})

	assert.Empty(t, notifications(effects))
	require.NotNil(t, s.Report)
	assert.Equal(t, BreakdownUnavailable, s.Report.BestSellersNote)
}

func TestUpdate_SwitchTab(t *testing.T) {
	s := readyState()

	s, effects := Update(s, SwitchTab{Tab: TabHistory})
	assert.True(t, s.IsActive(TabHistory))
	assert.False(t, s.IsActive(TabSales))
	assert.Contains(t, effects, Effect(FetchSales{Date: "", Into: TargetHistory}))

	s, effects = Update(s, SwitchTab{Tab: TabReports})
	assert.True(t, s.IsActive(TabReports))
	assert.False(t, s.IsActive(TabHistory))
	assert.Equal(t, "2026-10-17", s.ReportStart)
	assert.Equal(t, "2026-10-17", s.ReportEnd)
	assert.Equal(t, FetchDailyReport{Date: "2026-10-17", Into: TargetReport}, effects[0])

	s, effects = Update(s, SwitchTab{Tab: "caixa"})
	assert.True(t, s.IsActive(TabReports))
	assert.Len(t, notifications(effects), 1)
}

func TestUpdate_EditOrder(t *testing.T) {
	s := readyState()
	s, _ = Update(s, salesLoaded{Into: TargetRecent, Date: s.Today, Sales: []entity.Sale{
		{ID: 1, OrderID: strPtr("A"), Item: "X-Burger", Quantity: 2},
		{ID: 2, OrderID: strPtr("A"), Item: "Soda", Quantity: 1},
	}})

	s, _ = Update(s, EditOrder{Key: "A"})
	require.NotNil(t, s.Editor)
	require.Len(t, s.Editor.Lines, 2)

	_, effects := Update(s, SetEditQuantity{Line: 0, Quantity: 0})
	assert.Equal(t, LevelError, notifications(effects)[0].Level)

	s, _ = Update(s, SetEditQuantity{Line: 1, Quantity: 3})
	_, effects = Update(s, SaveEdit{})
	require.Len(t, effects, 1)
	assert.Equal(t, UpdateSales{Key: "A", Updates: []SaleUpdate{{ID: 1, Quantity: 2}, {ID: 2, Quantity: 3}}}, effects[0])

	s, effects = Update(s, batchFinished{Kind: batchEdit, OrderID: "A", Done: 2, Total: 2})
	assert.Nil(t, s.Editor)
	assert.Contains(t, effects, Effect(FetchSales{Date: s.Today, Into: TargetRecent}))
}

func TestUpdate_DeleteOrder_AsksFirst(t *testing.T) {
	s := readyState()
	s, _ = Update(s, salesLoaded{Into: TargetRecent, Date: s.Today, Sales: []entity.Sale{
		{ID: 1, OrderID: strPtr("A")},
		{ID: 2, OrderID: strPtr("A")},
	}})

	_, effects := Update(s, DeleteOrder{Key: "A"})
	require.Len(t, effects, 1)
	confirm := effects[0].(Confirm)

	_, effects = Update(s, confirm.Then)
	assert.Equal(t, []Effect{DeleteSales{Key: "A", IDs: []uint{1, 2}}}, effects)

	_, effects = Update(s, DeleteOrder{Key: "missing"})
	assert.False(t, hasRequest(effects))
}

func TestUpdate_AddExpense_Validation(t *testing.T) {
	s := readyState()

	_, effects := Update(s, AddExpense{Description: "Botijão", Amount: decimal.NewFromInt(90)})
	assert.Equal(t, "Selecione uma categoria", notifications(effects)[0].Message)

	_, effects = Update(s, SelectExpenseCategory{Category: "Aluguel"})
	assert.Equal(t, LevelError, notifications(effects)[0].Level)

	s, _ = Update(s, SelectExpenseCategory{Category: "Gás"})

	_, effects = Update(s, AddExpense{Description: "  ", Amount: decimal.NewFromInt(90)})
	assert.False(t, hasRequest(effects))

	_, effects = Update(s, AddExpense{Description: "Botijão", Amount: decimal.Zero})
	assert.False(t, hasRequest(effects))

	_, effects = Update(s, AddExpense{Description: "Botijão", Amount: decimal.RequireFromString("90.50")})
	require.Len(t, effects, 1)
	create := effects[0].(CreateExpense)
	assert.Equal(t, "Gás", create.Input.Categoria)
	assert.Equal(t, 90.5, create.Input.Valor)
	assert.Equal(t, "2026-10-17", create.Input.Data)
}

func TestUpdate_MenuItemsSortedByName(t *testing.T) {
	items := readyState().MenuItems(enum.ProductTypeBebida)

	require.Len(t, items, 2)
	assert.Equal(t, "Cerveja", items[0].Name)
	assert.Equal(t, "Soda", items[1].Name)
}

func TestState_MenuEntriesFollowCategoryOrder(t *testing.T) {
	entries := readyState().MenuEntries()

	require.Len(t, entries, 3)
	assert.Equal(t, "X-Burger", entries[0].Name)
	assert.Equal(t, enum.ProductTypeBebida, entries[1].Category)
}
