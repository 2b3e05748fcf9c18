package terminal

import (
	"testing"

	"github.com/sangkips/lanchonete-pos/internal/domain/entity"
	"github.com/sangkips/lanchonete-pos/internal/domain/enum"
	"github.com/sangkips/lanchonete-pos/internal/pos"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testState() pos.State {
	menu := entity.NewMenu()
	menu.Add(entity.MenuItem{Category: enum.ProductTypeLanche, Name: "X-Burger", Price: decimal.NewFromInt(15)})
	menu.Add(entity.MenuItem{Category: enum.ProductTypeBebida, Name: "Guaraná 350ml", Price: decimal.RequireFromString("4.50")})

	s := pos.NewState(5)
	s.Today = "2026-10-17"
	s.Menu = menu
	s.ExpenseCategories = []string{"Gás", "Limpeza"}
	return s
}

func TestParseCommand(t *testing.T) {
	s := testState()

	tests := []struct {
		line string
		want pos.Action
	}{
		{"tab historico", pos.SwitchTab{Tab: pos.TabHistory}},
		{"menu", pos.SwitchTab{Tab: pos.TabSales}},
		{"add 2", pos.AddItem{Category: enum.ProductTypeBebida, Name: "Guaraná 350ml"}},
		{"add lanche x-burger", pos.AddItem{Category: enum.ProductTypeLanche, Name: "X-Burger"}},
		{"add bebida Guaraná 350ml", pos.AddItem{Category: enum.ProductTypeBebida, Name: "Guaraná 350ml"}},
		{"qty 1 -1", pos.ChangeQuantity{Line: 0, Delta: -1}},
		{"qty 2 +3", pos.ChangeQuantity{Line: 1, Delta: 3}},
		{"rm 1", pos.RemoveLine{Line: 0}},
		{"clear", pos.ClearCart{}},
		{"checkout", pos.Checkout{}},
		{"history", pos.LoadHistory{}},
		{"history 2026-10-17", pos.LoadHistory{Date: "2026-10-17"}},
		{"edit PED-1", pos.EditOrder{Key: "PED-1"}},
		{"set 2 4", pos.SetEditQuantity{Line: 1, Quantity: 4}},
		{"save", pos.SaveEdit{}},
		{"cancel", pos.CancelEdit{}},
		{"delete single-3", pos.DeleteOrder{Key: "single-3"}},
		{"print single-3", pos.PrintReceipt{Key: "single-3"}},
		{"report", pos.GenerateReport{}},
		{"report 2026-10-17", pos.GenerateReport{Start: "2026-10-17", End: "2026-10-17"}},
		{"report 2026-10-01 2026-10-17", pos.GenerateReport{Start: "2026-10-01", End: "2026-10-17"}},
		{"category gás", pos.SelectExpenseCategory{Category: "Gás"}},
		{"unexpense 7", pos.DeleteExpense{ID: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			cmd, err := parseCommand(tt.line, s)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cmd.action)
		})
	}
}

func TestParseCommand_Expense(t *testing.T) {
	cmd, err := parseCommand("expense 90,50 Botijão de gás", testState())
	require.NoError(t, err)

	add, ok := cmd.action.(pos.AddExpense)
	require.True(t, ok)
	assert.Equal(t, "Botijão de gás", add.Description)
	assert.True(t, add.Amount.Equal(decimal.RequireFromString("90.50")))
}

func TestParseCommand_Errors(t *testing.T) {
	s := testState()

	for _, line := range []string{
		"add 9",
		"add 0",
		"add pizza Calabresa",
		"qty 1",
		"qty x 1",
		"rm",
		"set 1 x",
		"expense abc Gás",
		"unexpense -1",
		"report a b c",
		"voar",
	} {
		t.Run(line, func(t *testing.T) {
			_, err := parseCommand(line, s)
			assert.Error(t, err)
		})
	}

	_, err := parseCommand("   ", s)
	assert.ErrorIs(t, err, errEmpty)
}

func TestParseCommand_HelpAndQuit(t *testing.T) {
	cmd, err := parseCommand("help", testState())
	require.NoError(t, err)
	assert.True(t, cmd.help)

	cmd, err = parseCommand("sair", testState())
	require.NoError(t, err)
	assert.True(t, cmd.quit)
}
