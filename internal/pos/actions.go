package pos

import (
	"github.com/sangkips/lanchonete-pos/internal/domain/entity"
	"github.com/sangkips/lanchonete-pos/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// Action is a user command or the outcome of an effect.
type Action interface {
	isAction()
}

// Start loads the menu, the expense categories and the dashboard.
type Start struct{}

// SwitchTab makes Tab the only active tab and loads its data.
type SwitchTab struct{ Tab Tab }

// AddItem adds one unit of a menu item to the cart at its menu price.
type AddItem struct {
	Category enum.ProductType
	Name     string
}

// ChangeQuantity adds Delta to a cart line. A result of zero or less removes the line.
type ChangeQuantity struct {
	Line  int
	Delta int
}

// RemoveLine drops a cart line.
type RemoveLine struct{ Line int }

// ClearCart empties the cart after confirmation.
type ClearCart struct{}

// Checkout records the cart as one order.
type Checkout struct{}

// LoadHistory lists sales and expenses of Date, or of every day when empty.
type LoadHistory struct{ Date string }

// EditOrder opens the editor for an order of the history.
type EditOrder struct{ Key string }

// SetEditQuantity changes a line in the open editor.
type SetEditQuantity struct {
	Line     int
	Quantity int
}

// SaveEdit sends the changed quantities of the open editor.
type SaveEdit struct{}

// CancelEdit closes the editor without saving.
type CancelEdit struct{}

// DeleteOrder deletes every record of an order after confirmation.
type DeleteOrder struct{ Key string }

// GenerateReport builds the report for a date range. Empty fields fall back
// to the current inputs.
type GenerateReport struct {
	Start string
	End   string
}

// SelectExpenseCategory picks the category of the next expense.
type SelectExpenseCategory struct{ Category string }

// AddExpense records an expense in the selected category.
type AddExpense struct {
	Description string
	Amount      decimal.Decimal
}

// DeleteExpense deletes one expense after confirmation.
type DeleteExpense struct{ ID uint }

// PrintReceipt sends the receipt of an order to the printer.
type PrintReceipt struct{ Key string }

func (Start) isAction()                 {}
func (SwitchTab) isAction()             {}
func (AddItem) isAction()               {}
func (ChangeQuantity) isAction()        {}
func (RemoveLine) isAction()            {}
func (ClearCart) isAction()             {}
func (Checkout) isAction()              {}
func (LoadHistory) isAction()           {}
func (EditOrder) isAction()             {}
func (SetEditQuantity) isAction()       {}
func (SaveEdit) isAction()              {}
func (CancelEdit) isAction()            {}
func (DeleteOrder) isAction()           {}
func (GenerateReport) isAction()        {}
func (SelectExpenseCategory) isAction() {}
func (AddExpense) isAction()            {}
func (DeleteExpense) isAction()         {}
func (PrintReceipt) isAction()          {}

// Outcomes of effects. They are only produced by App.

type cartCleared struct{}

type orderDeleteConfirmed struct {
	Key string
	IDs []uint
}

type expenseDeleteConfirmed struct{ ID uint }

type menuLoaded struct {
	Menu *entity.Menu
	Err  error
}

type categoriesLoaded struct {
	Categories []string
	Err        error
}

type salesLoaded struct {
	Into  Target
	Date  string
	Sales []entity.Sale
	Err   error
}

type expensesLoaded struct {
	Into     Target
	Date     string
	Expenses []entity.Expense
	Err      error
}

type reportLoaded struct {
	Into   Target
	Report *entity.Report
	Err    error
}

// batchFinished reports a sequence of requests that stops at the first
// failure.
type batchFinished struct {
	Kind    batchKind
	OrderID string
	Done    int
	Total   int
	Err     error
}

type expenseCreated struct{ Err error }

type expenseRemoved struct{ Err error }

type receiptPrinted struct {
	Key     string
	Warning string
	Err     error
}

type batchKind int

const (
	batchCheckout batchKind = iota
	batchEdit
	batchDelete
)

func (cartCleared) isAction()            {}
func (orderDeleteConfirmed) isAction()   {}
func (expenseDeleteConfirmed) isAction() {}
func (menuLoaded) isAction()             {}
func (categoriesLoaded) isAction()       {}
func (salesLoaded) isAction()            {}
func (expensesLoaded) isAction()         {}
func (reportLoaded) isAction()           {}
func (batchFinished) isAction()          {}
func (expenseCreated) isAction()         {}
func (expenseRemoved) isAction()         {}
func (receiptPrinted) isAction()         {}
