package pos

import (
	"github.com/sangkips/lanchonete-pos/internal/client"
)

// Effect is a side effect requested by Update and run by App.
type Effect interface {
	isEffect()
}

// Target names the part of the state a fetch result goes to.
type Target int

const (
	TargetDashboard Target = iota
	TargetRecent
	TargetHistory
	TargetReport
)

// Render redraws the current state.
type Render struct{}

// Notify shows a transient message.
type Notify struct {
	Level   Level
	Message string
}

// Confirm asks the user a yes/no question and dispatches Then on yes.
type Confirm struct {
	Prompt string
	Then   Action
}

// FetchMenu loads the menu.
type FetchMenu struct{}

// FetchExpenseCategories loads the expense categories.
type FetchExpenseCategories struct{}

// FetchSales lists the sales of Date into a part of the state.
type FetchSales struct {
	Date string
	Into Target
}

// FetchExpenses lists the expenses of Date into a part of the state.
type FetchExpenses struct {
	Date string
	Into Target
}

// FetchDailyReport loads the report of one day, breakdowns included.
type FetchDailyReport struct {
	Date string
	Into Target
}

// FetchPeriodReport loads the summary of a date range.
type FetchPeriodReport struct {
	Start string
	End   string
}

// SubmitOrder posts one sale per line, in order, stopping at the first
// failure. An empty OrderID asks App to generate one.
type SubmitOrder struct {
	OrderID string
	Lines   []CartLine
	Date    string
}

// SaleUpdate sets the quantity of one record.
type SaleUpdate struct {
	ID       uint
	Quantity int
}

// UpdateSales issues one update per record, in order.
type UpdateSales struct {
	Key     string
	Updates []SaleUpdate
}

// DeleteSales issues one delete per record, in order.
type DeleteSales struct {
	Key string
	IDs []uint
}

// CreateExpense posts one expense.
type CreateExpense struct {
	Input client.ExpenseInput
}

// RemoveExpense deletes one expense.
type RemoveExpense struct{ ID uint }

// SendReceipt asks the server to print the receipt of an order.
type SendReceipt struct{ Key string }

func (Render) isEffect()                 {}
func (Notify) isEffect()                 {}
func (Confirm) isEffect()                {}
func (FetchMenu) isEffect()              {}
func (FetchExpenseCategories) isEffect() {}
func (FetchSales) isEffect()             {}
func (FetchExpenses) isEffect()          {}
func (FetchDailyReport) isEffect()       {}
func (FetchPeriodReport) isEffect()      {}
func (SubmitOrder) isEffect()            {}
func (UpdateSales) isEffect()            {}
func (DeleteSales) isEffect()            {}
func (CreateExpense) isEffect()          {}
func (RemoveExpense) isEffect()          {}
func (SendReceipt) isEffect()            {}
