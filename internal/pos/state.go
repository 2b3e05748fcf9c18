// Package pos is the point-of-sale client core. Update is a pure function
// from a State and an Action to a new State plus the effects to run; App
// runs those effects against the injected ports.
package pos

import (
	"sort"
	"time"

	"github.com/sangkips/lanchonete-pos/internal/domain/entity"
	"github.com/sangkips/lanchonete-pos/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// Tab is one of the views of the application.
type Tab string

const (
	TabSales    Tab = "vendas"
	TabExpenses Tab = "despesas"
	TabHistory  Tab = "historico"
	TabReports  Tab = "relatorios"
)

// Tabs lists every view in display order.
var Tabs = []Tab{TabSales, TabExpenses, TabHistory, TabReports}

// IsValid reports whether t is one of Tabs.
func (t Tab) IsValid() bool {
	for _, v := range Tabs {
		if v == t {
			return true
		}
	}
	return false
}

// Level classifies a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
)

// Notification is a transient message shown to the user.
type Notification struct {
	Level     Level
	Message   string
	ExpiresAt time.Time
}

// MenuEntry is one item of a menu category.
type MenuEntry struct {
	Category    enum.ProductType
	Name        string
	Price       decimal.Decimal
	Description string
}

// HistoryView is the sales history with the expenses of the same filter.
type HistoryView struct {
	Date     string
	Loaded   bool
	Orders   []Order
	Expenses []entity.Expense
}

// EditLine is one record being edited.
type EditLine struct {
	SaleID   uint
	Item     string
	Quantity int
}

// OrderEditor holds the quantities of an order being edited.
type OrderEditor struct {
	Key   string
	Lines []EditLine
}

// State is everything the client knows. It is replaced, never mutated, by
// Update.
type State struct {
	Today       string
	ActiveTab   Tab
	RecentLimit int

	Menu              *entity.Menu
	ExpenseCategories []string

	Cart Cart
	// PendingOrderID is the id of a checkout that failed part-way. It is
	// reused by the next checkout unless the cart changes first.
	PendingOrderID string

	Dashboard      *ReportView
	RecentOrders   []Order
	RecentExpenses []entity.Expense

	History HistoryView
	Editor  *OrderEditor

	ReportStart string
	ReportEnd   string
	Report      *ReportView

	ExpenseCategory string

	Notifications []Notification
}

// NewState returns the state before anything is loaded.
func NewState(recentLimit int) State {
	return State{ActiveTab: TabSales, RecentLimit: recentLimit}
}

// IsActive reports whether t is the active tab.
func (s State) IsActive(t Tab) bool {
	return s.ActiveTab == t
}

// MenuItems returns the items of one category sorted by name.
func (s State) MenuItems(category enum.ProductType) []MenuEntry {
	if s.Menu == nil {
		return nil
	}
	items := make([]MenuEntry, 0, len(s.Menu.Items[category]))
	for name, price := range s.Menu.Items[category] {
		items = append(items, MenuEntry{
			Category:    category,
			Name:        name,
			Price:       price,
			Description: s.Menu.Descriptions[category][name],
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items
}

// MenuEntries lists the whole menu, category by category, in the order the
// front-end numbers it.
func (s State) MenuEntries() []MenuEntry {
	var entries []MenuEntry
	for _, category := range enum.ProductTypes {
		entries = append(entries, s.MenuItems(category)...)
	}
	return entries
}
