package terminal

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/sangkips/lanchonete-pos/internal/domain/entity"
	"github.com/sangkips/lanchonete-pos/internal/domain/enum"
	"github.com/sangkips/lanchonete-pos/internal/pos"
	"github.com/sangkips/lanchonete-pos/pkg/format"
)

// Renderer draws pos state as plain text.
type Renderer struct {
	out    io.Writer
	format *format.Formatter
}

// NewRenderer creates a renderer writing to out with money formatted for
// locale.
func NewRenderer(out io.Writer, locale string) *Renderer {
	return &Renderer{out: out, format: format.New(locale)}
}

var notificationMarks = map[pos.Level]string{
	pos.LevelSuccess: "[ok]",
	pos.LevelWarning: "[!]",
	pos.LevelError:   "[erro]",
}

// Notify prints one notification.
func (r *Renderer) Notify(n pos.Notification) {
	fmt.Fprintf(r.out, "%s %s\n", notificationMarks[n.Level], n.Message)
}

// Render prints the header and the panel of the active tab.
func (r *Renderer) Render(s pos.State) {
	w := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	r.header(w, s)
	switch s.ActiveTab {
	case pos.TabSales:
		r.sales(w, s)
	case pos.TabExpenses:
		r.expenses(w, s)
	case pos.TabHistory:
		r.history(w, s)
	case pos.TabReports:
		r.report(w, s)
	}
}

func (r *Renderer) header(w io.Writer, s pos.State) {
	if t, err := time.Parse(format.DateLayout, s.Today); err == nil {
		fmt.Fprintf(w, "\n%s\n", format.LongDate(t))
	}
	tabs := make([]string, len(pos.Tabs))
	for i, t := range pos.Tabs {
		if s.IsActive(t) {
			tabs[i] = "[" + string(t) + "]"
		} else {
			tabs[i] = " " + string(t) + " "
		}
	}
	fmt.Fprintln(w, strings.Join(tabs, " "))

	if d := s.Dashboard; d != nil {
		fmt.Fprintf(w, "Hoje: vendas %s (%d)\tdespesas %s (%d)\t%s %s\n",
			r.format.Currency(d.TotalSales), d.SalesCount,
			r.format.Currency(d.TotalExpenses), d.ExpenseCount,
			profitLabel(d), r.format.Currency(d.Profit))
	}
	fmt.Fprintln(w, strings.Repeat("-", 48))
}

func (r *Renderer) sales(w io.Writer, s pos.State) {
	var current enum.ProductType
	for i, e := range s.MenuEntries() {
		if e.Category != current {
			current = e.Category
			fmt.Fprintf(w, "%s\n", format.ProductTypeLabel(string(current)))
		}
		fmt.Fprintf(w, "  %d\t%s\t%s\n", i+1, e.Name, r.format.Currency(e.Price))
		if e.Description != "" {
			fmt.Fprintf(w, "  \t  %s\t\n", e.Description)
		}
	}

	fmt.Fprintln(w, "\nCarrinho")
	if s.Cart.IsEmpty() {
		fmt.Fprintln(w, "  Carrinho vazio")
	}
	for i, l := range s.Cart.Lines {
		fmt.Fprintf(w, "  %d\t%dx %s\t%s\n", i+1, l.Quantity, l.Name, r.format.Currency(l.Total()))
	}
	fmt.Fprintf(w, "  \tTotal\t%s\n", r.format.Currency(s.Cart.Total()))

	fmt.Fprintln(w, "\nÚltimas vendas")
	r.orders(w, s.RecentOrders, NoSalesToday)
}

// NoSalesToday is shown when the recent-sales list is empty.
const NoSalesToday = "Nenhuma venda hoje"

func (r *Renderer) orders(w io.Writer, orders []pos.Order, empty string) {
	if len(orders) == 0 {
		fmt.Fprintf(w, "  %s\n", empty)
		return
	}
	for _, o := range orders {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", o.Key, format.DateTime(o.Timestamp), r.format.Currency(o.Total))
		for _, l := range o.Lines {
			fmt.Fprintf(w, "    %dx %s\t%s\t\n", l.Quantity, l.Item, r.format.Currency(l.TotalPrice))
		}
	}
}

func (r *Renderer) expenseList(w io.Writer, expenses []entity.Expense, empty string) {
	if len(expenses) == 0 {
		fmt.Fprintf(w, "  %s\n", empty)
		return
	}
	for _, e := range expenses {
		fmt.Fprintf(w, "  #%d\t%s\t%s\t%s\t%s\n", e.ID, format.Date(e.Date), e.Category, e.Description, r.format.Currency(e.Amount))
	}
}

func (r *Renderer) expenses(w io.Writer, s pos.State) {
	fmt.Fprintln(w, "Categorias")
	for _, c := range s.ExpenseCategories {
		mark := " "
		if c == s.ExpenseCategory {
			mark = "*"
		}
		fmt.Fprintf(w, "  %s %s\n", mark, c)
	}
	fmt.Fprintln(w, "\nÚltimas despesas")
	r.expenseList(w, s.RecentExpenses, pos.NoExpensesRecorded)
}

func (r *Renderer) history(w io.Writer, s pos.State) {
	filter := "todas as datas"
	if s.History.Date != "" {
		filter = format.Date(s.History.Date)
	}
	fmt.Fprintf(w, "Histórico (%s)\n", filter)
	if !s.History.Loaded {
		fmt.Fprintln(w, "  Carregando...")
		return
	}
	r.orders(w, s.History.Orders, pos.NoSalesRecorded)

	if e := s.Editor; e != nil {
		fmt.Fprintf(w, "\nEditando pedido %s\n", e.Key)
		for i, l := range e.Lines {
			fmt.Fprintf(w, "  %d\t%s\t%d\n", i+1, l.Item, l.Quantity)
		}
	}

	fmt.Fprintln(w, "\nDespesas")
	r.expenseList(w, s.History.Expenses, pos.NoExpensesRecorded)
}

func (r *Renderer) report(w io.Writer, s pos.State) {
	v := s.Report
	if v == nil {
		fmt.Fprintln(w, "Nenhum relatório gerado")
		return
	}

	if v.IsPeriod() {
		fmt.Fprintf(w, "Relatório de %s a %s\n", format.Date(v.StartDate), format.Date(v.EndDate))
	} else {
		date := v.Date
		if date == "" {
			date = v.StartDate
		}
		fmt.Fprintf(w, "Relatório de %s\n", format.Date(date))
	}
	fmt.Fprintf(w, "  Vendas\t%d\t%s\n", v.SalesCount, r.format.Currency(v.TotalSales))
	fmt.Fprintf(w, "  Despesas\t%d\t%s\n", v.ExpenseCount, r.format.Currency(v.TotalExpenses))
	fmt.Fprintf(w, "  %s\t\t%s\n", profitLabel(v), r.format.Currency(v.Profit))

	fmt.Fprintln(w, "\nProdutos mais vendidos")
	if v.BestSellersNote != "" {
		fmt.Fprintf(w, "  %s\n", v.BestSellersNote)
	}
	for i, b := range v.BestSellers {
		fmt.Fprintf(w, "  %d\t%s (%s)\t%d\t%s\n", i+1, b.Item, format.ProductTypeLabel(string(b.ProductType)), b.Quantity, r.format.Currency(b.Total))
	}

	fmt.Fprintln(w, "\nDespesas por categoria")
	if v.ExpensesNote != "" {
		fmt.Fprintf(w, "  %s\n", v.ExpensesNote)
	}
	for _, c := range v.ExpensesByCategory {
		fmt.Fprintf(w, "  %s\t%s\n", c.Category, r.format.Currency(c.Total))
	}
}

func profitLabel(v *pos.ReportView) string {
	if v.Loss {
		return "Prejuízo"
	}
	return "Lucro"
}
