package pos

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sangkips/lanchonete-pos/internal/client"
	"github.com/sangkips/lanchonete-pos/internal/domain/entity"
	"github.com/sangkips/lanchonete-pos/pkg/apperror"
	"github.com/sangkips/lanchonete-pos/pkg/format"
)

// Update applies a to s. It performs no I/O: everything that talks to the
// outside world is returned as an Effect.
func Update(s State, a Action) (State, []Effect) {
	switch a := a.(type) {
	case Start:
		return s, []Effect{
			FetchMenu{},
			FetchExpenseCategories{},
			FetchDailyReport{Date: s.Today, Into: TargetDashboard},
			FetchSales{Date: s.Today, Into: TargetRecent},
			FetchExpenses{Date: s.Today, Into: TargetRecent},
			Render{},
		}

	case SwitchTab:
		return switchTab(s, a.Tab)

	// Cart

	case AddItem:
		if s.Menu == nil {
			return fail(s, "Cardápio não carregado")
		}
		price, ok := s.Menu.Price(a.Category, a.Name)
		if !ok {
			return fail(s, "Item não encontrado no cardápio: "+a.Name)
		}
		s.Cart = s.Cart.AddItem(a.Category, a.Name, price)
		s.PendingOrderID = ""
		return s, []Effect{Notify{Level: LevelSuccess, Message: a.Name + " adicionado ao carrinho"}, Render{}}

	case ChangeQuantity:
		cart, err := s.Cart.ChangeQuantity(a.Line, a.Delta)
		if err != nil {
			return fail(s, describe(err))
		}
		s.Cart = cart
		s.PendingOrderID = ""
		return s, []Effect{Render{}}

	case RemoveLine:
		cart, err := s.Cart.RemoveLine(a.Line)
		if err != nil {
			return fail(s, describe(err))
		}
		s.Cart = cart
		s.PendingOrderID = ""
		return s, []Effect{Render{}}

	case ClearCart:
		return s, []Effect{Confirm{Prompt: "Deseja limpar o carrinho?", Then: cartCleared{}}}

	case cartCleared:
		if !s.Cart.IsEmpty() {
			s.Cart = s.Cart.Clear()
			s.PendingOrderID = ""
		}
		return s, []Effect{Render{}}

	case Checkout:
		if s.Cart.IsEmpty() {
			return fail(s, "Carrinho vazio! Adicione itens antes de finalizar o pedido.")
		}
		lines := make([]CartLine, len(s.Cart.Lines))
		copy(lines, s.Cart.Lines)
		return s, []Effect{SubmitOrder{OrderID: s.PendingOrderID, Lines: lines, Date: s.Today}}

	// History

	case LoadHistory:
		if a.Date != "" && !validDate(a.Date) {
			return fail(s, "Data inválida: "+a.Date)
		}
		next, effects := loadHistory(s, a.Date)
		return next, append(effects, Render{})

	case EditOrder:
		order, ok := findOrder(a.Key, s.History.Orders, s.RecentOrders)
		if !ok {
			return fail(s, "Pedido não encontrado: "+a.Key)
		}
		editor := &OrderEditor{Key: order.Key, Lines: make([]EditLine, len(order.Lines))}
		for i, l := range order.Lines {
			editor.Lines[i] = EditLine{SaleID: l.ID, Item: l.Item, Quantity: l.Quantity}
		}
		s.Editor = editor
		return s, []Effect{Render{}}

	case SetEditQuantity:
		if s.Editor == nil {
			return fail(s, "Nenhum pedido em edição")
		}
		if a.Line < 0 || a.Line >= len(s.Editor.Lines) {
			return fail(s, "Item do pedido não encontrado")
		}
		if a.Quantity < 1 {
			return fail(s, "A quantidade deve ser no mínimo 1")
		}
		editor := &OrderEditor{Key: s.Editor.Key, Lines: make([]EditLine, len(s.Editor.Lines))}
		copy(editor.Lines, s.Editor.Lines)
		editor.Lines[a.Line].Quantity = a.Quantity
		s.Editor = editor
		return s, []Effect{Render{}}

	case SaveEdit:
		if s.Editor == nil {
			return fail(s, "Nenhum pedido em edição")
		}
		updates := make([]SaleUpdate, len(s.Editor.Lines))
		for i, l := range s.Editor.Lines {
			updates[i] = SaleUpdate{ID: l.SaleID, Quantity: l.Quantity}
		}
		return s, []Effect{UpdateSales{Key: s.Editor.Key, Updates: updates}}

	case CancelEdit:
		s.Editor = nil
		return s, []Effect{Render{}}

	case DeleteOrder:
		order, ok := findOrder(a.Key, s.History.Orders, s.RecentOrders)
		if !ok {
			return fail(s, "Pedido não encontrado: "+a.Key)
		}
		return s, []Effect{Confirm{
			Prompt: fmt.Sprintf("Excluir o pedido %s com %d item(ns)?", order.Key, len(order.Lines)),
			Then:   orderDeleteConfirmed{Key: order.Key, IDs: order.SaleIDs()},
		}}

	case orderDeleteConfirmed:
		return s, []Effect{DeleteSales{Key: a.Key, IDs: a.IDs}}

	case batchFinished:
		return finishBatch(s, a)

	// Reports

	case GenerateReport:
		return generateReport(s, a.Start, a.End)

	// Expenses

	case SelectExpenseCategory:
		if !contains(s.ExpenseCategories, a.Category) {
			return fail(s, "Categoria inválida: "+a.Category)
		}
		s.ExpenseCategory = a.Category
		return s, []Effect{Render{}}

	case AddExpense:
		description := strings.TrimSpace(a.Description)
		switch {
		case s.ExpenseCategory == "":
			return fail(s, "Selecione uma categoria")
		case description == "":
			return fail(s, "Informe a descrição da despesa")
		case !a.Amount.IsPositive():
			return fail(s, "Informe um valor maior que zero")
		}
		return s, []Effect{CreateExpense{Input: client.ExpenseInput{
			Descricao: description,
			Categoria: s.ExpenseCategory,
			Valor:     entity.Money(a.Amount),
			Data:      s.Today,
		}}}

	case expenseCreated:
		if a.Err != nil {
			return fail(s, "Erro ao registrar despesa: "+describe(a.Err))
		}
		return s, []Effect{
			Notify{Level: LevelSuccess, Message: "Despesa registrada com sucesso!"},
			FetchDailyReport{Date: s.Today, Into: TargetDashboard},
			FetchExpenses{Date: s.Today, Into: TargetRecent},
			Render{},
		}

	case DeleteExpense:
		return s, []Effect{Confirm{Prompt: "Deseja excluir esta despesa?", Then: expenseDeleteConfirmed{ID: a.ID}}}

	case expenseDeleteConfirmed:
		return s, []Effect{RemoveExpense{ID: a.ID}}

	case expenseRemoved:
		if a.Err != nil {
			return fail(s, "Erro ao excluir despesa: "+describe(a.Err))
		}
		effects := []Effect{
			Notify{Level: LevelSuccess, Message: "Despesa excluída com sucesso!"},
			FetchDailyReport{Date: s.Today, Into: TargetDashboard},
			FetchExpenses{Date: s.Today, Into: TargetRecent},
		}
		if s.History.Loaded {
			effects = append(effects, FetchExpenses{Date: s.History.Date, Into: TargetHistory})
		}
		return s, append(effects, Render{})

	// Receipts

	case PrintReceipt:
		if a.Key == "" {
			return fail(s, "Informe o pedido")
		}
		return s, []Effect{SendReceipt{Key: a.Key}}

	case receiptPrinted:
		switch {
		case a.Err != nil:
			return fail(s, "Erro ao imprimir recibo: "+describe(a.Err))
		case a.Warning != "":
			return s, []Effect{Notify{Level: LevelWarning, Message: "Recibo gerado, mas a impressão falhou: " + a.Warning}, Render{}}
		}
		return s, []Effect{Notify{Level: LevelSuccess, Message: "Recibo do pedido " + a.Key + " enviado para a impressora"}, Render{}}

	// Loads. These do not render; the effect list that requested them does.

	case menuLoaded:
		if a.Err != nil {
			return s, []Effect{Notify{Level: LevelError, Message: "Erro ao carregar cardápio: " + describe(a.Err)}}
		}
		s.Menu = a.Menu
		return s, nil

	case categoriesLoaded:
		if a.Err != nil {
			return s, []Effect{Notify{Level: LevelError, Message: "Erro ao carregar categorias: " + describe(a.Err)}}
		}
		s.ExpenseCategories = a.Categories
		if !contains(s.ExpenseCategories, s.ExpenseCategory) {
			s.ExpenseCategory = ""
		}
		return s, nil

	case salesLoaded:
		if a.Err != nil {
			return s, []Effect{Notify{Level: LevelError, Message: "Erro ao carregar vendas: " + describe(a.Err)}}
		}
		switch a.Into {
		case TargetRecent:
			s.RecentOrders = RecentOrders(GroupOrders(a.Sales), s.RecentLimit)
		case TargetHistory:
			if a.Date == s.History.Date {
				s.History.Orders = GroupOrders(a.Sales)
				s.History.Loaded = true
			}
		}
		return s, nil

	case expensesLoaded:
		if a.Err != nil {
			return s, []Effect{Notify{Level: LevelError, Message: "Erro ao carregar despesas: " + describe(a.Err)}}
		}
		switch a.Into {
		case TargetRecent:
			expenses := a.Expenses
			if s.RecentLimit > 0 && len(expenses) > s.RecentLimit {
				expenses = expenses[:s.RecentLimit]
			}
			s.RecentExpenses = expenses
		case TargetHistory:
			if a.Date == s.History.Date {
				s.History.Expenses = a.Expenses
			}
		}
		return s, nil

	case reportLoaded:
		if a.Err != nil {
			return s, []Effect{Notify{Level: LevelError, Message: "Erro ao gerar relatório: " + describe(a.Err)}}
		}
		switch a.Into {
		case TargetDashboard:
			s.Dashboard = NewReportView(a.Report)
		case TargetReport:
			s.Report = NewReportView(a.Report)
		}
		return s, nil
	}

	return s, nil
}

func switchTab(s State, tab Tab) (State, []Effect) {
	if !tab.IsValid() {
		return fail(s, "Aba desconhecida: "+string(tab))
	}
	s.ActiveTab = tab

	switch tab {
	case TabHistory:
		next, effects := loadHistory(s, "")
		return next, append(effects, Render{})
	case TabReports:
		if s.ReportStart == "" {
			s.ReportStart = s.Today
		}
		if s.ReportEnd == "" {
			s.ReportEnd = s.Today
		}
		return generateReport(s, "", "")
	}
	return s, []Effect{Render{}}
}

func loadHistory(s State, date string) (State, []Effect) {
	s.History = HistoryView{Date: date}
	return s, []Effect{
		FetchSales{Date: date, Into: TargetHistory},
		FetchExpenses{Date: date, Into: TargetHistory},
	}
}

// generateReport picks the daily endpoint for a single day and the period
// endpoint for a longer range.
func generateReport(s State, start, end string) (State, []Effect) {
	if start != "" {
		s.ReportStart = start
	}
	if end != "" {
		s.ReportEnd = end
	}

	switch {
	case s.ReportStart == "" || s.ReportEnd == "":
		return fail(s, "Preencha as datas do relatório")
	case !validDate(s.ReportStart):
		return fail(s, "Data inválida: "+s.ReportStart)
	case !validDate(s.ReportEnd):
		return fail(s, "Data inválida: "+s.ReportEnd)
	case s.ReportStart > s.ReportEnd:
		return fail(s, "A data inicial deve ser anterior ou igual à data final")
	case s.ReportStart == s.ReportEnd:
		return s, []Effect{FetchDailyReport{Date: s.ReportStart, Into: TargetReport}, Render{}}
	}
	return s, []Effect{FetchPeriodReport{Start: s.ReportStart, End: s.ReportEnd}, Render{}}
}

func finishBatch(s State, a batchFinished) (State, []Effect) {
	var effects []Effect

	switch a.Kind {
	case batchCheckout:
		if a.Err != nil {
			s.PendingOrderID = a.OrderID
			return fail(s, fmt.Sprintf("Erro ao finalizar pedido: %d de %d itens registrados (%s). Tente novamente.",
				a.Done, a.Total, describe(a.Err)))
		}
		s.Cart = s.Cart.Clear()
		s.PendingOrderID = ""
		return s, []Effect{
			Notify{Level: LevelSuccess, Message: "Pedido registrado com sucesso!"},
			FetchDailyReport{Date: s.Today, Into: TargetDashboard},
			FetchSales{Date: s.Today, Into: TargetRecent},
			Render{},
		}

	case batchEdit:
		s = forgetPendingOrder(s, a.OrderID)
		if a.Err != nil {
			effects = append(effects, Notify{Level: LevelError, Message: fmt.Sprintf(
				"Erro ao atualizar pedido: %d de %d itens atualizados (%s)", a.Done, a.Total, describe(a.Err))})
		} else {
			s.Editor = nil
			effects = append(effects, Notify{Level: LevelSuccess, Message: "Pedido atualizado com sucesso!"})
		}

	case batchDelete:
		s = forgetPendingOrder(s, a.OrderID)
		if a.Err != nil {
			effects = append(effects, Notify{Level: LevelError, Message: fmt.Sprintf(
				"Erro ao excluir pedido: %d de %d itens excluídos (%s)", a.Done, a.Total, describe(a.Err))})
		} else {
			if s.Editor != nil && s.Editor.Key == a.OrderID {
				s.Editor = nil
			}
			effects = append(effects, Notify{Level: LevelSuccess, Message: "Pedido excluído com sucesso!"})
		}
	}

	// Completed sub-requests stand even on failure, so reload either way.
	effects = append(effects,
		FetchDailyReport{Date: s.Today, Into: TargetDashboard},
		FetchSales{Date: s.Today, Into: TargetRecent},
	)
	if s.History.Loaded {
		effects = append(effects, FetchSales{Date: s.History.Date, Into: TargetHistory})
	}
	return s, append(effects, Render{})
}

// forgetPendingOrder drops the pending checkout id once its stored lines were
// edited or deleted. Retrying under the old id would replay the recorded
// responses instead of storing the lines again.
func forgetPendingOrder(s State, orderID string) State {
	if s.PendingOrderID != "" && s.PendingOrderID == orderID {
		s.PendingOrderID = ""
	}
	return s
}

func fail(s State, message string) (State, []Effect) {
	return s, []Effect{Notify{Level: LevelError, Message: message}, Render{}}
}

// describe turns an error into a message for the user.
func describe(err error) string {
	var (
		statusErr    *client.StatusError
		transportErr *client.TransportError
		appErr       *apperror.AppError
	)
	switch {
	case errors.As(err, &statusErr):
		return fmt.Sprintf("%s (HTTP %d)", statusErr.Message, statusErr.Status)
	case errors.As(err, &transportErr):
		return "servidor indisponível"
	case errors.As(err, &appErr):
		return appErr.Message
	}
	return err.Error()
}

func validDate(s string) bool {
	_, err := time.Parse(format.DateLayout, s)
	return err == nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
