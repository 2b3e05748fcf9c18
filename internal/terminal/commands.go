package terminal

import (
	"errors"
	"strconv"
	"strings"

	"github.com/sangkips/lanchonete-pos/internal/domain/enum"
	"github.com/sangkips/lanchonete-pos/internal/pos"
	"github.com/shopspring/decimal"
)

// Usage lists the commands understood by the shell.
const Usage = `Comandos:
  tab <vendas|despesas|historico|relatorios>  trocar de aba
  menu                                        mostrar o cardápio
  add <n> | add <categoria> <item>            adicionar item ao carrinho
  qty <linha> <+n|-n>                         alterar quantidade
  rm <linha>                                  remover linha do carrinho
  clear                                       limpar o carrinho
  checkout                                    finalizar o pedido
  history [data]                              histórico de vendas e despesas
  edit <pedido>  set <linha> <qtd>  save  cancel
  delete <pedido>                             excluir pedido
  print <pedido>                              imprimir recibo
  report [inicio] [fim]                       relatório diário ou por período
  category <categoria>                        escolher categoria de despesa
  expense <valor> <descrição>                 registrar despesa
  unexpense <id>                              excluir despesa
  help                                        esta ajuda
  quit                                        sair`

// command is a parsed input line. Exactly one of its fields is set.
type command struct {
	action pos.Action
	help   bool
	quit   bool
}

var errEmpty = errors.New("empty command")

// parseCommand turns one input line into an action. Menu numbers and line
// numbers are 1-based as shown by the renderer.
func parseCommand(line string, s pos.State) (command, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return command{}, errEmpty
	}
	name, args := strings.ToLower(parts[0]), parts[1:]

	switch name {
	case "help", "ajuda", "?":
		return command{help: true}, nil
	case "quit", "exit", "sair":
		return command{quit: true}, nil

	case "tab":
		if len(args) != 1 {
			return usage("tab <vendas|despesas|historico|relatorios>")
		}
		return act(pos.SwitchTab{Tab: pos.Tab(strings.ToLower(args[0]))})
	case "menu":
		return act(pos.SwitchTab{Tab: pos.TabSales})

	case "add":
		return parseAdd(args, s)
	case "qty":
		if len(args) != 2 {
			return usage("qty <linha> <+n|-n>")
		}
		line, err := position(args[0])
		if err != nil {
			return command{}, err
		}
		delta, err := strconv.Atoi(args[1])
		if err != nil {
			return command{}, errors.New("quantidade inválida: " + args[1])
		}
		return act(pos.ChangeQuantity{Line: line, Delta: delta})
	case "rm":
		if len(args) != 1 {
			return usage("rm <linha>")
		}
		line, err := position(args[0])
		if err != nil {
			return command{}, err
		}
		return act(pos.RemoveLine{Line: line})
	case "clear":
		return act(pos.ClearCart{})
	case "checkout":
		return act(pos.Checkout{})

	case "history":
		date := ""
		if len(args) > 0 {
			date = args[0]
		}
		return act(pos.LoadHistory{Date: date})
	case "edit":
		if len(args) != 1 {
			return usage("edit <pedido>")
		}
		return act(pos.EditOrder{Key: args[0]})
	case "set":
		if len(args) != 2 {
			return usage("set <linha> <qtd>")
		}
		line, err := position(args[0])
		if err != nil {
			return command{}, err
		}
		qty, err := strconv.Atoi(args[1])
		if err != nil {
			return command{}, errors.New("quantidade inválida: " + args[1])
		}
		return act(pos.SetEditQuantity{Line: line, Quantity: qty})
	case "save":
		return act(pos.SaveEdit{})
	case "cancel":
		return act(pos.CancelEdit{})
	case "delete":
		if len(args) != 1 {
			return usage("delete <pedido>")
		}
		return act(pos.DeleteOrder{Key: args[0]})
	case "print":
		if len(args) != 1 {
			return usage("print <pedido>")
		}
		return act(pos.PrintReceipt{Key: args[0]})

	case "report":
		switch len(args) {
		case 0:
			return act(pos.GenerateReport{})
		case 1:
			return act(pos.GenerateReport{Start: args[0], End: args[0]})
		case 2:
			return act(pos.GenerateReport{Start: args[0], End: args[1]})
		}
		return usage("report [inicio] [fim]")

	case "category":
		if len(args) == 0 {
			return usage("category <categoria>")
		}
		return act(pos.SelectExpenseCategory{Category: matchCategory(strings.Join(args, " "), s.ExpenseCategories)})
	case "expense":
		if len(args) < 2 {
			return usage("expense <valor> <descrição>")
		}
		amount, err := parseAmount(args[0])
		if err != nil {
			return command{}, err
		}
		return act(pos.AddExpense{Amount: amount, Description: strings.Join(args[1:], " ")})
	case "unexpense":
		if len(args) != 1 {
			return usage("unexpense <id>")
		}
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return command{}, errors.New("id inválido: " + args[0])
		}
		return act(pos.DeleteExpense{ID: uint(id)})
	}

	return command{}, errors.New("comando desconhecido: " + name + " (digite help)")
}

func parseAdd(args []string, s pos.State) (command, error) {
	if len(args) == 1 {
		n, err := position(args[0])
		if err != nil {
			return command{}, err
		}
		entries := s.MenuEntries()
		if n >= len(entries) {
			return command{}, errors.New("item inexistente: " + args[0])
		}
		return act(pos.AddItem{Category: entries[n].Category, Name: entries[n].Name})
	}
	if len(args) < 2 {
		return usage("add <n> | add <categoria> <item>")
	}

	category := enum.ProductType(strings.ToLower(args[0]))
	if !category.IsValid() {
		return command{}, errors.New("categoria inválida: " + args[0])
	}
	name := strings.Join(args[1:], " ")
	for _, e := range s.MenuItems(category) {
		if strings.EqualFold(e.Name, name) {
			name = e.Name
			break
		}
	}
	return act(pos.AddItem{Category: category, Name: name})
}

func act(a pos.Action) (command, error) {
	return command{action: a}, nil
}

func usage(text string) (command, error) {
	return command{}, errors.New("uso: " + text)
}

// position converts a 1-based number to an index.
func position(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, errors.New("número inválido: " + arg)
	}
	return n - 1, nil
}

// parseAmount accepts both 90.50 and 90,50.
func parseAmount(arg string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.Replace(arg, ",", ".", 1))
	if err != nil {
		return decimal.Zero, errors.New("valor inválido: " + arg)
	}
	return d, nil
}

func matchCategory(name string, categories []string) string {
	for _, c := range categories {
		if strings.EqualFold(c, name) {
			return c
		}
	}
	return name
}
