package pos

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sangkips/lanchonete-pos/internal/client"
	"github.com/sangkips/lanchonete-pos/internal/domain/entity"
	"github.com/sangkips/lanchonete-pos/pkg/format"
	"github.com/sangkips/lanchonete-pos/pkg/utils"
	"github.com/sirupsen/logrus"
)

// API is the backend as seen by the client. *client.Client implements it.
type API interface {
	Menu(ctx context.Context) (*entity.Menu, error)
	ExpenseCategories(ctx context.Context) ([]string, error)
	ListSales(ctx context.Context, date string) ([]entity.Sale, error)
	CreateSale(ctx context.Context, in client.SaleInput, idempotencyKey string) (uint, error)
	UpdateSaleQuantity(ctx context.Context, id uint, quantity int) error
	DeleteSale(ctx context.Context, id uint) error
	ListExpenses(ctx context.Context, date string) ([]entity.Expense, error)
	CreateExpense(ctx context.Context, in client.ExpenseInput) (uint, error)
	DeleteExpense(ctx context.Context, id uint) error
	DailyReport(ctx context.Context, date string) (*entity.Report, error)
	PeriodReport(ctx context.Context, start, end string) (*entity.Report, error)
	PrintReceipt(ctx context.Context, orderKey string) (string, error)
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// Renderer draws the state and shows notifications.
type Renderer interface {
	Render(s State)
	Notify(n Notification)
}

var _ API = (*client.Client)(nil)

// Options configures an App. Zero values get defaults.
type Options struct {
	RecentLimit int
	ToastTTL    time.Duration
	Location    *time.Location
	Now         func() time.Time
	Log         *logrus.Logger
}

// App owns the state and runs one action chain at a time.
type App struct {
	mu        sync.Mutex
	state     State
	api       API
	confirmer Confirmer
	renderer  Renderer
	toastTTL  time.Duration
	loc       *time.Location
	now       func() time.Time
	log       *logrus.Logger
}

// NewApp creates an App with an empty state.
func NewApp(api API, confirmer Confirmer, renderer Renderer, opts Options) *App {
	if opts.RecentLimit == 0 {
		opts.RecentLimit = 5
	}
	if opts.ToastTTL <= 0 {
		opts.ToastTTL = 3 * time.Second
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Log == nil {
		opts.Log = logrus.StandardLogger()
	}
	return &App{
		state:     NewState(opts.RecentLimit),
		api:       api,
		confirmer: confirmer,
		renderer:  renderer,
		toastTTL:  opts.ToastTTL,
		loc:       opts.Location,
		now:       opts.Now,
		log:       opts.Log,
	}
}

// State returns a snapshot of the current state.
func (a *App) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	s := a.state
	s.Notifications = append([]Notification(nil), a.state.Notifications...)
	return s
}

// Dispatch runs action and every effect it leads to, in order. Results of
// effects are fed back into Update before the next effect runs.
func (a *App) Dispatch(ctx context.Context, action Action) {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.now()
	a.state.Today = format.Today(now.In(a.loc))
	a.state.Notifications = activeNotifications(a.state.Notifications, now)

	queue := a.apply(action)
	for len(queue) > 0 {
		eff := queue[0]
		queue = queue[1:]

		switch e := eff.(type) {
		case Render:
			a.renderer.Render(a.state)
		case Notify:
			n := Notification{Level: e.Level, Message: e.Message, ExpiresAt: a.now().Add(a.toastTTL)}
			a.state.Notifications = append(a.state.Notifications, n)
			a.renderer.Notify(n)
		case Confirm:
			if a.confirmer.Confirm(ctx, e.Prompt) {
				queue = append(queue, a.apply(e.Then)...)
			} else {
				queue = append(queue, Render{})
			}
		default:
			if result := a.perform(ctx, eff); result != nil {
				queue = append(queue, a.apply(result)...)
			}
		}
	}
}

func (a *App) apply(action Action) []Effect {
	var effects []Effect
	a.state, effects = Update(a.state, action)
	return effects
}

func activeNotifications(list []Notification, now time.Time) []Notification {
	var out []Notification
	for _, n := range list {
		if now.Before(n.ExpiresAt) {
			out = append(out, n)
		}
	}
	return out
}

func (a *App) perform(ctx context.Context, eff Effect) Action {
	switch e := eff.(type) {
	case FetchMenu:
		menu, err := a.api.Menu(ctx)
		return menuLoaded{Menu: menu, Err: a.logged(err, "menu")}
	case FetchExpenseCategories:
		categories, err := a.api.ExpenseCategories(ctx)
		return categoriesLoaded{Categories: categories, Err: a.logged(err, "expense categories")}
	case FetchSales:
		sales, err := a.api.ListSales(ctx, e.Date)
		return salesLoaded{Into: e.Into, Date: e.Date, Sales: sales, Err: a.logged(err, "sales")}
	case FetchExpenses:
		expenses, err := a.api.ListExpenses(ctx, e.Date)
		return expensesLoaded{Into: e.Into, Date: e.Date, Expenses: expenses, Err: a.logged(err, "expenses")}
	case FetchDailyReport:
		report, err := a.api.DailyReport(ctx, e.Date)
		return reportLoaded{Into: e.Into, Report: report, Err: a.logged(err, "daily report")}
	case FetchPeriodReport:
		report, err := a.api.PeriodReport(ctx, e.Start, e.End)
		return reportLoaded{Into: TargetReport, Report: report, Err: a.logged(err, "period report")}
	case SubmitOrder:
		return a.submitOrder(ctx, e)
	case UpdateSales:
		res := batchFinished{Kind: batchEdit, OrderID: e.Key, Total: len(e.Updates)}
		for _, u := range e.Updates {
			if err := a.api.UpdateSaleQuantity(ctx, u.ID, u.Quantity); err != nil {
				res.Err = a.logged(err, "update sale")
				break
			}
			res.Done++
		}
		return res
	case DeleteSales:
		res := batchFinished{Kind: batchDelete, OrderID: e.Key, Total: len(e.IDs)}
		for _, id := range e.IDs {
			if err := a.api.DeleteSale(ctx, id); err != nil {
				res.Err = a.logged(err, "delete sale")
				break
			}
			res.Done++
		}
		return res
	case CreateExpense:
		_, err := a.api.CreateExpense(ctx, e.Input)
		return expenseCreated{Err: a.logged(err, "create expense")}
	case RemoveExpense:
		return expenseRemoved{Err: a.logged(a.api.DeleteExpense(ctx, e.ID), "delete expense")}
	case SendReceipt:
		warning, err := a.api.PrintReceipt(ctx, e.Key)
		return receiptPrinted{Key: e.Key, Warning: warning, Err: a.logged(err, "print receipt")}
	}

	a.log.WithField("effect", fmt.Sprintf("%T", eff)).Warn("Unhandled effect")
	return nil
}

// submitOrder posts the lines one after another. Each line carries an
// idempotency key derived from the order id and its position, so retrying
// with the same id replays lines the server already stored.
func (a *App) submitOrder(ctx context.Context, e SubmitOrder) Action {
	orderID := e.OrderID
	if orderID == "" {
		orderID = utils.GenerateOrderID(a.now())
	}

	res := batchFinished{Kind: batchCheckout, OrderID: orderID, Total: len(e.Lines)}
	for i, line := range e.Lines {
		_, err := a.api.CreateSale(ctx, client.SaleInput{
			OrderID:       orderID,
			Tipo:          line.Category,
			Item:          line.Name,
			Quantidade:    line.Quantity,
			ValorUnitario: entity.Money(line.UnitPrice),
			ValorTotal:    entity.Money(line.Total()),
			Data:          e.Date,
		}, utils.LineIdempotencyKey(orderID, i))
		if err != nil {
			res.Err = a.logged(err, "create sale")
			return res
		}
		res.Done++
	}
	return res
}

func (a *App) logged(err error, op string) error {
	if err != nil {
		a.log.WithError(err).WithField("operation", op).Debug("Request failed")
	}
	return err
}
