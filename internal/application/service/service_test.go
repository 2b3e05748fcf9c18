package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/lanchonete-pos/internal/domain/enum"
	"github.com/sangkips/lanchonete-pos/internal/infrastructure/database"
	infraRepo "github.com/sangkips/lanchonete-pos/internal/infrastructure/repository"
	"github.com/sangkips/lanchonete-pos/pkg/apperror"
	"github.com/sangkips/lanchonete-pos/pkg/logger"
	"github.com/sangkips/lanchonete-pos/pkg/printer"
	"github.com/shopspring/decimal"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var fixedNow = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db, logger.Discard()))
	return db
}

func newSaleService(db *gorm.DB) *SaleService {
	s := NewSaleService(infraRepo.NewSaleRepository(db), time.UTC, logger.Discard())
	s.now = func() time.Time { return fixedNow }
	return s
}

func assertStatus(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, code, apperror.GetAppError(err).Code, err.Error())
}

func TestCreateSaleRecomputesTotal(t *testing.T) {
	ctx := context.Background()
	svc := newSaleService(setupTestDB(t))
	log, hook := logtest.NewNullLogger()
	svc.log = log

	wrong := decimal.NewFromInt(99)
	order := "PED-1-AAAAAA"
	sale, err := svc.CreateSale(ctx, &CreateSaleInput{
		OrderID:     &order,
		ProductType: enum.ProductTypeLanche,
		Item:        " X-Burger ",
		Quantity:    2,
		UnitPrice:   decimal.RequireFromString("8.00"),
		TotalPrice:  &wrong,
	})
	require.NoError(t, err)
	assert.NotZero(t, sale.ID)
	assert.Equal(t, "X-Burger", sale.Item)
	assert.True(t, sale.TotalPrice.Equal(decimal.NewFromInt(16)))
	assert.Equal(t, "2026-10-17", sale.Date)
	assert.Equal(t, order, sale.OrderKey())

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, "99", hook.LastEntry().Data["valor_total"])
	assert.Equal(t, "16.00", hook.LastEntry().Data["recomputed"])

	hook.Reset()
	right := decimal.RequireFromString("5.00")
	_, err = svc.CreateSale(ctx, &CreateSaleInput{
		ProductType: enum.ProductTypeBebida,
		Item:        "Soda",
		Quantity:    1,
		UnitPrice:   decimal.RequireFromString("5"),
		TotalPrice:  &right,
	})
	require.NoError(t, err)
	assert.Empty(t, hook.Entries, "matching totals are not logged")
}

func TestCreateSaleValidation(t *testing.T) {
	svc := newSaleService(setupTestDB(t))

	_, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		ProductType: "sobremesa",
		Quantity:    0,
		UnitPrice:   decimal.NewFromInt(-1),
		Date:        "17/10/2026",
	})
	assertStatus(t, err, http.StatusUnprocessableEntity)
	assert.Len(t, apperror.GetAppError(err).Errors, 5)
}

func TestUpdateQuantityAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := newSaleService(setupTestDB(t))

	sale, err := svc.CreateSale(ctx, &CreateSaleInput{
		ProductType: enum.ProductTypeBebida, Item: "Soda", Quantity: 1, UnitPrice: decimal.NewFromInt(5),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateQuantity(ctx, sale.ID, 3)
	require.NoError(t, err)
	assert.True(t, updated.TotalPrice.Equal(decimal.NewFromInt(15)))

	_, err = svc.UpdateQuantity(ctx, sale.ID, 0)
	assertStatus(t, err, http.StatusUnprocessableEntity)

	_, err = svc.UpdateQuantity(ctx, 999, 2)
	assertStatus(t, err, http.StatusNotFound)

	require.NoError(t, svc.DeleteSale(ctx, sale.ID))
	assertStatus(t, svc.DeleteSale(ctx, sale.ID), http.StatusNotFound)
}

func TestListOrder(t *testing.T) {
	ctx := context.Background()
	svc := newSaleService(setupTestDB(t))
	order := "PED-2-BBBBBB"

	for _, item := range []string{"X-Burger", "Soda"} {
		_, err := svc.CreateSale(ctx, &CreateSaleInput{
			OrderID: &order, ProductType: enum.ProductTypeLanche, Item: item, Quantity: 1, UnitPrice: decimal.NewFromInt(5),
		})
		require.NoError(t, err)
	}
	single, err := svc.CreateSale(ctx, &CreateSaleInput{
		ProductType: enum.ProductTypePorcao, Item: "Batata Frita", Quantity: 1, UnitPrice: decimal.NewFromInt(18),
	})
	require.NoError(t, err)

	lines, err := svc.ListOrder(ctx, order)
	require.NoError(t, err)
	assert.Len(t, lines, 2)

	lines, err = svc.ListOrder(ctx, single.OrderKey())
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "Batata Frita", lines[0].Item)

	_, err = svc.ListOrder(ctx, "single-1")
	assertStatus(t, err, http.StatusNotFound)

	_, err = svc.ListOrder(ctx, "PED-404")
	assertStatus(t, err, http.StatusNotFound)
}

func TestListSalesRejectsBadDate(t *testing.T) {
	svc := newSaleService(setupTestDB(t))

	_, err := svc.ListSales(context.Background(), "ontem")
	assertStatus(t, err, http.StatusUnprocessableEntity)

	sales, err := svc.ListSales(context.Background(), "2026-10-17")
	require.NoError(t, err)
	assert.NotNil(t, sales)
	assert.Empty(t, sales)
}

func TestExpenseService(t *testing.T) {
	ctx := context.Background()
	svc := NewExpenseService(infraRepo.NewExpenseRepository(setupTestDB(t)), time.UTC)
	svc.now = func() time.Time { return fixedNow }

	_, err := svc.CreateExpense(ctx, &CreateExpenseInput{Description: "Pão", Amount: decimal.NewFromInt(10)})
	assertStatus(t, err, http.StatusUnprocessableEntity)

	_, err = svc.CreateExpense(ctx, &CreateExpenseInput{Description: "Pão", Category: "Ingredientes"})
	assertStatus(t, err, http.StatusUnprocessableEntity)

	e, err := svc.CreateExpense(ctx, &CreateExpenseInput{Description: "Pão", Category: "Ingredientes", Amount: decimal.RequireFromString("12.345")})
	require.NoError(t, err)
	assert.Equal(t, "2026-10-17", e.Date)
	assert.Equal(t, "12.35", e.Amount.StringFixed(2))

	list, err := svc.ListExpenses(ctx, "")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.DeleteExpense(ctx, e.ID))
	assertStatus(t, svc.DeleteExpense(ctx, e.ID), http.StatusNotFound)
}

func TestReportService(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	sales := newSaleService(db)
	expenses := NewExpenseService(infraRepo.NewExpenseRepository(db), time.UTC)
	reports := NewReportService(infraRepo.NewReportRepository(db), time.UTC)
	reports.now = func() time.Time { return fixedNow }

	for i, item := range []string{"A", "B", "C", "D", "E", "F"} {
		_, err := sales.CreateSale(ctx, &CreateSaleInput{
			ProductType: enum.ProductTypeLanche, Item: item, Quantity: i + 1, UnitPrice: decimal.NewFromInt(1), Date: "2026-10-17",
		})
		require.NoError(t, err)
	}
	_, err := expenses.CreateExpense(ctx, &CreateExpenseInput{Description: "Aluguel", Category: "Aluguel", Amount: decimal.NewFromInt(30), Date: "2026-10-17"})
	require.NoError(t, err)

	daily, err := reports.DailyReport(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-17", daily.Date)
	assert.Equal(t, int64(6), daily.SalesCount)
	assert.True(t, daily.TotalSales.Equal(decimal.NewFromInt(21)))
	assert.True(t, daily.Profit.Equal(decimal.NewFromInt(-9)))
	assert.True(t, daily.IsLoss())
	require.Len(t, daily.BestSellers, BestSellerLimit)
	assert.Equal(t, "F", daily.BestSellers[0].Item)
	assert.True(t, daily.ExpensesByCategory["Aluguel"].Equal(decimal.NewFromInt(30)))

	quiet, err := reports.DailyReport(ctx, "2026-10-01")
	require.NoError(t, err)
	assert.True(t, quiet.HasBreakdown())
	assert.Empty(t, quiet.BestSellers)
	assert.Empty(t, quiet.ExpensesByCategory)

	period, err := reports.PeriodReport(ctx, "2026-10-01", "2026-10-31")
	require.NoError(t, err)
	assert.False(t, period.HasBreakdown())
	assert.True(t, period.TotalSales.Equal(decimal.NewFromInt(21)))
	assert.Equal(t, "2026-10-01", period.StartDate)

	_, err = reports.PeriodReport(ctx, "2026-10-31", "2026-10-01")
	assertStatus(t, err, http.StatusBadRequest)

	today, err := reports.PeriodReport(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-17", today.StartDate)
	assert.Equal(t, "2026-10-17", today.EndDate)
	assert.Equal(t, int64(6), today.SalesCount)

	// start defaults to today, which is after the given end
	_, err = reports.PeriodReport(ctx, "", "2026-10-01")
	assertStatus(t, err, http.StatusBadRequest)

	_, err = reports.PeriodReport(ctx, "17/10/2026", "")
	assertStatus(t, err, http.StatusUnprocessableEntity)
}

func TestMenuService(t *testing.T) {
	ctx := context.Background()
	svc := NewMenuService(infraRepo.NewMenuRepository(setupTestDB(t)), []string{"Gás", "Outros"})

	added, err := svc.EnsureSeeded(ctx, database.DefaultMenu())
	require.NoError(t, err)
	assert.Equal(t, len(database.DefaultMenu()), added)

	added, err = svc.EnsureSeeded(ctx, database.DefaultMenu())
	require.NoError(t, err)
	assert.Zero(t, added)

	menu, err := svc.GetMenu(ctx)
	require.NoError(t, err)
	price, ok := menu.Price(enum.ProductTypeLanche, "X-Burger")
	require.True(t, ok)
	assert.True(t, price.Equal(decimal.NewFromInt(15)))
	assert.NotEmpty(t, menu.Descriptions[enum.ProductTypeLancheGourmet])
	assert.Empty(t, menu.Descriptions[enum.ProductTypeBebida])

	cats := svc.ExpenseCategories()
	cats[0] = "changed"
	assert.Equal(t, []string{"Gás", "Outros"}, svc.ExpenseCategories())
}

func TestPrinterService(t *testing.T) {
	ctx := context.Background()
	sales := newSaleService(setupTestDB(t))
	rec := &printer.Recorder{}
	svc := NewPrinterService(rec, sales, PrinterOptions{Type: "network", StoreName: "Lanchonete", Width: 32, Locale: "pt-BR"}, logger.Discard())

	order := "PED-3-CCCCCC"
	for _, in := range []CreateSaleInput{
		{OrderID: &order, ProductType: enum.ProductTypeLanche, Item: "X-Burger", Quantity: 2, UnitPrice: decimal.NewFromInt(8)},
		{OrderID: &order, ProductType: enum.ProductTypeBebida, Item: "Soda", Quantity: 1, UnitPrice: decimal.NewFromInt(5)},
	} {
		in := in
		_, err := sales.CreateSale(ctx, &in)
		require.NoError(t, err)
	}

	receipt, err := svc.PrintOrderReceipt(ctx, order)
	require.NoError(t, err)
	assert.True(t, receipt.Total.Equal(decimal.NewFromInt(21)))

	jobs := rec.Jobs()
	require.Len(t, jobs, 1)
	assert.Contains(t, string(jobs[0]), "2x X-Burger")
	assert.Contains(t, string(jobs[0]), "R$ 21,00")
	assert.Contains(t, string(jobs[0]), "17/10/2026")

	rec.Err = errors.New("paper out")
	receipt, err = svc.PrintOrderReceipt(ctx, order)
	assert.Error(t, err)
	assert.NotNil(t, receipt)
	assert.False(t, svc.GetStatus().Connected)
	assert.True(t, svc.GetStatus().Configured)

	_, err = svc.PrintOrderReceipt(ctx, "PED-404")
	assertStatus(t, err, http.StatusNotFound)
}
