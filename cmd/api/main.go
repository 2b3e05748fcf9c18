package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/lanchonete-pos/internal/application/service"
	"github.com/sangkips/lanchonete-pos/internal/config"
	"github.com/sangkips/lanchonete-pos/internal/infrastructure/database"
	"github.com/sangkips/lanchonete-pos/internal/infrastructure/repository"
	"github.com/sangkips/lanchonete-pos/internal/presentation/http/handler"
	"github.com/sangkips/lanchonete-pos/internal/presentation/http/middleware"
	"github.com/sangkips/lanchonete-pos/internal/presentation/http/routes"
	"github.com/sangkips/lanchonete-pos/pkg/logger"
	"github.com/sangkips/lanchonete-pos/pkg/printer"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log := logger.New(cfg.App.Env, cfg.App.Debug)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	loc := cfg.App.Location()

	// Connect to database
	db, err := database.Open(&cfg.Database, cfg.App.Debug, log)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db, log); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	menuRepo := repository.NewMenuRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	reportRepo := repository.NewReportRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	menuService := service.NewMenuService(menuRepo, cfg.Catalog.ExpenseCategories)
	saleService := service.NewSaleService(saleRepo, loc, log)
	expenseService := service.NewExpenseService(expenseRepo, loc)
	reportService := service.NewReportService(reportRepo, loc)

	// Seed the catalog on first start
	if added, err := menuService.EnsureSeeded(context.Background(), database.DefaultMenu()); err != nil {
		log.WithError(err).Warn("Failed to seed menu")
	} else if added > 0 {
		log.WithField("items", added).Info("Seeded default menu")
	}

	// Initialize thermal printer
	thermalPrinter, err := printer.New(printer.Config{
		Type:    cfg.Printer.Type,
		USBPath: cfg.Printer.USBPath,
		Address: cfg.Printer.Address,
	})
	if err != nil {
		log.WithError(err).Warn("Failed to initialize printer")
		thermalPrinter = printer.Null()
	}
	printerService := service.NewPrinterService(thermalPrinter, saleService, service.PrinterOptions{
		Type:      cfg.Printer.Type,
		StoreName: cfg.Printer.StoreName,
		Width:     cfg.Printer.Width,
		Locale:    cfg.Client.Locale,
	}, log)

	// Initialize handlers
	handlers := &routes.Handlers{
		Menu:    handler.NewMenuHandler(menuService),
		Sale:    handler.NewSaleHandler(saleService),
		Expense: handler.NewExpenseHandler(expenseService),
		Report:  handler.NewReportHandler(reportService),
		Printer: handler.NewPrinterHandler(printerService),
	}

	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfigFrom(&cfg.RateLimit))
	defer rateLimiter.Stop()

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		Log:             log,
		IdempotencyRepo: idempotencyRepo,
		RateLimiter:     rateLimiter,
	})

	port := cfg.App.Port
	if port == "" {
		port = "5000"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithFields(map[string]interface{}{
			"port": port,
			"env":  cfg.App.Env,
		}).Infof("Starting %s server", cfg.App.Name)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Forced shutdown")
	}
	if err := idempotencyRepo.DeleteExpired(ctx); err != nil {
		log.WithError(err).Warn("Failed to purge expired idempotency keys")
	}
}
