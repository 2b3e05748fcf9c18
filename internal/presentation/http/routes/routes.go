package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/lanchonete-pos/internal/config"
	domainRepo "github.com/sangkips/lanchonete-pos/internal/domain/repository"
	"github.com/sangkips/lanchonete-pos/internal/presentation/http/handler"
	"github.com/sangkips/lanchonete-pos/internal/presentation/http/middleware"
	"github.com/sirupsen/logrus"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Menu    *handler.MenuHandler
	Sale    *handler.SaleHandler
	Expense *handler.ExpenseHandler
	Report  *handler.ReportHandler
	Printer *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg             *config.Config
	Log             *logrus.Logger
	IdempotencyRepo domainRepo.IdempotencyRepository
	RateLimiter     *middleware.ClientRateLimiter // optional
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Log))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	api := router.Group("/api")
	if deps.RateLimiter != nil {
		api.Use(deps.RateLimiter.Middleware())
	}
	{
		registerMenuRoutes(api, h)
		registerSaleRoutes(api, h, deps)
		registerExpenseRoutes(api, h)
		registerReportRoutes(api, h)
		registerPrinterRoutes(api, h)
	}

	return router
}

func registerMenuRoutes(api *gin.RouterGroup, h *Handlers) {
	api.GET("/cardapio", h.Menu.GetMenu)
	api.GET("/categorias-despesa", h.Menu.GetExpenseCategories)
}

func registerSaleRoutes(api *gin.RouterGroup, h *Handlers, deps *Deps) {
	sales := api.Group("/vendas")
	{
		sales.GET("", h.Sale.List)
		// Checkout retries resend each line with the same key
		sales.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
			Log:  deps.Log,
		}), h.Sale.Create)
		sales.PUT("/:id", h.Sale.Update)
		sales.DELETE("/:id", h.Sale.Delete)
	}
}

func registerExpenseRoutes(api *gin.RouterGroup, h *Handlers) {
	expenses := api.Group("/despesas")
	{
		expenses.GET("", h.Expense.List)
		expenses.POST("", h.Expense.Create)
		expenses.DELETE("/:id", h.Expense.Delete)
	}
}

func registerReportRoutes(api *gin.RouterGroup, h *Handlers) {
	reports := api.Group("/relatorio")
	{
		reports.GET("/diario", h.Report.Daily)
		reports.GET("/periodo", h.Report.Period)
	}
}

func registerPrinterRoutes(api *gin.RouterGroup, h *Handlers) {
	api.POST("/pedidos/:pedido_id/recibo", h.Printer.PrintOrderReceipt)
	api.GET("/printer/status", h.Printer.GetStatus)
}
