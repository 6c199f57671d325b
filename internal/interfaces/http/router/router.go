package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mudegi/YourBookSuit-sub006/internal/infrastructure/config"
	"github.com/Mudegi/YourBookSuit-sub006/internal/infrastructure/logger"
	"github.com/Mudegi/YourBookSuit-sub006/internal/interfaces/http/handler"
	"github.com/Mudegi/YourBookSuit-sub006/internal/interfaces/http/middleware"
)

// Handlers bundles every HTTP handler the router mounts
type Handlers struct {
	System        *handler.SystemHandler
	Ledger        *handler.LedgerHandler
	Rates         *handler.RateHandler
	Inventory     *handler.InventoryHandler
	GoodsReceipts *handler.GoodsReceiptHandler
	Vendors       *handler.VendorHandler
	Products      *handler.ProductHandler
	Orders        *handler.PurchaseOrderHandler
	Bills         *handler.BillHandler
}

// New assembles the gin engine with middleware and all API routes
func New(cfg *config.Config, log *zap.Logger, handlers Handlers) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))

	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	engine.Use(middleware.CORSWithConfig(corsCfg))
	engine.Use(middleware.Secure())
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	engine.Use(middleware.Timeout(30 * time.Second))

	engine.GET("/health", handlers.System.Health)
	engine.GET("/ready", handlers.System.Ready)

	api := engine.Group("/api/v1")
	api.Use(middleware.Tenant(middleware.TenantConfig{}))

	ledger := api.Group("/ledger")
	{
		ledger.POST("/accounts", handlers.Ledger.CreateAccount)
		ledger.GET("/accounts", handlers.Ledger.ListAccounts)
		ledger.GET("/accounts/:id", handlers.Ledger.GetAccount)
		ledger.POST("/transactions", handlers.Ledger.PostTransaction)
		ledger.GET("/transactions", handlers.Ledger.ListTransactions)
		ledger.GET("/transactions/:id", handlers.Ledger.GetTransaction)
		ledger.POST("/transactions/:id/reverse", handlers.Ledger.ReverseTransaction)
	}

	rates := api.Group("/rates")
	{
		rates.PUT("", handlers.Rates.SaveRate)
		rates.GET("", handlers.Rates.List)
		rates.GET("/lookup", handlers.Rates.Lookup)
		rates.GET("/convert", handlers.Rates.Convert)
		rates.POST("/fetch", handlers.Rates.Fetch)
	}

	inventory := api.Group("/inventory")
	{
		inventory.POST("/receipts", handlers.Inventory.Receive)
		inventory.POST("/issues", handlers.Inventory.Issue)
		inventory.GET("/positions", handlers.Inventory.GetPosition)
		inventory.GET("/positions/:id/movements", handlers.Inventory.ListMovements)
	}

	receipts := api.Group("/goods-receipts")
	{
		receipts.POST("", handlers.GoodsReceipts.Receive)
		receipts.GET("", handlers.GoodsReceipts.List)
		receipts.GET("/:id", handlers.GoodsReceipts.Get)
	}

	vendors := api.Group("/vendors")
	{
		vendors.POST("", handlers.Vendors.Create)
		vendors.GET("", handlers.Vendors.List)
		vendors.GET("/:id", handlers.Vendors.Get)
		vendors.PUT("/:id", handlers.Vendors.Update)
		vendors.POST("/:id/deactivate", handlers.Vendors.Deactivate)
		vendors.POST("/:id/activate", handlers.Vendors.Activate)
	}

	products := api.Group("/products")
	{
		products.POST("", handlers.Products.Create)
		products.GET("", handlers.Products.List)
		products.GET("/:id", handlers.Products.Get)
	}

	orders := api.Group("/purchase-orders")
	{
		orders.POST("", handlers.Orders.Create)
		orders.GET("", handlers.Orders.List)
		orders.GET("/:id", handlers.Orders.Get)
		orders.POST("/:id/confirm", handlers.Orders.Confirm)
		orders.POST("/:id/cancel", handlers.Orders.Cancel)
	}

	bills := api.Group("/bills")
	{
		bills.GET("", handlers.Bills.List)
		bills.GET("/:id", handlers.Bills.Get)
		bills.POST("/:id/payments", handlers.Bills.ApplyPayment)
		bills.POST("/:id/cancel", handlers.Bills.Cancel)
	}

	return engine
}
