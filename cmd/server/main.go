package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	billingapp "github.com/Mudegi/YourBookSuit-sub006/internal/application/billing"
	currencyapp "github.com/Mudegi/YourBookSuit-sub006/internal/application/currency"
	inventoryapp "github.com/Mudegi/YourBookSuit-sub006/internal/application/inventory"
	ledgerapp "github.com/Mudegi/YourBookSuit-sub006/internal/application/ledger"
	partnerapp "github.com/Mudegi/YourBookSuit-sub006/internal/application/partner"
	receivingapp "github.com/Mudegi/YourBookSuit-sub006/internal/application/receiving"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/currency"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared/valueobject"
	"github.com/Mudegi/YourBookSuit-sub006/internal/infrastructure/cache"
	"github.com/Mudegi/YourBookSuit-sub006/internal/infrastructure/config"
	"github.com/Mudegi/YourBookSuit-sub006/internal/infrastructure/logger"
	"github.com/Mudegi/YourBookSuit-sub006/internal/infrastructure/persistence"
	"github.com/Mudegi/YourBookSuit-sub006/internal/interfaces/http/handler"
	"github.com/Mudegi/YourBookSuit-sub006/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting accounting core",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("base_currency", cfg.Accounting.BaseCurrency),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	rateCache, err := cache.NewRateCache(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize rate cache", zap.Error(err))
	}

	baseCurrency, err := valueobject.ParseCurrency(cfg.Accounting.BaseCurrency)
	if err != nil {
		log.Fatal("Invalid base currency", zap.Error(err))
	}

	// Repositories
	rateRepo := persistence.NewGormExchangeRateRepository(db.DB)
	vendorRepo := persistence.NewGormVendorRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	orderRepo := persistence.NewGormPurchaseOrderRepository(db.DB)
	billRepo := persistence.NewGormBillRepository(db.DB)

	// Transaction scopes
	ledgerScope := persistence.NewGormLedgerTransactionScope(db.DB)
	inventoryScope := persistence.NewGormInventoryTransactionScope(db.DB)
	receivingScope := persistence.NewGormReceivingTransactionScope(db.DB)

	// Application services
	resolver := currency.NewResolver(rateRepo, rateCache)
	ledgerService := ledgerapp.NewLedgerService(ledgerScope, log)
	rateService := currencyapp.NewRateService(rateRepo, rateCache, nil, log)
	valuationService := inventoryapp.NewValuationService(inventoryScope, log)
	receiptService := receivingapp.NewGoodsReceiptService(receivingScope, resolver, baseCurrency, log)
	vendorService := partnerapp.NewVendorService(vendorRepo, log)
	productService := partnerapp.NewProductService(productRepo, log)
	orderService := partnerapp.NewPurchaseOrderService(orderRepo, vendorRepo, productRepo, log)
	billService := billingapp.NewBillService(billRepo, log)

	engine := router.New(cfg, log, router.Handlers{
		System:        handler.NewSystemHandler(db),
		Ledger:        handler.NewLedgerHandler(ledgerService),
		Rates:         handler.NewRateHandler(rateService),
		Inventory:     handler.NewInventoryHandler(valuationService),
		GoodsReceipts: handler.NewGoodsReceiptHandler(receiptService),
		Vendors:       handler.NewVendorHandler(vendorService),
		Products:      handler.NewProductHandler(productService),
		Orders:        handler.NewPurchaseOrderHandler(orderService),
		Bills:         handler.NewBillHandler(billService),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
