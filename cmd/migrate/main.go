package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/billing"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/currency"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/inventory"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/ledger"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/partner"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/receiving"
	"github.com/Mudegi/YourBookSuit-sub006/internal/infrastructure/config"
	"github.com/Mudegi/YourBookSuit-sub006/internal/infrastructure/logger"
	"github.com/Mudegi/YourBookSuit-sub006/internal/infrastructure/persistence"
)

// Migration order follows foreign key dependencies: masters first,
// then documents that reference them.
var entities = []any{
	&ledger.Account{},
	&ledger.LedgerTransaction{},
	&ledger.LedgerEntry{},
	&currency.ExchangeRate{},
	&partner.Vendor{},
	&partner.Product{},
	&partner.PurchaseOrder{},
	&partner.PurchaseOrderLine{},
	&inventory.InventoryPosition{},
	&inventory.StockMovement{},
	&receiving.GoodsReceipt{},
	&receiving.GoodsReceiptLine{},
	&billing.Bill{},
	&billing.BillLine{},
}

func main() {
	var logLevel string
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	log.Info("Running schema migration",
		zap.String("database", cfg.Database.DBName),
		zap.Int("entities", len(entities)),
	)

	if err := db.DB.AutoMigrate(entities...); err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}

	log.Info("Schema migration complete")
}
