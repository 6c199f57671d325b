package persistence

import (
	"context"

	"gorm.io/gorm"

	apprecv "github.com/Mudegi/YourBookSuit-sub006/internal/application/receiving"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/billing"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/inventory"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/ledger"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/partner"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/receiving"
)

// GormReceivingTransactionScope implements the receiving TransactionScope
// using GORM transactions. A goods receipt touches the receipt, stock,
// ledger, bill and purchase order in one commit; any failed step rolls the
// whole receipt back.
type GormReceivingTransactionScope struct {
	db *gorm.DB
}

// NewGormReceivingTransactionScope creates a new GormReceivingTransactionScope
func NewGormReceivingTransactionScope(db *gorm.DB) *GormReceivingTransactionScope {
	return &GormReceivingTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormReceivingTransactionScope) Execute(ctx context.Context, fn func(repos apprecv.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormReceivingRepositories{tx: tx})
	})
}

type gormReceivingRepositories struct {
	tx *gorm.DB
}

func (r *gormReceivingRepositories) ReceiptRepo() receiving.GoodsReceiptRepository {
	return NewGormGoodsReceiptRepository(r.tx)
}

func (r *gormReceivingRepositories) PositionRepo() inventory.PositionRepository {
	return NewGormPositionRepository(r.tx)
}

func (r *gormReceivingRepositories) MovementRepo() inventory.MovementRepository {
	return NewGormMovementRepository(r.tx)
}

func (r *gormReceivingRepositories) AccountRepo() ledger.AccountRepository {
	return NewGormAccountRepository(r.tx)
}

func (r *gormReceivingRepositories) LedgerTransactionRepo() ledger.TransactionRepository {
	return NewGormLedgerTransactionRepository(r.tx)
}

func (r *gormReceivingRepositories) BillRepo() billing.BillRepository {
	return NewGormBillRepository(r.tx)
}

func (r *gormReceivingRepositories) VendorRepo() partner.VendorRepository {
	return NewGormVendorRepository(r.tx)
}

func (r *gormReceivingRepositories) ProductRepo() partner.ProductRepository {
	return NewGormProductRepository(r.tx)
}

func (r *gormReceivingRepositories) PurchaseOrderRepo() partner.PurchaseOrderRepository {
	return NewGormPurchaseOrderRepository(r.tx)
}

var _ apprecv.TransactionScope = (*GormReceivingTransactionScope)(nil)
var _ apprecv.TransactionalRepositories = (*gormReceivingRepositories)(nil)
