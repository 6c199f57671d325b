package receiving

import (
	"context"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/billing"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/inventory"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/ledger"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/partner"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/receiving"
)

// TransactionScope provides transactional access to every repository the
// goods receipt flow touches. Receiving writes the receipt, stock positions,
// movements, ledger entries, account balances, the bill and the purchase
// order in one unit of work; a failure at any step rolls back all of it.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories within a
// transaction. All repositories share the same underlying database transaction.
type TransactionalRepositories interface {
	// ReceiptRepo returns the goods receipt repository scoped to the current transaction
	ReceiptRepo() receiving.GoodsReceiptRepository
	// PositionRepo returns the inventory position repository scoped to the current transaction
	PositionRepo() inventory.PositionRepository
	// MovementRepo returns the stock movement repository scoped to the current transaction
	MovementRepo() inventory.MovementRepository
	// AccountRepo returns the ledger account repository scoped to the current transaction
	AccountRepo() ledger.AccountRepository
	// LedgerTransactionRepo returns the ledger transaction repository scoped to the current transaction
	LedgerTransactionRepo() ledger.TransactionRepository
	// BillRepo returns the bill repository scoped to the current transaction
	BillRepo() billing.BillRepository
	// VendorRepo returns the vendor repository scoped to the current transaction
	VendorRepo() partner.VendorRepository
	// ProductRepo returns the product repository scoped to the current transaction
	ProductRepo() partner.ProductRepository
	// PurchaseOrderRepo returns the purchase order repository scoped to the current transaction
	PurchaseOrderRepo() partner.PurchaseOrderRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for testing.
type NoOpTransactionScope struct {
	Receipts       receiving.GoodsReceiptRepository
	Positions      inventory.PositionRepository
	Movements      inventory.MovementRepository
	Accounts       ledger.AccountRepository
	LedgerTxs      ledger.TransactionRepository
	Bills          billing.BillRepository
	Vendors        partner.VendorRepository
	Products       partner.ProductRepository
	PurchaseOrders partner.PurchaseOrderRepository
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// ReceiptRepo returns the goods receipt repository.
func (s *NoOpTransactionScope) ReceiptRepo() receiving.GoodsReceiptRepository { return s.Receipts }

// PositionRepo returns the inventory position repository.
func (s *NoOpTransactionScope) PositionRepo() inventory.PositionRepository { return s.Positions }

// MovementRepo returns the stock movement repository.
func (s *NoOpTransactionScope) MovementRepo() inventory.MovementRepository { return s.Movements }

// AccountRepo returns the ledger account repository.
func (s *NoOpTransactionScope) AccountRepo() ledger.AccountRepository { return s.Accounts }

// LedgerTransactionRepo returns the ledger transaction repository.
func (s *NoOpTransactionScope) LedgerTransactionRepo() ledger.TransactionRepository {
	return s.LedgerTxs
}

// BillRepo returns the bill repository.
func (s *NoOpTransactionScope) BillRepo() billing.BillRepository { return s.Bills }

// VendorRepo returns the vendor repository.
func (s *NoOpTransactionScope) VendorRepo() partner.VendorRepository { return s.Vendors }

// ProductRepo returns the product repository.
func (s *NoOpTransactionScope) ProductRepo() partner.ProductRepository { return s.Products }

// PurchaseOrderRepo returns the purchase order repository.
func (s *NoOpTransactionScope) PurchaseOrderRepo() partner.PurchaseOrderRepository {
	return s.PurchaseOrders
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
