package persistence

import (
	"context"

	"gorm.io/gorm"

	appledger "github.com/Mudegi/YourBookSuit-sub006/internal/application/ledger"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/ledger"
)

// GormLedgerTransactionScope implements the ledger TransactionScope using
// GORM transactions. A posting writes the journal entry and the account
// balances in one commit.
type GormLedgerTransactionScope struct {
	db *gorm.DB
}

// NewGormLedgerTransactionScope creates a new GormLedgerTransactionScope
func NewGormLedgerTransactionScope(db *gorm.DB) *GormLedgerTransactionScope {
	return &GormLedgerTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormLedgerTransactionScope) Execute(ctx context.Context, fn func(repos appledger.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormLedgerRepositories{tx: tx})
	})
}

type gormLedgerRepositories struct {
	tx *gorm.DB
}

// AccountRepo returns the account repository scoped to the current transaction
func (r *gormLedgerRepositories) AccountRepo() ledger.AccountRepository {
	return NewGormAccountRepository(r.tx)
}

// TransactionRepo returns the ledger transaction repository scoped to the current transaction
func (r *gormLedgerRepositories) TransactionRepo() ledger.TransactionRepository {
	return NewGormLedgerTransactionRepository(r.tx)
}

var _ appledger.TransactionScope = (*GormLedgerTransactionScope)(nil)
var _ appledger.TransactionalRepositories = (*gormLedgerRepositories)(nil)
