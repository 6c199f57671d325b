package persistence

import (
	"context"

	"gorm.io/gorm"

	appinv "github.com/Mudegi/YourBookSuit-sub006/internal/application/inventory"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/inventory"
)

// GormInventoryTransactionScope implements the inventory TransactionScope
// using GORM transactions. A valuation change writes the position and its
// movement record in one commit.
type GormInventoryTransactionScope struct {
	db *gorm.DB
}

// NewGormInventoryTransactionScope creates a new GormInventoryTransactionScope
func NewGormInventoryTransactionScope(db *gorm.DB) *GormInventoryTransactionScope {
	return &GormInventoryTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormInventoryTransactionScope) Execute(ctx context.Context, fn func(repos appinv.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormInventoryRepositories{tx: tx})
	})
}

type gormInventoryRepositories struct {
	tx *gorm.DB
}

// PositionRepo returns the position repository scoped to the current transaction
func (r *gormInventoryRepositories) PositionRepo() inventory.PositionRepository {
	return NewGormPositionRepository(r.tx)
}

// MovementRepo returns the movement repository scoped to the current transaction
func (r *gormInventoryRepositories) MovementRepo() inventory.MovementRepository {
	return NewGormMovementRepository(r.tx)
}

var _ appinv.TransactionScope = (*GormInventoryTransactionScope)(nil)
var _ appinv.TransactionalRepositories = (*gormInventoryRepositories)(nil)
