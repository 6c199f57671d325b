package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/ledger"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared"
)

// GormLedgerTransactionRepository implements ledger.TransactionRepository
// using GORM. The table is append-only: the repository exposes no update or
// delete, corrections are new reversing transactions.
type GormLedgerTransactionRepository struct {
	db *gorm.DB
}

// NewGormLedgerTransactionRepository creates a new GormLedgerTransactionRepository
func NewGormLedgerTransactionRepository(db *gorm.DB) *GormLedgerTransactionRepository {
	return &GormLedgerTransactionRepository{db: db}
}

// Create persists a transaction together with all its entries
func (r *GormLedgerTransactionRepository) Create(ctx context.Context, tx *ledger.LedgerTransaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

// FindByID finds a transaction (with entries) by ID
func (r *GormLedgerTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.LedgerTransaction, error) {
	var tx ledger.LedgerTransaction
	if err := r.db.WithContext(ctx).Preload("Entries").First(&tx, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &tx, nil
}

// FindByIDForTenant finds a transaction (with entries) by ID within a tenant
func (r *GormLedgerTransactionRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*ledger.LedgerTransaction, error) {
	var tx ledger.LedgerTransaction
	if err := r.db.WithContext(ctx).Preload("Entries").
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&tx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &tx, nil
}

// FindByNumber finds a transaction by its number within a tenant
func (r *GormLedgerTransactionRepository) FindByNumber(ctx context.Context, tenantID uuid.UUID, number string) (*ledger.LedgerTransaction, error) {
	var tx ledger.LedgerTransaction
	if err := r.db.WithContext(ctx).Preload("Entries").
		Where("tenant_id = ? AND transaction_number = ?", tenantID, number).
		First(&tx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &tx, nil
}

// FindByReference finds transactions originating from a business document
func (r *GormLedgerTransactionRepository) FindByReference(ctx context.Context, tenantID uuid.UUID, referenceType string, referenceID uuid.UUID) ([]ledger.LedgerTransaction, error) {
	var txs []ledger.LedgerTransaction
	if err := r.db.WithContext(ctx).Preload("Entries").
		Where("tenant_id = ? AND reference_type = ? AND reference_id = ?", tenantID, referenceType, referenceID).
		Order("created_at DESC").
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// FindAllForTenant finds transactions for a tenant with filtering
func (r *GormLedgerTransactionRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter ledger.TransactionFilter) ([]ledger.LedgerTransaction, error) {
	var txs []ledger.LedgerTransaction
	query := applyFilter(r.filtered(ctx, tenantID, filter), filter.Filter).Preload("Entries")
	if err := query.Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// CountForTenant counts transactions for a tenant
func (r *GormLedgerTransactionRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter ledger.TransactionFilter) (int64, error) {
	var count int64
	if err := r.filtered(ctx, tenantID, filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormLedgerTransactionRepository) filtered(ctx context.Context, tenantID uuid.UUID, filter ledger.TransactionFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&ledger.LedgerTransaction{}).
		Where("tenant_id = ?", tenantID)
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.FromDate != nil {
		query = query.Where("transaction_date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("transaction_date <= ?", *filter.ToDate)
	}
	if filter.AccountID != nil {
		query = query.Where(
			"id IN (?)",
			r.db.Model(&ledger.LedgerEntry{}).Select("transaction_id").Where("account_id = ?", *filter.AccountID),
		)
	}
	return query
}

var _ ledger.TransactionRepository = (*GormLedgerTransactionRepository)(nil)
