package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared"
)

// AccountRepository defines the interface for chart-of-accounts persistence
type AccountRepository interface {
	// FindByID finds an account by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)

	// FindByIDForTenant finds an account by ID within a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Account, error)

	// FindByCode finds an account by its chart code within a tenant
	FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*Account, error)

	// FindByIDs finds multiple accounts by their IDs within a tenant
	FindByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]Account, error)

	// FindByType finds accounts of a given type within a tenant
	FindByType(ctx context.Context, tenantID uuid.UUID, accountType AccountType, filter shared.Filter) ([]Account, error)

	// FindAllForTenant finds all accounts for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Account, error)

	// Save creates or updates an account
	Save(ctx context.Context, account *Account) error

	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, account *Account) error
}

// TransactionFilter defines filtering options for ledger transaction queries
type TransactionFilter struct {
	shared.Filter
	Type      *TransactionType
	FromDate  *time.Time
	ToDate    *time.Time
	AccountID *uuid.UUID
}

// TransactionRepository defines the interface for ledger transaction persistence.
// Transactions are append-only: there is no update or delete, corrections are
// new reversing transactions.
type TransactionRepository interface {
	// Create persists a transaction together with all its entries
	Create(ctx context.Context, tx *LedgerTransaction) error

	// FindByID finds a transaction (with entries) by ID
	FindByID(ctx context.Context, id uuid.UUID) (*LedgerTransaction, error)

	// FindByIDForTenant finds a transaction (with entries) by ID within a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*LedgerTransaction, error)

	// FindByNumber finds a transaction by its number within a tenant
	FindByNumber(ctx context.Context, tenantID uuid.UUID, number string) (*LedgerTransaction, error)

	// FindByReference finds transactions originating from a business document
	FindByReference(ctx context.Context, tenantID uuid.UUID, referenceType string, referenceID uuid.UUID) ([]LedgerTransaction, error)

	// FindAllForTenant finds transactions for a tenant with filtering
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter TransactionFilter) ([]LedgerTransaction, error)

	// CountForTenant counts transactions for a tenant
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter TransactionFilter) (int64, error)
}
