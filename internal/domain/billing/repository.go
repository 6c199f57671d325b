package billing

import (
	"context"

	"github.com/google/uuid"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared"
)

// BillFilter narrows bill queries
type BillFilter struct {
	shared.Filter
	VendorID *uuid.UUID
	Status   *BillStatus
}

// BillRepository defines the persistence interface for vendor bills.
// FindByID loads the bill with its lines.
type BillRepository interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Bill, error)
	FindByNumber(ctx context.Context, tenantID uuid.UUID, billNumber string) (*Bill, error)
	FindByGoodsReceipt(ctx context.Context, tenantID, receiptID uuid.UUID) (*Bill, error)
	FindAll(ctx context.Context, tenantID uuid.UUID, filter BillFilter) ([]*Bill, int64, error)
	Save(ctx context.Context, bill *Bill) error
	SaveWithLock(ctx context.Context, bill *Bill, expectedVersion int) error
}
