package receiving

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared"
)

// ReceiptFilter defines filtering options for goods receipt queries
type ReceiptFilter struct {
	shared.Filter
	VendorID        *uuid.UUID
	Status          *ReceiptStatus
	PurchaseOrderID *uuid.UUID
	FromDate        *time.Time
	ToDate          *time.Time
}

// GoodsReceiptRepository defines the interface for goods receipt persistence
type GoodsReceiptRepository interface {
	// Create persists a receipt together with all its lines
	Create(ctx context.Context, receipt *GoodsReceipt) error

	// FindByID finds a receipt (with lines) by ID
	FindByID(ctx context.Context, id uuid.UUID) (*GoodsReceipt, error)

	// FindByIDForTenant finds a receipt (with lines) by ID within a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*GoodsReceipt, error)

	// FindByNumber finds a receipt by its number within a tenant
	FindByNumber(ctx context.Context, tenantID uuid.UUID, number string) (*GoodsReceipt, error)

	// FindAllForTenant lists receipts for a tenant with filtering
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter ReceiptFilter) ([]GoodsReceipt, error)

	// Save updates the receipt header and lines
	Save(ctx context.Context, receipt *GoodsReceipt) error
}
