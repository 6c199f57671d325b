package partner

import (
	"context"

	"github.com/google/uuid"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared"
)

// VendorRepository defines the persistence interface for vendors
type VendorRepository interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Vendor, error)
	FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*Vendor, error)
	FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]*Vendor, int64, error)
	Save(ctx context.Context, vendor *Vendor) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// ProductRepository defines the persistence interface for products
type ProductRepository interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Product, error)
	FindBySKU(ctx context.Context, tenantID uuid.UUID, sku string) (*Product, error)
	FindByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]*Product, error)
	FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]*Product, int64, error)
	Save(ctx context.Context, product *Product) error
}

// PurchaseOrderRepository defines the persistence interface for purchase orders.
// FindByID loads the order with its lines. SaveWithLock guards against
// concurrent receipt of the same order via the aggregate version.
type PurchaseOrderRepository interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*PurchaseOrder, error)
	FindByNumber(ctx context.Context, tenantID uuid.UUID, orderNumber string) (*PurchaseOrder, error)
	FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]*PurchaseOrder, int64, error)
	Save(ctx context.Context, order *PurchaseOrder) error
	SaveWithLock(ctx context.Context, order *PurchaseOrder, expectedVersion int) error
}
