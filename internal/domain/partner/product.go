package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared"
)

// Product is the slice of the catalog the receiving core needs: identity, the
// asset account stock is carried under, and the denormalized last purchase
// price used for price-variance warnings. The core is allowed to update the
// last purchase price; everything else is read-only here.
type Product struct {
	shared.TenantAggregateRoot
	SKU               string           `gorm:"type:varchar(50);not null;uniqueIndex:idx_product_tenant_sku,priority:2"`
	Name              string           `gorm:"type:varchar(200);not null"`
	InventoryAccountID *uuid.UUID      `gorm:"type:uuid"`
	LastPurchasePrice *decimal.Decimal `gorm:"type:decimal(18,4)"`
	IsActive          bool             `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new active product
func NewProduct(tenantID uuid.UUID, sku, name string) (*Product, error) {
	if sku == "" {
		return nil, shared.NewDomainError("INVALID_SKU", "Product SKU cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}

	return &Product{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		SKU:                 sku,
		Name:                name,
		IsActive:            true,
	}, nil
}

// RecordPurchasePrice updates the denormalized last purchase price
func (p *Product) RecordPurchasePrice(price decimal.Decimal) {
	v := price
	p.LastPurchasePrice = &v
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// PriceVarianceExceeds reports whether the given unit cost deviates from the
// last recorded purchase price by more than the threshold ratio. With no
// recorded price there is nothing to compare against.
func (p *Product) PriceVarianceExceeds(unitCost, threshold decimal.Decimal) bool {
	if p.LastPurchasePrice == nil || p.LastPurchasePrice.IsZero() {
		return false
	}
	variance := unitCost.Sub(*p.LastPurchasePrice).Abs().Div(*p.LastPurchasePrice)
	return variance.GreaterThan(threshold)
}

// SetInventoryAccount assigns the asset account stock of this product posts to
func (p *Product) SetInventoryAccount(accountID uuid.UUID) {
	p.InventoryAccountID = &accountID
	p.UpdatedAt = time.Now()
}
