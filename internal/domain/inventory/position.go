package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared/valueobject"
)

// InventoryPosition is the on-hand stock of one product at one location,
// valued at weighted average cost. It is the aggregate root for valuation;
// quantity, average cost and total value only ever change together, through
// the receipt/issue/adjustment operations below.
type InventoryPosition struct {
	shared.TenantAggregateRoot
	ProductID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_position_tenant_product_location,priority:2"`
	LocationID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_position_tenant_product_location,priority:3"`
	QuantityOnHand    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	QuantityAvailable decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	AverageUnitCost   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	TotalValue        decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (InventoryPosition) TableName() string {
	return "inventory_positions"
}

// NewInventoryPosition creates an empty position for a product-location pair
func NewInventoryPosition(tenantID, productID, locationID uuid.UUID) (*InventoryPosition, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if locationID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_LOCATION", "Location ID cannot be empty")
	}

	return &InventoryPosition{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		ProductID:           productID,
		LocationID:          locationID,
		QuantityOnHand:      decimal.Zero,
		QuantityAvailable:   decimal.Zero,
		AverageUnitCost:     decimal.Zero,
		TotalValue:          decimal.Zero,
	}, nil
}

// Receive adds stock at the given unit cost and recomputes the weighted
// average cost:
//
//	newValue = value + quantity*unitCost
//	newAvg   = newValue / newQuantity
func (p *InventoryPosition) Receive(quantity, unitCost decimal.Decimal) error {
	if !quantity.IsPositive() {
		return shared.NewDomainError("INVALID_QUANTITY", "Receipt quantity must be positive")
	}
	if unitCost.IsNegative() {
		return shared.NewDomainError("INVALID_COST", "Unit cost cannot be negative")
	}

	newQuantity := p.QuantityOnHand.Add(quantity)
	newValue := p.TotalValue.Add(quantity.Mul(unitCost))

	p.QuantityOnHand = newQuantity
	p.QuantityAvailable = p.QuantityAvailable.Add(quantity)
	p.TotalValue = newValue
	p.AverageUnitCost = newValue.Div(newQuantity).Round(valueobject.CostPlaces)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// Issue removes stock at the current average unit cost. Driving quantity
// negative is a consistency error, never clamped.
func (p *InventoryPosition) Issue(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return shared.NewDomainError("INVALID_QUANTITY", "Issue quantity must be positive")
	}
	if quantity.GreaterThan(p.QuantityOnHand) {
		return shared.ErrNegativeStock
	}

	p.QuantityOnHand = p.QuantityOnHand.Sub(quantity)
	p.QuantityAvailable = p.QuantityAvailable.Sub(quantity)
	if p.QuantityOnHand.IsZero() {
		p.TotalValue = decimal.Zero
	} else {
		p.TotalValue = p.TotalValue.Sub(quantity.Mul(p.AverageUnitCost))
	}
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// AdjustReceiptCost corrects the value of already-received stock without
// touching quantity. Used by landed-cost allocation: the original receipt has
// already been averaged in, so only the cost delta is applied and the average
// recomputed from the corrected value.
func (p *InventoryPosition) AdjustReceiptCost(costDelta decimal.Decimal) error {
	if !p.QuantityOnHand.IsPositive() {
		return shared.NewDomainError("NO_STOCK", "Cannot adjust cost of an empty position")
	}

	newValue := p.TotalValue.Add(costDelta)
	if newValue.IsNegative() {
		return shared.NewDomainError("INVALID_ADJUSTMENT", "Cost adjustment would drive inventory value negative")
	}

	p.TotalValue = newValue
	p.AverageUnitCost = newValue.Div(p.QuantityOnHand).Round(valueobject.CostPlaces)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// HasStock returns true if any quantity is on hand
func (p *InventoryPosition) HasStock() bool {
	return p.QuantityOnHand.IsPositive()
}

// ValueConsistent reports whether totalValue matches quantity*averageCost
// within one minor unit of rounding tolerance
func (p *InventoryPosition) ValueConsistent() bool {
	expected := p.QuantityOnHand.Mul(p.AverageUnitCost)
	tolerance := decimal.New(1, -valueobject.MoneyPlaces)
	return p.TotalValue.Sub(expected).Abs().LessThanOrEqual(tolerance)
}
