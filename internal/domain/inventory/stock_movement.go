package inventory

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared"
)

// MovementType classifies a stock movement
type MovementType string

const (
	MovementTypeReceipt        MovementType = "RECEIPT"
	MovementTypeIssue          MovementType = "ISSUE"
	MovementTypeCostAdjustment MovementType = "COST_ADJUSTMENT"
)

// IsValid checks if the movement type is valid
func (t MovementType) IsValid() bool {
	switch t {
	case MovementTypeReceipt, MovementTypeIssue, MovementTypeCostAdjustment:
		return true
	}
	return false
}

// String returns the string representation of MovementType
func (t MovementType) String() string {
	return string(t)
}

// StockMovement is the immutable audit record of one physical stock change.
// Movements are append-only; they are never updated or deleted.
type StockMovement struct {
	shared.TenantAggregateRoot
	PositionID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	LocationID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type           MovementType    `gorm:"type:varchar(20);not null"`
	Quantity       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitCost       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	QuantityBefore decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	QuantityAfter  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	SourceType     string          `gorm:"type:varchar(50);not null"`
	SourceID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Remark         string          `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (StockMovement) TableName() string {
	return "stock_movements"
}

// NewStockMovement records one stock change against a position
func NewStockMovement(tenantID uuid.UUID, position *InventoryPosition, movementType MovementType, quantity, unitCost, quantityBefore decimal.Decimal, sourceType string, sourceID uuid.UUID) (*StockMovement, error) {
	if !movementType.IsValid() {
		return nil, shared.NewDomainError("INVALID_MOVEMENT_TYPE", "Unknown movement type")
	}
	if sourceType == "" || sourceID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SOURCE", "Source type and ID are required")
	}

	return &StockMovement{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		PositionID:          position.ID,
		ProductID:           position.ProductID,
		LocationID:          position.LocationID,
		Type:                movementType,
		Quantity:            quantity,
		UnitCost:            unitCost,
		QuantityBefore:      quantityBefore,
		QuantityAfter:       position.QuantityOnHand,
		SourceType:          sourceType,
		SourceID:            sourceID,
	}, nil
}

// WithRemark attaches a free-form note to the movement
func (m *StockMovement) WithRemark(remark string) *StockMovement {
	m.Remark = remark
	return m
}
