package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/inventory"
)

// ==================== Inventory DTOs ====================

// ReceiveStockRequest represents a direct stock receipt into a position
type ReceiveStockRequest struct {
	ProductID  uuid.UUID       `json:"product_id" binding:"required"`
	LocationID uuid.UUID       `json:"location_id" binding:"required"`
	Quantity   decimal.Decimal `json:"quantity" binding:"required"`
	UnitCost   decimal.Decimal `json:"unit_cost" binding:"required"`
	SourceType string          `json:"source_type" binding:"required,max=50"`
	SourceID   uuid.UUID       `json:"source_id" binding:"required"`
	Remark     string          `json:"remark" binding:"max=500"`
}

// IssueStockRequest represents a stock issue out of a position
type IssueStockRequest struct {
	ProductID  uuid.UUID       `json:"product_id" binding:"required"`
	LocationID uuid.UUID       `json:"location_id" binding:"required"`
	Quantity   decimal.Decimal `json:"quantity" binding:"required"`
	SourceType string          `json:"source_type" binding:"required,max=50"`
	SourceID   uuid.UUID       `json:"source_id" binding:"required"`
	Remark     string          `json:"remark" binding:"max=500"`
}

// PositionResponse represents the valuation state of one position
type PositionResponse struct {
	ID              uuid.UUID       `json:"id"`
	ProductID       uuid.UUID       `json:"product_id"`
	LocationID      uuid.UUID       `json:"location_id"`
	QuantityOnHand  decimal.Decimal `json:"quantity_on_hand"`
	AverageUnitCost decimal.Decimal `json:"average_unit_cost"`
	TotalValue      decimal.Decimal `json:"total_value"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// MovementResponse represents one stock movement record
type MovementResponse struct {
	ID             uuid.UUID       `json:"id"`
	PositionID     uuid.UUID       `json:"position_id"`
	ProductID      uuid.UUID       `json:"product_id"`
	LocationID     uuid.UUID       `json:"location_id"`
	Type           string          `json:"type"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitCost       decimal.Decimal `json:"unit_cost"`
	QuantityBefore decimal.Decimal `json:"quantity_before"`
	QuantityAfter  decimal.Decimal `json:"quantity_after"`
	SourceType     string          `json:"source_type"`
	SourceID       uuid.UUID       `json:"source_id"`
	Remark         string          `json:"remark,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ToPositionResponse maps a position to its response shape
func ToPositionResponse(p *inventory.InventoryPosition) PositionResponse {
	return PositionResponse{
		ID:              p.ID,
		ProductID:       p.ProductID,
		LocationID:      p.LocationID,
		QuantityOnHand:  p.QuantityOnHand,
		AverageUnitCost: p.AverageUnitCost,
		TotalValue:      p.TotalValue,
		UpdatedAt:       p.UpdatedAt,
	}
}

// ToMovementResponse maps a movement to its response shape
func ToMovementResponse(m *inventory.StockMovement) MovementResponse {
	return MovementResponse{
		ID:             m.ID,
		PositionID:     m.PositionID,
		ProductID:      m.ProductID,
		LocationID:     m.LocationID,
		Type:           m.Type.String(),
		Quantity:       m.Quantity,
		UnitCost:       m.UnitCost,
		QuantityBefore: m.QuantityBefore,
		QuantityAfter:  m.QuantityAfter,
		SourceType:     m.SourceType,
		SourceID:       m.SourceID,
		Remark:         m.Remark,
		CreatedAt:      m.CreatedAt,
	}
}
