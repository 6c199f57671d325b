package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared"
)

// PositionRepository defines the interface for inventory position persistence
type PositionRepository interface {
	// FindByID finds a position by ID
	FindByID(ctx context.Context, id uuid.UUID) (*InventoryPosition, error)

	// FindByProductAndLocation finds the position for a product-location pair
	FindByProductAndLocation(ctx context.Context, tenantID, productID, locationID uuid.UUID) (*InventoryPosition, error)

	// GetOrCreate returns the existing position or creates an empty one,
	// safely under concurrent callers
	GetOrCreate(ctx context.Context, tenantID, productID, locationID uuid.UUID) (*InventoryPosition, error)

	// FindByProduct finds positions for a product across locations
	FindByProduct(ctx context.Context, tenantID, productID uuid.UUID, filter shared.Filter) ([]InventoryPosition, error)

	// FindAllForTenant finds all positions for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]InventoryPosition, error)

	// SaveWithLock persists a position guarding on the optimistic-lock
	// version. Quantity, average cost and total value are written together,
	// never field-by-field.
	SaveWithLock(ctx context.Context, position *InventoryPosition) error
}

// MovementRepository defines the interface for the append-only stock movement log
type MovementRepository interface {
	// Create appends one movement record
	Create(ctx context.Context, movement *StockMovement) error

	// FindByPosition lists movements for a position, newest first
	FindByPosition(ctx context.Context, tenantID, positionID uuid.UUID, filter shared.Filter) ([]StockMovement, error)

	// FindBySource lists movements created by a business document
	FindBySource(ctx context.Context, tenantID uuid.UUID, sourceType string, sourceID uuid.UUID) ([]StockMovement, error)
}
