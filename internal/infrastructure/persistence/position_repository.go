package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/inventory"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared"
)

// GormPositionRepository implements inventory.PositionRepository using GORM
type GormPositionRepository struct {
	db *gorm.DB
}

// NewGormPositionRepository creates a new GormPositionRepository
func NewGormPositionRepository(db *gorm.DB) *GormPositionRepository {
	return &GormPositionRepository{db: db}
}

// FindByID finds a position by ID
func (r *GormPositionRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.InventoryPosition, error) {
	var position inventory.InventoryPosition
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&position).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &position, nil
}

// FindByProductAndLocation finds the position for a product-location pair
func (r *GormPositionRepository) FindByProductAndLocation(ctx context.Context, tenantID, productID, locationID uuid.UUID) (*inventory.InventoryPosition, error) {
	var position inventory.InventoryPosition
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND product_id = ? AND location_id = ?", tenantID, productID, locationID).
		First(&position).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &position, nil
}

// GetOrCreate returns the existing position or creates an empty one.
// Uses ON CONFLICT DO NOTHING so two concurrent callers never produce
// duplicate rows for the same product-location pair.
func (r *GormPositionRepository) GetOrCreate(ctx context.Context, tenantID, productID, locationID uuid.UUID) (*inventory.InventoryPosition, error) {
	position, err := r.FindByProductAndLocation(ctx, tenantID, productID, locationID)
	if err == nil {
		return position, nil
	}
	if !shared.IsNotFound(err) {
		return nil, err
	}

	fresh, err := inventory.NewInventoryPosition(tenantID, productID, locationID)
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "tenant_id"}, {Name: "product_id"}, {Name: "location_id"},
			},
			DoNothing: true,
		}).
		Create(fresh).Error
	if err != nil {
		return nil, err
	}

	// Another caller won the insert race; fetch their row
	if fresh.ID == uuid.Nil {
		return r.FindByProductAndLocation(ctx, tenantID, productID, locationID)
	}
	return fresh, nil
}

// FindByProduct finds positions for a product across locations
func (r *GormPositionRepository) FindByProduct(ctx context.Context, tenantID, productID uuid.UUID, filter shared.Filter) ([]inventory.InventoryPosition, error) {
	var positions []inventory.InventoryPosition
	query := applyFilter(
		r.db.WithContext(ctx).Model(&inventory.InventoryPosition{}).
			Where("tenant_id = ? AND product_id = ?", tenantID, productID),
		filter,
	)
	if err := query.Find(&positions).Error; err != nil {
		return nil, err
	}
	return positions, nil
}

// FindAllForTenant finds all positions for a tenant
func (r *GormPositionRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]inventory.InventoryPosition, error) {
	var positions []inventory.InventoryPosition
	query := applyFilter(
		r.db.WithContext(ctx).Model(&inventory.InventoryPosition{}).
			Where("tenant_id = ?", tenantID),
		filter,
	)
	if err := query.Find(&positions).Error; err != nil {
		return nil, err
	}
	return positions, nil
}

// SaveWithLock persists the position only when the stored version still
// matches the version the aggregate was loaded at
func (r *GormPositionRepository) SaveWithLock(ctx context.Context, position *inventory.InventoryPosition) error {
	result := r.db.WithContext(ctx).Model(&inventory.InventoryPosition{}).
		Where("id = ? AND version = ?", position.ID, position.GetVersion()-1).
		Updates(map[string]interface{}{
			"quantity_on_hand":   position.QuantityOnHand,
			"quantity_available": position.QuantityAvailable,
			"average_unit_cost":  position.AverageUnitCost,
			"total_value":        position.TotalValue,
			"version":            position.GetVersion(),
			"updated_at":         time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

var _ inventory.PositionRepository = (*GormPositionRepository)(nil)
