package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/partner"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared"
)

// GormPurchaseOrderRepository implements partner.PurchaseOrderRepository using GORM
type GormPurchaseOrderRepository struct {
	db *gorm.DB
}

// NewGormPurchaseOrderRepository creates a new GormPurchaseOrderRepository
func NewGormPurchaseOrderRepository(db *gorm.DB) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{db: db}
}

// FindByID loads an order with its lines
func (r *GormPurchaseOrderRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*partner.PurchaseOrder, error) {
	var order partner.PurchaseOrder
	err := r.db.WithContext(ctx).Preload("Lines").
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// FindByNumber finds an order by its number within a tenant
func (r *GormPurchaseOrderRepository) FindByNumber(ctx context.Context, tenantID uuid.UUID, orderNumber string) (*partner.PurchaseOrder, error) {
	var order partner.PurchaseOrder
	err := r.db.WithContext(ctx).Preload("Lines").
		Where("tenant_id = ? AND order_number = ?", tenantID, orderNumber).
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// FindAll lists orders for a tenant with a total count
func (r *GormPurchaseOrderRepository) FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]*partner.PurchaseOrder, int64, error) {
	query := r.db.WithContext(ctx).Model(&partner.PurchaseOrder{}).
		Where("tenant_id = ?", tenantID)

	if filter.Search != "" {
		query = query.Where("order_number ILIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []*partner.PurchaseOrder
	if err := applyFilter(query.Preload("Lines"), filter).Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// Save persists the order with its lines
func (r *GormPurchaseOrderRepository) Save(ctx context.Context, order *partner.PurchaseOrder) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(order).Error
}

// SaveWithLock persists receipt progress only when the stored version still
// matches the one the order was loaded at, then writes the updated lines
func (r *GormPurchaseOrderRepository) SaveWithLock(ctx context.Context, order *partner.PurchaseOrder, expectedVersion int) error {
	result := r.db.WithContext(ctx).Model(&partner.PurchaseOrder{}).
		Where("id = ? AND version = ?", order.ID, expectedVersion).
		Updates(map[string]interface{}{
			"status":     order.Status,
			"version":    order.GetVersion(),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}

	// Line progress is safe to write once the header guard held
	for i := range order.Lines {
		line := &order.Lines[i]
		err := r.db.WithContext(ctx).Model(&partner.PurchaseOrderLine{}).
			Where("id = ?", line.ID).
			Updates(map[string]interface{}{
				"received_quantity": line.ReceivedQuantity,
				"updated_at":        time.Now(),
			}).Error
		if err != nil {
			return err
		}
	}
	return nil
}

var _ partner.PurchaseOrderRepository = (*GormPurchaseOrderRepository)(nil)
