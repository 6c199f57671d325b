package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/receiving"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared"
)

// GormGoodsReceiptRepository implements receiving.GoodsReceiptRepository using GORM
type GormGoodsReceiptRepository struct {
	db *gorm.DB
}

// NewGormGoodsReceiptRepository creates a new GormGoodsReceiptRepository
func NewGormGoodsReceiptRepository(db *gorm.DB) *GormGoodsReceiptRepository {
	return &GormGoodsReceiptRepository{db: db}
}

// Create persists a receipt together with all its lines
func (r *GormGoodsReceiptRepository) Create(ctx context.Context, receipt *receiving.GoodsReceipt) error {
	return r.db.WithContext(ctx).Create(receipt).Error
}

// FindByID finds a receipt (with lines) by ID
func (r *GormGoodsReceiptRepository) FindByID(ctx context.Context, id uuid.UUID) (*receiving.GoodsReceipt, error) {
	var receipt receiving.GoodsReceipt
	err := r.db.WithContext(ctx).Preload("Lines").Where("id = ?", id).First(&receipt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

// FindByIDForTenant finds a receipt (with lines) by ID within a tenant
func (r *GormGoodsReceiptRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*receiving.GoodsReceipt, error) {
	var receipt receiving.GoodsReceipt
	err := r.db.WithContext(ctx).Preload("Lines").
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&receipt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

// FindByNumber finds a receipt by its number within a tenant
func (r *GormGoodsReceiptRepository) FindByNumber(ctx context.Context, tenantID uuid.UUID, number string) (*receiving.GoodsReceipt, error) {
	var receipt receiving.GoodsReceipt
	err := r.db.WithContext(ctx).Preload("Lines").
		Where("tenant_id = ? AND receipt_number = ?", tenantID, number).
		First(&receipt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

// FindAllForTenant lists receipts for a tenant with filtering
func (r *GormGoodsReceiptRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter receiving.ReceiptFilter) ([]receiving.GoodsReceipt, error) {
	var receipts []receiving.GoodsReceipt
	query := r.db.WithContext(ctx).Model(&receiving.GoodsReceipt{}).
		Preload("Lines").
		Where("tenant_id = ?", tenantID)

	if filter.VendorID != nil {
		query = query.Where("vendor_id = ?", *filter.VendorID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.PurchaseOrderID != nil {
		query = query.Where("purchase_order_id = ?", *filter.PurchaseOrderID)
	}
	if filter.FromDate != nil {
		query = query.Where("receipt_date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("receipt_date <= ?", *filter.ToDate)
	}

	if err := applyFilter(query, filter.Filter).Find(&receipts).Error; err != nil {
		return nil, err
	}
	return receipts, nil
}

// Save updates the receipt header and lines
func (r *GormGoodsReceiptRepository) Save(ctx context.Context, receipt *receiving.GoodsReceipt) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(receipt).Error
}

var _ receiving.GoodsReceiptRepository = (*GormGoodsReceiptRepository)(nil)
