package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/billing"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared"
)

// GormBillRepository implements billing.BillRepository using GORM
type GormBillRepository struct {
	db *gorm.DB
}

// NewGormBillRepository creates a new GormBillRepository
func NewGormBillRepository(db *gorm.DB) *GormBillRepository {
	return &GormBillRepository{db: db}
}

// FindByID loads a bill with its lines
func (r *GormBillRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*billing.Bill, error) {
	var bill billing.Bill
	err := r.db.WithContext(ctx).Preload("Lines").
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&bill).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

// FindByNumber finds a bill by its number within a tenant
func (r *GormBillRepository) FindByNumber(ctx context.Context, tenantID uuid.UUID, billNumber string) (*billing.Bill, error) {
	var bill billing.Bill
	err := r.db.WithContext(ctx).Preload("Lines").
		Where("tenant_id = ? AND bill_number = ?", tenantID, billNumber).
		First(&bill).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

// FindByGoodsReceipt finds the bill created from a goods receipt
func (r *GormBillRepository) FindByGoodsReceipt(ctx context.Context, tenantID, receiptID uuid.UUID) (*billing.Bill, error) {
	var bill billing.Bill
	err := r.db.WithContext(ctx).Preload("Lines").
		Where("tenant_id = ? AND goods_receipt_id = ?", tenantID, receiptID).
		First(&bill).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

// FindAll lists bills for a tenant with filtering and a total count
func (r *GormBillRepository) FindAll(ctx context.Context, tenantID uuid.UUID, filter billing.BillFilter) ([]*billing.Bill, int64, error) {
	query := r.db.WithContext(ctx).Model(&billing.Bill{}).
		Where("tenant_id = ?", tenantID)

	if filter.VendorID != nil {
		query = query.Where("vendor_id = ?", *filter.VendorID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bills []*billing.Bill
	if err := applyFilter(query.Preload("Lines"), filter.Filter).Find(&bills).Error; err != nil {
		return nil, 0, err
	}
	return bills, total, nil
}

// Save persists the bill with its lines
func (r *GormBillRepository) Save(ctx context.Context, bill *billing.Bill) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(bill).Error
}

// SaveWithLock updates mutable bill state only when the stored version still
// matches the one the aggregate was loaded at
func (r *GormBillRepository) SaveWithLock(ctx context.Context, bill *billing.Bill, expectedVersion int) error {
	result := r.db.WithContext(ctx).Model(&billing.Bill{}).
		Where("id = ? AND version = ?", bill.ID, expectedVersion).
		Updates(map[string]interface{}{
			"paid_amount":           bill.PaidAmount,
			"status":                bill.Status,
			"ledger_transaction_id": bill.LedgerTransactionID,
			"cancel_reason":         bill.CancelReason,
			"version":               bill.GetVersion(),
			"updated_at":            time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

var _ billing.BillRepository = (*GormBillRepository)(nil)
