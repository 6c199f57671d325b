package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/currency"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared/valueobject"
)

// GormExchangeRateRepository implements currency.ExchangeRateRepository using GORM
type GormExchangeRateRepository struct {
	db *gorm.DB
}

// NewGormExchangeRateRepository creates a new GormExchangeRateRepository
func NewGormExchangeRateRepository(db *gorm.DB) *GormExchangeRateRepository {
	return &GormExchangeRateRepository{db: db}
}

// FindLatestOnOrBefore returns the rate with the greatest effective date not
// after the given date, or nil when the pair has no usable rate yet
func (r *GormExchangeRateRepository) FindLatestOnOrBefore(ctx context.Context, tenantID uuid.UUID, from, to valueobject.Currency, date time.Time) (*currency.ExchangeRate, error) {
	var rate currency.ExchangeRate
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND from_currency = ? AND to_currency = ? AND effective_date <= ?",
			tenantID, from, to, date).
		Order("effective_date DESC").
		First(&rate).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

// FindByKey returns the rate for the exact pair and effective date, or nil
func (r *GormExchangeRateRepository) FindByKey(ctx context.Context, tenantID uuid.UUID, from, to valueobject.Currency, effectiveDate time.Time) (*currency.ExchangeRate, error) {
	var rate currency.ExchangeRate
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND from_currency = ? AND to_currency = ? AND effective_date = ?",
			tenantID, from, to, effectiveDate).
		First(&rate).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

// Upsert stores the rate, overwriting any existing rate for the same tenant,
// pair and effective date
func (r *GormExchangeRateRepository) Upsert(ctx context.Context, rate *currency.ExchangeRate) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "tenant_id"}, {Name: "from_currency"}, {Name: "to_currency"}, {Name: "effective_date"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"rate", "source", "is_manual_override", "version", "updated_at",
			}),
		}).
		Create(rate).Error
}

// FindByPair lists the rate history for a pair, newest first
func (r *GormExchangeRateRepository) FindByPair(ctx context.Context, tenantID uuid.UUID, from, to valueobject.Currency, filter shared.Filter) ([]currency.ExchangeRate, error) {
	if filter.OrderBy == "" {
		filter.OrderBy = "effective_date"
		filter.OrderDir = "desc"
	}
	var rates []currency.ExchangeRate
	query := applyFilter(
		r.db.WithContext(ctx).Model(&currency.ExchangeRate{}).
			Where("tenant_id = ? AND from_currency = ? AND to_currency = ?", tenantID, from, to),
		filter,
	)
	if err := query.Find(&rates).Error; err != nil {
		return nil, err
	}
	return rates, nil
}

// FindAllForTenant lists all rates for a tenant
func (r *GormExchangeRateRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]currency.ExchangeRate, error) {
	var rates []currency.ExchangeRate
	query := applyFilter(
		r.db.WithContext(ctx).Model(&currency.ExchangeRate{}).
			Where("tenant_id = ?", tenantID),
		filter,
	)
	if err := query.Find(&rates).Error; err != nil {
		return nil, err
	}
	return rates, nil
}

var _ currency.ExchangeRateRepository = (*GormExchangeRateRepository)(nil)
