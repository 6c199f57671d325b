package currency

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared/valueobject"
)

// RateSource identifies where a stored exchange rate came from
type RateSource string

const (
	RateSourceManual   RateSource = "MANUAL"
	RateSourceProvider RateSource = "PROVIDER"
	RateSourceImport   RateSource = "IMPORT"
)

// IsValid checks if the rate source is valid
func (s RateSource) IsValid() bool {
	switch s {
	case RateSourceManual, RateSourceProvider, RateSourceImport:
		return true
	}
	return false
}

// ExchangeRate is a date-effective conversion rate between two currencies.
// A rate applies from its effective date until superseded by a later row for
// the same pair. Historical rates are only changed via explicit manual
// override, recorded on the row itself.
type ExchangeRate struct {
	shared.TenantAggregateRoot
	FromCurrency     valueobject.Currency `gorm:"type:varchar(3);not null;uniqueIndex:idx_rate_tenant_pair_date,priority:2"`
	ToCurrency       valueobject.Currency `gorm:"type:varchar(3);not null;uniqueIndex:idx_rate_tenant_pair_date,priority:3"`
	EffectiveDate    time.Time            `gorm:"type:date;not null;uniqueIndex:idx_rate_tenant_pair_date,priority:4"`
	Rate             decimal.Decimal      `gorm:"type:decimal(18,8);not null"`
	Source           RateSource           `gorm:"type:varchar(20);not null"`
	IsManualOverride bool                 `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (ExchangeRate) TableName() string {
	return "exchange_rates"
}

// NewExchangeRate creates a new exchange rate row
func NewExchangeRate(tenantID uuid.UUID, from, to valueobject.Currency, effectiveDate time.Time, rate decimal.Decimal, source RateSource) (*ExchangeRate, error) {
	if !from.IsValid() || !to.IsValid() {
		return nil, shared.NewDomainError("INVALID_CURRENCY", "Unknown currency code")
	}
	if from == to {
		return nil, shared.NewDomainError("INVALID_PAIR", "From and to currencies must differ")
	}
	if !rate.IsPositive() {
		return nil, shared.NewDomainError("INVALID_RATE", "Exchange rate must be positive")
	}
	if !source.IsValid() {
		return nil, shared.NewDomainError("INVALID_SOURCE", "Unknown rate source")
	}

	return &ExchangeRate{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		FromCurrency:        from,
		ToCurrency:          to,
		EffectiveDate:       truncateToDay(effectiveDate),
		Rate:                rate,
		Source:              source,
		IsManualOverride:    source == RateSourceManual,
	}, nil
}

// Override replaces the stored rate value, marking the row as manually
// overridden. Used when the same (pair, date) key is saved again.
func (r *ExchangeRate) Override(rate decimal.Decimal, source RateSource) error {
	if !rate.IsPositive() {
		return shared.NewDomainError("INVALID_RATE", "Exchange rate must be positive")
	}
	r.Rate = rate
	r.Source = source
	r.IsManualOverride = source == RateSourceManual
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}

// Inverse returns the reciprocal of the stored rate at decimal division
// precision. This is a reporting value; conversions resolved through the
// inverse pair divide by the stored rate so they stay exact.
func (r *ExchangeRate) Inverse() decimal.Decimal {
	return decimal.NewFromInt(1).Div(r.Rate)
}

// truncateToDay normalizes a timestamp to midnight UTC. Rates are date-scoped,
// never instantaneous.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
