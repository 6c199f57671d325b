package currency

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared/valueobject"
)

// ExchangeRateRepository defines the interface for exchange rate persistence
type ExchangeRateRepository interface {
	// FindLatestOnOrBefore finds the most recent rate for the exact pair with
	// effectiveDate <= date. Returns (nil, nil) when no such row exists; the
	// caller decides whether that is an error.
	FindLatestOnOrBefore(ctx context.Context, tenantID uuid.UUID, from, to valueobject.Currency, date time.Time) (*ExchangeRate, error)

	// FindByKey finds the rate row for the exact (pair, effectiveDate) key.
	// Returns (nil, nil) when absent.
	FindByKey(ctx context.Context, tenantID uuid.UUID, from, to valueobject.Currency, effectiveDate time.Time) (*ExchangeRate, error)

	// Upsert creates the rate row or overwrites the value for an existing
	// (tenant, from, to, effectiveDate) key. Never produces duplicate rows
	// for the same key, even under concurrent saves.
	Upsert(ctx context.Context, rate *ExchangeRate) error

	// FindByPair lists stored rates for a pair, newest first
	FindByPair(ctx context.Context, tenantID uuid.UUID, from, to valueobject.Currency, filter shared.Filter) ([]ExchangeRate, error)

	// FindAllForTenant lists stored rates for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]ExchangeRate, error)
}

// RateProvider is the contract an external rate feed must satisfy: return a
// single numeric rate for the pair on the date, or fail. Fetching is always
// explicitly triggered, never a background loop, and the provider never
// persists anything itself.
type RateProvider interface {
	// Name identifies the provider in stored rows and logs
	Name() string

	// FetchRate retrieves the rate for one pair on one date
	FetchRate(ctx context.Context, from, to valueobject.Currency, date time.Time) (decimal.Decimal, error)
}
