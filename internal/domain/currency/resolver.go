package currency

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared/valueobject"
)

// LookupOutcome tags how a rate was resolved. The inverse-pair fallback is a
// business rule, not error recovery, so it is reported explicitly instead of
// being hidden behind a retry.
type LookupOutcome string

const (
	LookupFound        LookupOutcome = "FOUND"
	LookupFoundInverse LookupOutcome = "FOUND_INVERSE"
	LookupNotFound     LookupOutcome = "NOT_FOUND"
)

// RateLookup is the tagged result of a rate resolution. Rate is the
// multiplier for the requested direction; StoredRate is the figure as
// persisted, which for an inverse resolution belongs to the opposite
// orientation. Conversions go through Apply so both directions derive from
// the same stored figure instead of a truncated reciprocal.
type RateLookup struct {
	Outcome    LookupOutcome
	Rate       decimal.Decimal
	StoredRate decimal.Decimal
}

// Apply converts an amount using the lookup, rounded to the monetary
// precision. Inverse resolutions divide by the stored rate, so converting
// A→B and then B→A off one stored row round-trips exactly.
func (l RateLookup) Apply(amount decimal.Decimal) decimal.Decimal {
	if l.Outcome == LookupFoundInverse {
		return amount.DivRound(l.StoredRate, valueobject.MoneyPlaces)
	}
	return amount.Mul(l.StoredRate).Round(valueobject.MoneyPlaces)
}

// RateCache caches resolved lookups per (tenant, from, to, date) for a
// bounded time. The whole lookup is cached, not just the rate, so a hit
// preserves the resolution orientation. Implementations are injected; the
// resolver never keeps process-global state of its own.
type RateCache interface {
	// Get returns the cached lookup and true if present and not expired
	Get(ctx context.Context, tenantID uuid.UUID, from, to valueobject.Currency, date time.Time) (RateLookup, bool)

	// Set stores a resolved lookup with the cache's configured TTL
	Set(ctx context.Context, tenantID uuid.UUID, from, to valueobject.Currency, date time.Time, lookup RateLookup)

	// InvalidatePair drops every cached entry for the pair, in both
	// orientations. Called whenever a rate for the pair is saved.
	InvalidatePair(ctx context.Context, tenantID uuid.UUID, from, to valueobject.Currency)
}

// Resolver resolves conversion rates between currencies as of a date.
//
// Resolution order: same currency returns exactly 1 with no lookup; otherwise
// the most recent stored rate with effectiveDate on or before the requested
// date; otherwise the multiplicative inverse of the opposite pair; otherwise
// ErrRateNotFound. A rate is never guessed.
type Resolver struct {
	rates ExchangeRateRepository
	cache RateCache
}

// NewResolver creates a new rate Resolver
func NewResolver(rates ExchangeRateRepository, cache RateCache) *Resolver {
	return &Resolver{rates: rates, cache: cache}
}

// Lookup resolves the rate and reports how it was found
func (r *Resolver) Lookup(ctx context.Context, tenantID uuid.UUID, from, to valueobject.Currency, asOf time.Time) (RateLookup, error) {
	if !from.IsValid() || !to.IsValid() {
		return RateLookup{Outcome: LookupNotFound}, shared.NewDomainError("INVALID_CURRENCY", "Unknown currency code")
	}
	if from == to {
		one := decimal.NewFromInt(1)
		return RateLookup{Outcome: LookupFound, Rate: one, StoredRate: one}, nil
	}

	day := truncateToDay(asOf)

	if r.cache != nil {
		if lookup, ok := r.cache.Get(ctx, tenantID, from, to, day); ok {
			return lookup, nil
		}
	}

	direct, err := r.rates.FindLatestOnOrBefore(ctx, tenantID, from, to, day)
	if err != nil {
		return RateLookup{Outcome: LookupNotFound}, err
	}
	if direct != nil {
		lookup := RateLookup{Outcome: LookupFound, Rate: direct.Rate, StoredRate: direct.Rate}
		r.cacheLookup(ctx, tenantID, from, to, day, lookup)
		return lookup, nil
	}

	inverse, err := r.rates.FindLatestOnOrBefore(ctx, tenantID, to, from, day)
	if err != nil {
		return RateLookup{Outcome: LookupNotFound}, err
	}
	if inverse != nil {
		lookup := RateLookup{Outcome: LookupFoundInverse, Rate: inverse.Inverse(), StoredRate: inverse.Rate}
		r.cacheLookup(ctx, tenantID, from, to, day, lookup)
		return lookup, nil
	}

	return RateLookup{Outcome: LookupNotFound}, shared.ErrRateNotFound
}

// Rate resolves the conversion rate for the pair as of the date
func (r *Resolver) Rate(ctx context.Context, tenantID uuid.UUID, from, to valueobject.Currency, asOf time.Time) (decimal.Decimal, error) {
	lookup, err := r.Lookup(ctx, tenantID, from, to, asOf)
	if err != nil {
		return decimal.Zero, err
	}
	return lookup.Rate, nil
}

// Convert converts an amount between currencies as of the date, rounded to the
// monetary precision
func (r *Resolver) Convert(ctx context.Context, tenantID uuid.UUID, amount decimal.Decimal, from, to valueobject.Currency, asOf time.Time) (decimal.Decimal, error) {
	lookup, err := r.Lookup(ctx, tenantID, from, to, asOf)
	if err != nil {
		return decimal.Zero, err
	}
	return lookup.Apply(amount), nil
}

func (r *Resolver) cacheLookup(ctx context.Context, tenantID uuid.UUID, from, to valueobject.Currency, day time.Time, lookup RateLookup) {
	if r.cache != nil {
		r.cache.Set(ctx, tenantID, from, to, day, lookup)
	}
}
