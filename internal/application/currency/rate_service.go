package currency

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/currency"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared/valueobject"
)

// RateService manages stored exchange rates and resolves conversion rates.
// Saving a rate is idempotent on the (pair, effective date) key and always
// invalidates the cache for the pair so stale resolutions cannot survive an
// override.
type RateService struct {
	rates    currency.ExchangeRateRepository
	cache    currency.RateCache
	resolver *currency.Resolver
	provider currency.RateProvider
	logger   *zap.Logger
}

// NewRateService creates a new RateService. The provider may be nil when no
// external rate feed is configured.
func NewRateService(rates currency.ExchangeRateRepository, cache currency.RateCache, provider currency.RateProvider, logger *zap.Logger) *RateService {
	return &RateService{
		rates:    rates,
		cache:    cache,
		resolver: currency.NewResolver(rates, cache),
		provider: provider,
		logger:   logger,
	}
}

// Resolver exposes the underlying domain resolver for callers that need raw
// lookups (e.g. the receiving flow).
func (s *RateService) Resolver() *currency.Resolver {
	return s.resolver
}

// SaveRate stores a rate for the pair and date, overwriting any existing row
// for the same key
func (s *RateService) SaveRate(ctx context.Context, tenantID uuid.UUID, req SaveRateRequest) (*RateResponse, error) {
	from, err := valueobject.ParseCurrency(req.FromCurrency)
	if err != nil {
		return nil, err
	}
	to, err := valueobject.ParseCurrency(req.ToCurrency)
	if err != nil {
		return nil, err
	}

	source := currency.RateSource(req.Source)
	if req.Source == "" {
		source = currency.RateSourceManual
	}

	rate, err := currency.NewExchangeRate(tenantID, from, to, req.EffectiveDate, req.Rate, source)
	if err != nil {
		return nil, err
	}

	if err := s.rates.Upsert(ctx, rate); err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.InvalidatePair(ctx, tenantID, from, to)
	}

	s.logger.Info("exchange rate saved",
		zap.String("tenant_id", tenantID.String()),
		zap.String("pair", from.String()+"/"+to.String()),
		zap.Time("effective_date", rate.EffectiveDate),
		zap.String("rate", rate.Rate.String()))

	response := ToRateResponse(rate)
	return &response, nil
}

// Lookup resolves the rate for a pair as of a date, reporting whether it was
// found directly, derived from the inverse pair, or not found at all
func (s *RateService) Lookup(ctx context.Context, tenantID uuid.UUID, req LookupRateRequest) (*LookupResponse, error) {
	from, err := valueobject.ParseCurrency(req.FromCurrency)
	if err != nil {
		return nil, err
	}
	to, err := valueobject.ParseCurrency(req.ToCurrency)
	if err != nil {
		return nil, err
	}
	asOf := req.AsOf
	if asOf.IsZero() {
		asOf = time.Now()
	}

	lookup, err := s.resolver.Lookup(ctx, tenantID, from, to, asOf)
	if err != nil {
		return nil, err
	}

	return &LookupResponse{
		FromCurrency: from.String(),
		ToCurrency:   to.String(),
		AsOf:         asOf,
		Outcome:      string(lookup.Outcome),
		Rate:         lookup.Rate,
	}, nil
}

// Convert converts an amount between currencies as of a date
func (s *RateService) Convert(ctx context.Context, tenantID uuid.UUID, req ConvertRequest) (*ConvertResponse, error) {
	from, err := valueobject.ParseCurrency(req.FromCurrency)
	if err != nil {
		return nil, err
	}
	to, err := valueobject.ParseCurrency(req.ToCurrency)
	if err != nil {
		return nil, err
	}
	asOf := req.AsOf
	if asOf.IsZero() {
		asOf = time.Now()
	}

	lookup, err := s.resolver.Lookup(ctx, tenantID, from, to, asOf)
	if err != nil {
		return nil, err
	}

	return &ConvertResponse{
		Amount:       req.Amount,
		FromCurrency: from.String(),
		ToCurrency:   to.String(),
		Rate:         lookup.Rate,
		Converted:    lookup.Apply(req.Amount),
	}, nil
}

// FetchAndSave pulls the rate for a pair and date from the configured provider
// and stores it. Fetching is always an explicit call, never a background loop.
func (s *RateService) FetchAndSave(ctx context.Context, tenantID uuid.UUID, fromCode, toCode string, date time.Time) (*RateResponse, error) {
	if s.provider == nil {
		return nil, shared.NewDomainError("NO_PROVIDER", "No exchange rate provider configured")
	}

	from, err := valueobject.ParseCurrency(fromCode)
	if err != nil {
		return nil, err
	}
	to, err := valueobject.ParseCurrency(toCode)
	if err != nil {
		return nil, err
	}

	value, err := s.provider.FetchRate(ctx, from, to, date)
	if err != nil {
		s.logger.Warn("rate provider fetch failed",
			zap.String("provider", s.provider.Name()),
			zap.String("pair", from.String()+"/"+to.String()),
			zap.Error(err))
		return nil, err
	}

	return s.SaveRate(ctx, tenantID, SaveRateRequest{
		FromCurrency:  fromCode,
		ToCurrency:    toCode,
		EffectiveDate: date,
		Rate:          value,
		Source:        string(currency.RateSourceProvider),
	})
}

// List returns stored rates for a tenant
func (s *RateService) List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]RateResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	rates, err := s.rates.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]RateResponse, 0, len(rates))
	for i := range rates {
		responses = append(responses, ToRateResponse(&rates[i]))
	}
	return responses, nil
}
