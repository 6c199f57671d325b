package currency

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/currency"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared/valueobject"
)

type memRateRepo struct {
	rows []*currency.ExchangeRate
}

func (r *memRateRepo) FindLatestOnOrBefore(_ context.Context, tenantID uuid.UUID, from, to valueobject.Currency, date time.Time) (*currency.ExchangeRate, error) {
	var best *currency.ExchangeRate
	for _, row := range r.rows {
		if row.TenantID != tenantID || row.FromCurrency != from || row.ToCurrency != to {
			continue
		}
		if row.EffectiveDate.After(date) {
			continue
		}
		if best == nil || row.EffectiveDate.After(best.EffectiveDate) {
			best = row
		}
	}
	return best, nil
}

func (r *memRateRepo) FindByKey(_ context.Context, tenantID uuid.UUID, from, to valueobject.Currency, effectiveDate time.Time) (*currency.ExchangeRate, error) {
	for _, row := range r.rows {
		if row.TenantID == tenantID && row.FromCurrency == from && row.ToCurrency == to && row.EffectiveDate.Equal(effectiveDate) {
			return row, nil
		}
	}
	return nil, nil
}

func (r *memRateRepo) Upsert(ctx context.Context, rate *currency.ExchangeRate) error {
	existing, _ := r.FindByKey(ctx, rate.TenantID, rate.FromCurrency, rate.ToCurrency, rate.EffectiveDate)
	if existing != nil {
		return existing.Override(rate.Rate, rate.Source)
	}
	r.rows = append(r.rows, rate)
	return nil
}

func (r *memRateRepo) FindByPair(_ context.Context, tenantID uuid.UUID, from, to valueobject.Currency, _ shared.Filter) ([]currency.ExchangeRate, error) {
	out := make([]currency.ExchangeRate, 0)
	for _, row := range r.rows {
		if row.TenantID == tenantID && row.FromCurrency == from && row.ToCurrency == to {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (r *memRateRepo) FindAllForTenant(_ context.Context, tenantID uuid.UUID, _ shared.Filter) ([]currency.ExchangeRate, error) {
	out := make([]currency.ExchangeRate, 0)
	for _, row := range r.rows {
		if row.TenantID == tenantID {
			out = append(out, *row)
		}
	}
	return out, nil
}

type countingCache struct {
	invalidations int
}

func (c *countingCache) Get(context.Context, uuid.UUID, valueobject.Currency, valueobject.Currency, time.Time) (currency.RateLookup, bool) {
	return currency.RateLookup{}, false
}

func (c *countingCache) Set(context.Context, uuid.UUID, valueobject.Currency, valueobject.Currency, time.Time, currency.RateLookup) {
}

func (c *countingCache) InvalidatePair(context.Context, uuid.UUID, valueobject.Currency, valueobject.Currency) {
	c.invalidations++
}

type stubProvider struct {
	rate decimal.Decimal
	err  error
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) FetchRate(context.Context, valueobject.Currency, valueobject.Currency, time.Time) (decimal.Decimal, error) {
	return p.rate, p.err
}

func TestRateServiceSaveRate(t *testing.T) {
	tenantID := uuid.New()
	day := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

	t.Run("save invalidates the pair cache", func(t *testing.T) {
		repo := &memRateRepo{}
		cache := &countingCache{}
		svc := NewRateService(repo, cache, nil, zap.NewNop())

		_, err := svc.SaveRate(context.Background(), tenantID, SaveRateRequest{
			FromCurrency: "USD", ToCurrency: "UGX", EffectiveDate: day, Rate: decimal.NewFromInt(3700),
		})
		require.NoError(t, err)
		assert.Equal(t, 1, cache.invalidations)
	})

	t.Run("saving the same key twice overwrites, not duplicates", func(t *testing.T) {
		repo := &memRateRepo{}
		svc := NewRateService(repo, nil, nil, zap.NewNop())

		_, err := svc.SaveRate(context.Background(), tenantID, SaveRateRequest{
			FromCurrency: "USD", ToCurrency: "UGX", EffectiveDate: day, Rate: decimal.NewFromInt(3700),
		})
		require.NoError(t, err)
		_, err = svc.SaveRate(context.Background(), tenantID, SaveRateRequest{
			FromCurrency: "USD", ToCurrency: "UGX", EffectiveDate: day, Rate: decimal.NewFromInt(3750),
		})
		require.NoError(t, err)

		require.Len(t, repo.rows, 1)
		assert.True(t, repo.rows[0].Rate.Equal(decimal.NewFromInt(3750)))
	})

	t.Run("rejects identical pair", func(t *testing.T) {
		svc := NewRateService(&memRateRepo{}, nil, nil, zap.NewNop())
		_, err := svc.SaveRate(context.Background(), tenantID, SaveRateRequest{
			FromCurrency: "USD", ToCurrency: "USD", EffectiveDate: day, Rate: decimal.NewFromInt(1),
		})
		assert.Error(t, err)
	})
}

func TestRateServiceLookup(t *testing.T) {
	tenantID := uuid.New()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	repo := &memRateRepo{}
	svc := NewRateService(repo, nil, nil, zap.NewNop())

	_, err := svc.SaveRate(context.Background(), tenantID, SaveRateRequest{
		FromCurrency: "USD", ToCurrency: "UGX", EffectiveDate: day, Rate: decimal.NewFromInt(3700),
	})
	require.NoError(t, err)

	t.Run("direct lookup", func(t *testing.T) {
		resp, err := svc.Lookup(context.Background(), tenantID, LookupRateRequest{
			FromCurrency: "USD", ToCurrency: "UGX", AsOf: day.AddDate(0, 0, 5),
		})
		require.NoError(t, err)
		assert.Equal(t, "FOUND", resp.Outcome)
		assert.True(t, resp.Rate.Equal(decimal.NewFromInt(3700)))
	})

	t.Run("inverse lookup is tagged", func(t *testing.T) {
		resp, err := svc.Lookup(context.Background(), tenantID, LookupRateRequest{
			FromCurrency: "UGX", ToCurrency: "USD", AsOf: day,
		})
		require.NoError(t, err)
		assert.Equal(t, "FOUND_INVERSE", resp.Outcome)
	})

	t.Run("convert rounds to monetary precision", func(t *testing.T) {
		resp, err := svc.Convert(context.Background(), tenantID, ConvertRequest{
			Amount: decimal.NewFromFloat(10.5), FromCurrency: "USD", ToCurrency: "UGX", AsOf: day,
		})
		require.NoError(t, err)
		assert.True(t, resp.Converted.Equal(decimal.NewFromInt(38850)))
	})

	t.Run("inverse conversion divides by the stored rate", func(t *testing.T) {
		resp, err := svc.Convert(context.Background(), tenantID, ConvertRequest{
			Amount: decimal.NewFromInt(37000), FromCurrency: "UGX", ToCurrency: "USD", AsOf: day,
		})
		require.NoError(t, err)
		assert.True(t, resp.Converted.Equal(decimal.NewFromInt(10)),
			"37000 UGX back through the stored 3700 rate is exactly 10 USD, got %s", resp.Converted)
	})

	t.Run("missing rate is reported, never guessed", func(t *testing.T) {
		_, err := svc.Lookup(context.Background(), tenantID, LookupRateRequest{
			FromCurrency: "EUR", ToCurrency: "KES", AsOf: day,
		})
		assert.ErrorIs(t, err, shared.ErrRateNotFound)
	})
}

func TestRateServiceFetchAndSave(t *testing.T) {
	tenantID := uuid.New()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("stores the fetched rate under the provider source", func(t *testing.T) {
		repo := &memRateRepo{}
		svc := NewRateService(repo, nil, &stubProvider{rate: decimal.NewFromFloat(3712.55)}, zap.NewNop())

		resp, err := svc.FetchAndSave(context.Background(), tenantID, "USD", "UGX", day)
		require.NoError(t, err)
		assert.Equal(t, "PROVIDER", resp.Source)
		require.Len(t, repo.rows, 1)
	})

	t.Run("provider failure surfaces and stores nothing", func(t *testing.T) {
		repo := &memRateRepo{}
		svc := NewRateService(repo, nil, &stubProvider{err: errors.New("feed down")}, zap.NewNop())

		_, err := svc.FetchAndSave(context.Background(), tenantID, "USD", "UGX", day)
		assert.Error(t, err)
		assert.Empty(t, repo.rows)
	})

	t.Run("no provider configured", func(t *testing.T) {
		svc := NewRateService(&memRateRepo{}, nil, nil, zap.NewNop())
		_, err := svc.FetchAndSave(context.Background(), tenantID, "USD", "UGX", day)
		assert.Error(t, err)
	})
}
