package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/currency"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared/valueobject"
)

const rateKeyPrefix = "fx:rate:"

// RedisRateCache implements currency.RateCache backed by Redis. Suitable for
// distributed deployments where an invalidation must reach every instance.
// Cache errors are logged, never surfaced; the resolver falls through to the
// repository on a miss.
type RedisRateCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// RedisRateCacheConfig holds Redis connection configuration
type RedisRateCacheConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// NewRedisRateCache creates a Redis-backed rate cache and verifies the connection
func NewRedisRateCache(cfg RedisRateCacheConfig, logger *zap.Logger) (*RedisRateCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RedisRateCache{client: client, ttl: ttl, logger: logger}, nil
}

// NewRedisRateCacheWithClient creates a cache around an existing client.
// Useful for testing or when sharing a client across components.
func NewRedisRateCacheWithClient(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisRateCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisRateCache{client: client, ttl: ttl, logger: logger}
}

// ratePayload is the JSON form a cached lookup is stored in. The resolution
// orientation travels with the rate so a hit converts the same way a fresh
// lookup would.
type ratePayload struct {
	Outcome    string          `json:"outcome"`
	Rate       decimal.Decimal `json:"rate"`
	StoredRate decimal.Decimal `json:"stored_rate"`
}

// Get returns the cached lookup for the key, if present
func (c *RedisRateCache) Get(ctx context.Context, tenantID uuid.UUID, from, to valueobject.Currency, date time.Time) (currency.RateLookup, bool) {
	val, err := c.client.Get(ctx, c.key(tenantID, from, to, date)).Result()
	if err == redis.Nil {
		return currency.RateLookup{}, false
	}
	if err != nil {
		c.logger.Warn("rate cache read failed", zap.Error(err))
		return currency.RateLookup{}, false
	}
	var payload ratePayload
	if err := json.Unmarshal([]byte(val), &payload); err != nil {
		c.logger.Warn("rate cache holds unparsable value", zap.String("value", val))
		return currency.RateLookup{}, false
	}
	return currency.RateLookup{
		Outcome:    currency.LookupOutcome(payload.Outcome),
		Rate:       payload.Rate,
		StoredRate: payload.StoredRate,
	}, true
}

// Set stores the lookup for the key with the configured TTL
func (c *RedisRateCache) Set(ctx context.Context, tenantID uuid.UUID, from, to valueobject.Currency, date time.Time, lookup currency.RateLookup) {
	payload, err := json.Marshal(ratePayload{
		Outcome:    string(lookup.Outcome),
		Rate:       lookup.Rate,
		StoredRate: lookup.StoredRate,
	})
	if err != nil {
		c.logger.Warn("rate cache encode failed", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, c.key(tenantID, from, to, date), payload, c.ttl).Err(); err != nil {
		c.logger.Warn("rate cache write failed", zap.Error(err))
	}
}

// InvalidatePair deletes every cached date for the pair and its inverse
func (c *RedisRateCache) InvalidatePair(ctx context.Context, tenantID uuid.UUID, from, to valueobject.Currency) {
	c.deleteByPattern(ctx, c.pairPattern(tenantID, from, to))
	c.deleteByPattern(ctx, c.pairPattern(tenantID, to, from))
}

// Close closes the underlying Redis client
func (c *RedisRateCache) Close() error {
	return c.client.Close()
}

func (c *RedisRateCache) deleteByPattern(ctx context.Context, pattern string) {
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn("rate cache scan failed", zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("rate cache invalidation failed", zap.Error(err))
	}
}

func (c *RedisRateCache) key(tenantID uuid.UUID, from, to valueobject.Currency, date time.Time) string {
	return fmt.Sprintf("%s%s:%s:%s:%s", rateKeyPrefix, tenantID, from, to, date.Format("2006-01-02"))
}

func (c *RedisRateCache) pairPattern(tenantID uuid.UUID, from, to valueobject.Currency) string {
	return fmt.Sprintf("%s%s:%s:%s:*", rateKeyPrefix, tenantID, from, to)
}
