package cache

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/currency"
	"github.com/Mudegi/YourBookSuit-sub006/internal/infrastructure/config"
)

// NewRateCache builds the rate cache named by the configuration
func NewRateCache(cfg *config.Config, logger *zap.Logger) (currency.RateCache, error) {
	switch cfg.RateCache.Backend {
	case "memory":
		return NewMemoryRateCache(cfg.RateCache.TTL), nil
	case "redis":
		return NewRedisRateCache(RedisRateCacheConfig{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TTL:      cfg.RateCache.TTL,
		}, logger)
	default:
		return nil, fmt.Errorf("unknown rate cache backend %q", cfg.RateCache.Backend)
	}
}
