package cache

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/currency"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared/valueobject"
)

const defaultCleanupInterval = 30 * time.Second

// MemoryRateCache implements currency.RateCache using in-process storage.
// Suitable for single-instance deployments; multi-instance setups should use
// RedisRateCache so an invalidation reaches every node.
type MemoryRateCache struct {
	entries sync.Map // map[string]*rateEntry
	ttl     time.Duration
	stopCh  chan struct{}
	stopped int32
}

type rateEntry struct {
	lookup    currency.RateLookup
	expiresAt time.Time
}

func (e *rateEntry) isExpired() bool {
	return time.Now().After(e.expiresAt)
}

// NewMemoryRateCache creates an in-memory rate cache with the given TTL
func NewMemoryRateCache(ttl time.Duration) *MemoryRateCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	c := &MemoryRateCache{
		ttl:    ttl,
		stopCh: make(chan struct{}),
	}
	go c.cleanupExpired()
	return c
}

// Get returns the cached lookup for the key, if present and not expired
func (c *MemoryRateCache) Get(_ context.Context, tenantID uuid.UUID, from, to valueobject.Currency, date time.Time) (currency.RateLookup, bool) {
	v, ok := c.entries.Load(rateKey(tenantID, from, to, date))
	if !ok {
		return currency.RateLookup{}, false
	}
	entry := v.(*rateEntry)
	if entry.isExpired() {
		c.entries.Delete(rateKey(tenantID, from, to, date))
		return currency.RateLookup{}, false
	}
	return entry.lookup, true
}

// Set stores the lookup for the key
func (c *MemoryRateCache) Set(_ context.Context, tenantID uuid.UUID, from, to valueobject.Currency, date time.Time, lookup currency.RateLookup) {
	c.entries.Store(rateKey(tenantID, from, to, date), &rateEntry{
		lookup:    lookup,
		expiresAt: time.Now().Add(c.ttl),
	})
}

// InvalidatePair drops every cached date for the pair and its inverse. Both
// directions go because an inverse-derived rate becomes stale when either
// side of the pair changes.
func (c *MemoryRateCache) InvalidatePair(_ context.Context, tenantID uuid.UUID, from, to valueobject.Currency) {
	direct := pairPrefix(tenantID, from, to)
	inverse := pairPrefix(tenantID, to, from)
	c.entries.Range(func(key, _ any) bool {
		k := key.(string)
		if strings.HasPrefix(k, direct) || strings.HasPrefix(k, inverse) {
			c.entries.Delete(key)
		}
		return true
	})
}

// Stop terminates the background cleanup goroutine
func (c *MemoryRateCache) Stop() {
	if atomic.CompareAndSwapInt32(&c.stopped, 0, 1) {
		close(c.stopCh)
	}
}

func (c *MemoryRateCache) cleanupExpired() {
	ticker := time.NewTicker(defaultCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.entries.Range(func(key, value any) bool {
				if value.(*rateEntry).isExpired() {
					c.entries.Delete(key)
				}
				return true
			})
		}
	}
}

func rateKey(tenantID uuid.UUID, from, to valueobject.Currency, date time.Time) string {
	return pairPrefix(tenantID, from, to) + date.Format("2006-01-02")
}

func pairPrefix(tenantID uuid.UUID, from, to valueobject.Currency) string {
	return tenantID.String() + ":" + from.String() + ":" + to.String() + ":"
}
