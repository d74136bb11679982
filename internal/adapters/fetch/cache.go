package fetch

import (
	"context"
	"sync"
	"time"

	"github.com/medalpool/podium/internal/domain/medals"
	"github.com/medalpool/podium/pkg/logger"
	"github.com/medalpool/podium/pkg/metrics"
)

const defaultTTL = 10 * time.Minute

// Source produces a fresh snapshot. It returns an error on fetch or parse
// failure; the cache decides what to serve in that case.
type Source func(ctx context.Context) (*medals.Snapshot, error)

// Cache is the snapshot TTL cache. Lookups within the TTL are answered from
// memory; an expired entry triggers a refresh, and a failed refresh fails
// open to the previous snapshot rather than propagating the error. Concurrent
// callers share a single in-flight refresh.
type Cache struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	source Source
	log    logger.Logger

	snap      *medals.Snapshot
	fetchedAt time.Time
}

// CacheOption applies a configuration option to the Cache.
type CacheOption func(*Cache)

// WithTTL sets the snapshot lifetime.
func WithTTL(ttl time.Duration) CacheOption {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock replaces the time source, for tests.
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// WithCacheLogger sets a custom logger.
func WithCacheLogger(log logger.Logger) CacheOption {
	return func(c *Cache) {
		if log != nil {
			c.log = log
		}
	}
}

// NewCache creates a Cache over the given source.
func NewCache(source Source, opts ...CacheOption) *Cache {
	c := &Cache{
		ttl:    defaultTTL,
		now:    time.Now,
		source: source,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the current snapshot, refreshing it when expired. The result
// is nil only when no fetch has ever succeeded; callers must treat nil as
// "no data yet".
func (c *Cache) Get(ctx context.Context) *medals.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	age := c.now().Sub(c.fetchedAt)
	if c.snap != nil && age < c.ttl {
		metrics.RecordCacheHit()
		metrics.UpdateSnapshotAge(age.Seconds())
		return c.snap
	}

	metrics.RecordCacheMiss()
	snap, err := c.source(ctx)
	if err != nil {
		if c.snap != nil {
			metrics.RecordCacheStaleServe()
			if c.log != nil {
				c.log.Warn(ctx, "snapshot refresh failed; serving stale",
					logger.Duration("age", age),
					logger.Error(err),
				)
			}
		} else if c.log != nil {
			c.log.Warn(ctx, "snapshot refresh failed; no data yet", logger.Error(err))
		}
		return c.snap
	}

	c.snap = snap
	c.fetchedAt = c.now()
	metrics.UpdateSnapshotAge(0)
	return c.snap
}

// Refresh forces a fetch regardless of TTL. A failed refresh keeps the
// previous snapshot.
func (c *Cache) Refresh(ctx context.Context) error {
	snap, err := c.source(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.snap = snap
	c.fetchedAt = c.now()
	c.mu.Unlock()
	metrics.UpdateSnapshotAge(0)
	return nil
}

// Invalidate drops the cached snapshot so the next Get refetches.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.snap = nil
	c.fetchedAt = time.Time{}
	c.mu.Unlock()
}

// Age returns how old the cached snapshot is, and false when empty.
func (c *Cache) Age() (time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.snap == nil {
		return 0, false
	}
	return c.now().Sub(c.fetchedAt), true
}
