package server

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/mweiss/ligaledger"
)

// OverviewCache holds computed league overviews for a short time so that a
// burst of page loads does not replay the season once per request.
// Concurrent misses for the same key are collapsed into a single
// computation; the cache is safe for concurrent use.
type OverviewCache struct {
	ttl   time.Duration
	clock func() time.Time // injectable for tests

	group singleflight.Group

	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	overview *ligaledger.Overview
	expires  time.Time
}

// NewOverviewCache creates a cache with the given entry lifetime. A zero or
// negative ttl disables caching: every call recomputes.
func NewOverviewCache(ttl time.Duration) *OverviewCache {
	return &OverviewCache{
		ttl:     ttl,
		clock:   time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// Get returns the cached overview for key, or computes it via build. Only
// one build runs per key at a time; concurrent callers share its result.
// Errors are never cached.
func (c *OverviewCache) Get(key string, build func() (*ligaledger.Overview, error)) (*ligaledger.Overview, error) {
	if c.ttl <= 0 {
		return build()
	}

	if out, ok := c.lookup(key); ok {
		return out, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// Re-check: another caller may have populated the entry between
		// the lookup above and acquiring the flight.
		if out, ok := c.lookup(key); ok {
			return out, nil
		}
		out, err := build()
		if err != nil {
			return nil, err
		}
		c.store(key, out)
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*ligaledger.Overview), nil
}

// Invalidate drops the entry for key, forcing the next Get to recompute.
func (c *OverviewCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

func (c *OverviewCache) lookup(key string) (*ligaledger.Overview, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || c.clock().After(e.expires) {
		return nil, false
	}
	return e.overview, true
}

func (c *OverviewCache) store(key string, out *ligaledger.Overview) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{overview: out, expires: c.clock().Add(c.ttl)}
}
