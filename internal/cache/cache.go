package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

// FetchFunc loads a value for a key from the backend.
type FetchFunc func(ctx context.Context) (any, error)

type entry struct {
	value   any
	fetched time.Time
}

type pending struct {
	done  chan struct{}
	value any
	err   error
}

// Cache is a read-through cache keyed by resource identity. Concurrent
// reads of one key coalesce onto a single in-flight fetch; writes to a
// logical resource invalidate it so the next read refetches. A zero TTL
// means entries never expire on their own.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry
	flights map[string]*pending

	now func() time.Time // test hook
}

// New builds a cache with the given entry TTL.
func New(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]entry),
		flights: make(map[string]*pending),
		now:     time.Now,
	}
}

// Get returns the cached value for key, fetching it when absent or
// stale. Only one fetch per key is in flight at a time; latecomers wait
// for its result instead of issuing their own request. Fetch errors are
// not cached.
func (c *Cache) Get(ctx context.Context, key string, fetch FetchFunc) (any, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && !c.expired(e) {
		c.mu.Unlock()
		return e.value, nil
	}
	if p, ok := c.flights[key]; ok {
		c.mu.Unlock()
		select {
		case <-p.done:
			if p.err != nil {
				return nil, p.err
			}
			return p.value, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	p := &pending{done: make(chan struct{})}
	c.flights[key] = p
	c.mu.Unlock()

	p.value, p.err = fetch(ctx)

	c.mu.Lock()
	delete(c.flights, key)
	if p.err == nil {
		c.entries[key] = entry{value: p.value, fetched: c.now()}
	}
	c.mu.Unlock()
	close(p.done)

	if p.err != nil {
		return nil, p.err
	}
	return p.value, nil
}

// Invalidate marks a key stale so the next Get refetches.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// InvalidatePrefix marks every key under a resource prefix stale.
func (c *Cache) InvalidatePrefix(prefix string) {
	c.mu.Lock()
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
	c.mu.Unlock()
}

func (c *Cache) expired(e entry) bool {
	if c.ttl <= 0 {
		return false
	}
	return c.now().Sub(e.fetched) > c.ttl
}
