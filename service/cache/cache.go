package cache

import (
	"sync"
	"time"
)

// Entry pairs a cached value with the time it was stored
type Entry[T any] struct {
	Value     T
	Timestamp time.Time
}

// Cache is a keyed TTL cache. Expired entries are recomputed by callers on
// the next access; there is no background refresh and no request dedup, so
// concurrent callers racing past an expired entry each refetch.
type Cache[T any] struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]Entry[T]
}

func New[T any](ttl time.Duration) *Cache[T] {
	return NewWithClock[T](ttl, time.Now)
}

// NewWithClock injects the clock, so TTL expiry is testable
func NewWithClock[T any](ttl time.Duration, now func() time.Time) *Cache[T] {
	return &Cache[T]{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]Entry[T]),
	}
}

// Get returns the entry under key while it is still fresh. An entry is fresh
// strictly while now-timestamp < TTL.
func (c *Cache[T]) Get(key string) (Entry[T], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok || c.now().Sub(entry.Timestamp) >= c.ttl {
		return Entry[T]{}, false
	}
	return entry, true
}

// Peek returns the entry under key regardless of freshness
func (c *Cache[T]) Peek(key string) (Entry[T], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	return entry, ok
}

// Put stores value under key stamped with the current time
func (c *Cache[T]) Put(key string, value T) Entry[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := Entry[T]{Value: value, Timestamp: c.now()}
	c.entries[key] = entry
	return entry
}
