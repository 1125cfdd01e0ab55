package cache

import (
	"container/list"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrInvalidConfig is returned by New when the configured bounds are not
// positive.
var ErrInvalidConfig = errors.New("invalid cache configuration")

// Config holds the cache bounds.
type Config struct {
	// MaxEntries is the maximum number of entries held at once.
	MaxEntries int

	// MaxAge is how long an entry stays servable after it was stored.
	MaxAge time.Duration
}

// DefaultConfig returns the default bounds: 30 entries, one hour.
func DefaultConfig() Config {
	return Config{
		MaxEntries: 30,
		MaxAge:     time.Hour,
	}
}

// Cache is a bounded LRU result cache with time-based expiry.
type Cache struct {
	mu         sync.Mutex
	maxEntries int
	maxAge     time.Duration
	ll         *list.List
	items      map[string]*list.Element
	now        func() time.Time
}

// entry is the list payload. The front of the list is most recently used;
// the back is the eviction victim. Ties between equally old entries
// resolve to insertion order because new entries are always pushed to the
// front.
type entry struct {
	key       string
	payload   string
	createdAt time.Time
}

// New creates a cache with the given bounds. Both bounds must be positive.
func New(config Config) (*Cache, error) {
	if config.MaxEntries <= 0 {
		return nil, fmt.Errorf("%w: MaxEntries must be positive, got %d", ErrInvalidConfig, config.MaxEntries)
	}
	if config.MaxAge <= 0 {
		return nil, fmt.Errorf("%w: MaxAge must be positive, got %v", ErrInvalidConfig, config.MaxAge)
	}
	return &Cache{
		maxEntries: config.MaxEntries,
		maxAge:     config.MaxAge,
		ll:         list.New(),
		items:      make(map[string]*list.Element),
		now:        time.Now,
	}, nil
}

// Get returns the payload stored for (document, operation, params), if
// any. An entry older than MaxAge is evicted during the lookup and
// reported as absent. A live hit promotes the entry to most recently
// used. The payload is returned unchanged, byte-for-byte.
func (c *Cache) Get(document, operation string, params map[string]any) (string, bool) {
	key := Key(document, operation, params)

	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return "", false
	}
	ent := el.Value.(*entry)
	if c.now().Sub(ent.createdAt) >= c.maxAge {
		c.removeElement(el)
		return "", false
	}
	c.ll.MoveToFront(el)
	return ent.payload, true
}

// Set stores payload for (document, operation, params) with the current
// timestamp, at most-recently-used position. Overwriting an existing key
// refreshes its timestamp and does not count as growth. When an insert
// would exceed MaxEntries, the least-recently-used entry is evicted
// first.
func (c *Cache) Set(document, operation string, params map[string]any, payload string) {
	key := Key(document, operation, params)

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		ent := el.Value.(*entry)
		ent.payload = payload
		ent.createdAt = c.now()
		c.ll.MoveToFront(el)
		return
	}

	if c.ll.Len() >= c.maxEntries {
		c.removeElement(c.ll.Back())
	}
	c.items[key] = c.ll.PushFront(&entry{
		key:       key,
		payload:   payload,
		createdAt: c.now(),
	})
}

// Len reports the number of entries currently held, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// Purge drops every entry.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ll.Init()
	c.items = make(map[string]*list.Element)
}

// RemoveExpired drops every entry older than MaxAge and reports how many
// were removed. Expiry is already enforced lazily by Get; this is an
// optional sweep for callers that want memory back sooner.
func (c *Cache) RemoveExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for el := c.ll.Back(); el != nil; {
		prev := el.Prev()
		if now.Sub(el.Value.(*entry).createdAt) >= c.maxAge {
			c.removeElement(el)
			removed++
		}
		el = prev
	}
	return removed
}

// removeElement must be called with the lock held.
func (c *Cache) removeElement(el *list.Element) {
	if el == nil {
		return
	}
	c.ll.Remove(el)
	delete(c.items, el.Value.(*entry).key)
}
