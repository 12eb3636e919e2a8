package middleware

import (
	"sync"
	"time"
)

const defaultIdempotencyCapacity = 10000

// cachedResponse is a replayable HTTP response.
type cachedResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
	storedAt    time.Time
}

// IdempotencyCache keeps responses for a TTL, holding at most capacity entries.
// When full, the oldest entry is evicted.
type IdempotencyCache struct {
	mu       sync.Mutex
	items    map[string]*cachedResponse
	order    []string
	ttl      time.Duration
	capacity int
	now      func() time.Time
	stopCh   chan struct{}
	once     sync.Once
}

// NewIdempotencyCache creates a cache and starts its cleanup loop. Call Stop to end it.
func NewIdempotencyCache(ttl time.Duration, capacity int) *IdempotencyCache {
	if capacity <= 0 {
		capacity = defaultIdempotencyCapacity
	}
	c := &IdempotencyCache{
		items:    make(map[string]*cachedResponse),
		ttl:      ttl,
		capacity: capacity,
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}
	go c.cleanupLoop()
	return c
}

// Get returns a live cached response.
func (c *IdempotencyCache) Get(key string) (*cachedResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	resp, ok := c.items[key]
	if !ok || c.now().Sub(resp.storedAt) > c.ttl {
		return nil, false
	}
	return resp, true
}

// Set stores resp under key.
func (c *IdempotencyCache) Set(key string, resp *cachedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	resp.storedAt = c.now()
	if _, exists := c.items[key]; !exists {
		c.order = append(c.order, key)
	}
	c.items[key] = resp

	for len(c.items) > c.capacity && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.items, oldest)
	}
}

// Len returns the number of stored entries, expired ones included.
func (c *IdempotencyCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Stop ends the cleanup loop. It is safe to call twice.
func (c *IdempotencyCache) Stop() {
	c.once.Do(func() { close(c.stopCh) })
}

func (c *IdempotencyCache) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopCh:
			return
		}
	}
}

func (c *IdempotencyCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	kept := c.order[:0]
	for _, key := range c.order {
		resp, ok := c.items[key]
		if !ok {
			continue
		}
		if now.Sub(resp.storedAt) > c.ttl {
			delete(c.items, key)
			continue
		}
		kept = append(kept, key)
	}
	c.order = kept
}
