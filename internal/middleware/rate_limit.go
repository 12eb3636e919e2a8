package middleware

import (
	"hash/fnv"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/order-service/internal/i18n"
)

const defaultNumShards = 16

// window is the fixed-window counter for one identifier.
type window struct {
	remaining int
	start     time.Time
}

type rateLimiterShard struct {
	mu      sync.Mutex
	windows map[string]*window
}

// RateLimiter is a fixed-window request limiter keyed by caller or client IP.
// Identifiers are spread across shards to keep lock contention low.
type RateLimiter struct {
	shards []*rateLimiterShard
	rate   int
	window time.Duration
	now    func() time.Time
	stopCh chan struct{}
	once   sync.Once
}

// NewRateLimiter allows rate requests per identifier in every window.
func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	return NewShardedRateLimiter(rate, window, defaultNumShards)
}

// NewShardedRateLimiter is NewRateLimiter with an explicit shard count.
func NewShardedRateLimiter(rate int, windowSize time.Duration, numShards int) *RateLimiter {
	if numShards <= 0 {
		numShards = defaultNumShards
	}
	shards := make([]*rateLimiterShard, numShards)
	for i := range shards {
		shards[i] = &rateLimiterShard{windows: make(map[string]*window)}
	}

	rl := &RateLimiter{
		shards: shards,
		rate:   rate,
		window: windowSize,
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) shard(identifier string) *rateLimiterShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(identifier))
	return rl.shards[h.Sum32()%uint32(len(rl.shards))]
}

// allow consumes one request for identifier. retryAfter is set when the request is refused.
func (rl *RateLimiter) allow(identifier string) (allowed bool, remaining int, retryAfter time.Duration) {
	s := rl.shard(identifier)
	s.mu.Lock()
	defer s.mu.Unlock()

	now := rl.now()
	w, ok := s.windows[identifier]
	if !ok || now.Sub(w.start) >= rl.window {
		w = &window{remaining: rl.rate, start: now}
		s.windows[identifier] = w
	}
	if w.remaining <= 0 {
		return false, 0, w.start.Add(rl.window).Sub(now)
	}
	w.remaining--
	return true, w.remaining, 0
}

// RateLimit returns a middleware that limits requests per client IP.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return rl.middleware(func(c *gin.Context) string {
		return "ip:" + c.ClientIP()
	})
}

// UserRateLimit returns a middleware that limits requests per authenticated
// caller, falling back to the client IP for anonymous requests.
func (rl *RateLimiter) UserRateLimit() gin.HandlerFunc {
	return rl.middleware(callerIdentifier)
}

func (rl *RateLimiter) middleware(identify func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining, retryAfter := rl.allow(identify(c))

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.rate))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			abortWithError(c, http.StatusTooManyRequests, i18n.ErrKeyRateLimitExceeded)
			return
		}
		c.Next()
	}
}

func callerIdentifier(c *gin.Context) string {
	if caller := GetCaller(c); caller != nil && caller.Subject != "" && caller.Subject != apiKeyCaller {
		return "user:" + caller.Subject
	}
	return "ip:" + c.ClientIP()
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupExpired()
		case <-rl.stopCh:
			return
		}
	}
}

// cleanupExpired forgets identifiers idle for two windows.
func (rl *RateLimiter) cleanupExpired() {
	now := rl.now()
	threshold := rl.window * 2

	for _, s := range rl.shards {
		s.mu.Lock()
		for id, w := range s.windows {
			if now.Sub(w.start) > threshold {
				delete(s.windows, id)
			}
		}
		s.mu.Unlock()
	}
}

// Stop ends the cleanup goroutine. It is safe to call twice.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stopCh) })
}

// Stats returns the number of tracked identifiers, total and per shard.
func (rl *RateLimiter) Stats() (total int, perShard []int) {
	perShard = make([]int, len(rl.shards))
	for i, s := range rl.shards {
		s.mu.Lock()
		perShard[i] = len(s.windows)
		total += perShard[i]
		s.mu.Unlock()
	}
	return total, perShard
}
