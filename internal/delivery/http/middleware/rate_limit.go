package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/security"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig holds configuration for one rate limited route group
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Key prefix for Redis and the in-memory store
	KeyPrefix string
	// Reject requests when Redis errors instead of falling back to memory
	FailClosed bool
	// Custom key extractor (default: client IP)
	KeyFunc func(*gin.Context) string
}

// Lua script for atomic increment with TTL on first set
// KEYS[1] = counter key
// ARGV[1] = TTL in seconds
// Returns: [current_count, ttl_remaining]
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

var rateLimitScript = goredis.NewScript(rateLimitLuaScript)

type rateLimitEntry struct {
	count   int
	resetAt time.Time
}

// RateLimiter counts requests per key in fixed windows. Counters live in Redis
// when a client is given, otherwise (or when Redis fails open) in memory.
type RateLimiter struct {
	redis  *goredis.Client
	events *security.EventLogger
	now    func() time.Time

	mu        sync.Mutex
	entries   map[string]*rateLimitEntry
	nextSweep time.Time
}

// NewRateLimiter creates a limiter. client and events may be nil.
func NewRateLimiter(client *goredis.Client, events *security.EventLogger) *RateLimiter {
	return &RateLimiter{
		redis:   client,
		events:  events,
		now:     time.Now,
		entries: make(map[string]*rateLimitEntry),
	}
}

// ContactRateLimitConfig is the strict limit for form submissions
func ContactRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:contact:",
	}
}

// GlobalRateLimitConfig applies to every API route
func GlobalRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:ip:",
	}
}

// Middleware enforces cfg on the routes it is attached to
func (rl *RateLimiter) Middleware(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}

	return func(c *gin.Context) {
		if cfg.Limit <= 0 {
			c.Next()
			return
		}

		key := cfg.KeyPrefix + cfg.KeyFunc(c)
		count, resetAt, err := rl.hit(c.Request.Context(), key, cfg)
		if err != nil {
			logger.Log.Warn("Rate limit store unavailable", "error", err, "fail_closed", cfg.FailClosed)
			if cfg.FailClosed {
				response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.", nil)
				c.Abort()
				return
			}
			count, resetAt = rl.hitInMemory(key, cfg)
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
		c.Header("X-RateLimit-Reset", resetAt.UTC().Format(time.RFC3339))

		if count > cfg.Limit {
			retryAfter := int(resetAt.Sub(rl.now()).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			rl.events.LogRateLimitTriggered(c.Request.Context(), c.ClientIP(), response.RequestID(c), c.FullPath())

			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(cfg.Limit-count))
		c.Next()
	}
}

func (rl *RateLimiter) hit(ctx context.Context, key string, cfg RateLimitConfig) (int, time.Time, error) {
	if rl.redis == nil {
		count, resetAt := rl.hitInMemory(key, cfg)
		return count, resetAt, nil
	}
	return rl.hitRedis(ctx, key, cfg)
}

// hitRedis increments the counter atomically with the Lua script
func (rl *RateLimiter) hitRedis(ctx context.Context, key string, cfg RateLimitConfig) (int, time.Time, error) {
	ttlSeconds := int(cfg.Window.Seconds())
	if ttlSeconds < 1 {
		ttlSeconds = 1
	}

	result, err := rateLimitScript.Run(ctx, rl.redis, []string{key}, ttlSeconds).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected redis result format")
	}
	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	return int(count), rl.now().Add(time.Duration(ttl) * time.Second), nil
}

// hitInMemory is the single-instance fallback. Expired entries are swept at
// most once per minute, on the request path.
func (rl *RateLimiter) hitInMemory(key string, cfg RateLimitConfig) (int, time.Time) {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.After(rl.nextSweep) {
		for k, e := range rl.entries {
			if now.After(e.resetAt) {
				delete(rl.entries, k)
			}
		}
		rl.nextSweep = now.Add(time.Minute)
	}

	entry, ok := rl.entries[key]
	if !ok || now.After(entry.resetAt) {
		entry = &rateLimitEntry{resetAt: now.Add(cfg.Window)}
		rl.entries[key] = entry
	}
	entry.count++
	return entry.count, entry.resetAt
}
