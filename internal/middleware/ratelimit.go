// SPDX-License-Identifier: MIT
package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// TokenBucket implements a token bucket rate limiter
type TokenBucket struct {
	tokens   int
	capacity int
	refillAt time.Time
	interval time.Duration
	mu       sync.Mutex
}

// RateLimiter manages token buckets per client
type RateLimiter struct {
	mu       sync.RWMutex
	buckets  map[string]*TokenBucket
	capacity int
	interval time.Duration

	stop      chan struct{}
	closeOnce sync.Once
	now       func() time.Time
}

// NewRateLimiter creates a rate limiter allowing capacity requests per
// interval for each client. Call Close to stop its cleanup goroutine.
func NewRateLimiter(capacity int, interval time.Duration) *RateLimiter {
	limiter := &RateLimiter{
		buckets:  make(map[string]*TokenBucket),
		capacity: capacity,
		interval: interval,
		stop:     make(chan struct{}),
		now:      time.Now,
	}

	// Start cleanup goroutine
	go limiter.cleanup(5 * time.Minute)

	return limiter
}

// Close stops the cleanup goroutine. It is safe to call more than once.
func (rl *RateLimiter) Close() {
	rl.closeOnce.Do(func() { close(rl.stop) })
}

// cleanup periodically drops buckets idle for more than two windows
func (rl *RateLimiter) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.prune()
		}
	}
}

func (rl *RateLimiter) prune() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for client, bucket := range rl.buckets {
		bucket.mu.Lock()
		if now.Sub(bucket.refillAt) > 2*rl.interval {
			delete(rl.buckets, client)
		}
		bucket.mu.Unlock()
	}
}

// IsAllowed reports whether client may make another request, consuming
// one token if so.
func (rl *RateLimiter) IsAllowed(client string) bool {
	allowed, _ := rl.Allow(client)
	return allowed
}

// Allow checks if a request should be allowed and returns the tokens left
func (rl *RateLimiter) Allow(client string) (bool, int) {
	rl.mu.RLock()
	bucket, exists := rl.buckets[client]
	rl.mu.RUnlock()

	if !exists {
		rl.mu.Lock()
		// Another request may have created it meanwhile
		if bucket, exists = rl.buckets[client]; !exists {
			bucket = &TokenBucket{
				tokens:   rl.capacity,
				capacity: rl.capacity,
				refillAt: rl.now().Add(rl.interval),
				interval: rl.interval,
			}
			rl.buckets[client] = bucket
		}
		rl.mu.Unlock()
	}

	bucket.mu.Lock()
	defer bucket.mu.Unlock()

	// Refill tokens if interval has passed
	now := rl.now()
	if now.After(bucket.refillAt) {
		bucket.tokens = bucket.capacity
		bucket.refillAt = now.Add(bucket.interval)
	}

	// Try to consume a token
	if bucket.tokens > 0 {
		bucket.tokens--
		return true, bucket.tokens
	}

	return false, 0
}

// Len returns the number of tracked clients.
func (rl *RateLimiter) Len() int {
	rl.mu.RLock()
	defer rl.mu.RUnlock()
	return len(rl.buckets)
}

// RateLimitMiddleware creates a rate limiting middleware. With no paths
// every request is limited, otherwise only the listed paths.
func RateLimitMiddleware(limiter *RateLimiter, logger zerolog.Logger, paths ...string) gin.HandlerFunc {
	pathMap := make(map[string]bool)
	for _, path := range paths {
		pathMap[path] = true
	}

	return func(c *gin.Context) {
		// Check if this path requires rate limiting
		if len(pathMap) > 0 && !pathMap[c.Request.URL.Path] {
			c.Next()
			return
		}

		clientIP := ClientIP(c)

		allowed, remaining := limiter.Allow(clientIP)

		// Set rate limit headers
		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.capacity))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			logger.Warn().Str("client_ip", clientIP).Msg("rate limit exceeded")
			c.Header("Retry-After", strconv.Itoa(int(limiter.interval.Seconds())))
			AbortWithError(c, http.StatusTooManyRequests,
				"Rate Limit Exceeded", "Too many requests. Please try again later.", nil)
			return
		}

		c.Next()
	}
}
