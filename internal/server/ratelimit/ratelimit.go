// Package ratelimit provides per-client rate limiting using a token bucket.
package ratelimit

import (
	"sync"
	"time"
)

// bucket is a token bucket refilling at a steady rate.
type bucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newBucket(capacity int, refillRate float64) *bucket {
	return &bucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// allow consumes one token if available.
func (b *bucket) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(b.lastRefill)
	b.tokens = min(float64(b.capacity), b.tokens+elapsed.Seconds()*b.refillRate)
	b.lastRefill = now

	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		return true
	}
	return false
}

// Config holds limiter settings.
type Config struct {
	Capacity   int     // burst capacity per client
	RefillRate float64 // tokens per second per client
}

// DefaultConfig allows short bursts while keeping sustained report
// generation (an expensive LLM call per request) slow.
func DefaultConfig() Config {
	return Config{Capacity: 5, RefillRate: 0.2}
}

// Limiter tracks one token bucket per client key.
type Limiter struct {
	config  Config
	buckets map[string]*bucket
	mu      sync.Mutex
}

// NewLimiter creates a Limiter with the given config.
func NewLimiter(config Config) *Limiter {
	if config.Capacity <= 0 {
		config = DefaultConfig()
	}
	return &Limiter{
		config:  config,
		buckets: make(map[string]*bucket),
	}
}

// Allow reports whether the client identified by key may proceed.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	b, ok := l.buckets[key]
	if !ok {
		b = newBucket(l.config.Capacity, l.config.RefillRate)
		l.buckets[key] = b
	}
	l.mu.Unlock()

	return b.allow()
}
