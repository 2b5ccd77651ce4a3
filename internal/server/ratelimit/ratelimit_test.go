package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_AllowsBurstUpToCapacity(t *testing.T) {
	limiter := NewLimiter(Config{Capacity: 3, RefillRate: 0.1})

	assert.True(t, limiter.Allow("client"))
	assert.True(t, limiter.Allow("client"))
	assert.True(t, limiter.Allow("client"))
	assert.False(t, limiter.Allow("client"))
}

func TestLimiter_TracksClientsIndependently(t *testing.T) {
	limiter := NewLimiter(Config{Capacity: 1, RefillRate: 0.1})

	assert.True(t, limiter.Allow("a"))
	assert.False(t, limiter.Allow("a"))
	assert.True(t, limiter.Allow("b"))
}

func TestLimiter_RefillsOverTime(t *testing.T) {
	limiter := NewLimiter(Config{Capacity: 1, RefillRate: 1000})

	assert.True(t, limiter.Allow("client"))
	// At 1000 tokens/second the bucket refills effectively immediately.
	assert.Eventually(t, func() bool {
		return limiter.Allow("client")
	}, time.Second, 5*time.Millisecond)
}

func TestNewLimiter_ZeroConfigUsesDefaults(t *testing.T) {
	limiter := NewLimiter(Config{})

	defaults := DefaultConfig()
	for i := 0; i < defaults.Capacity; i++ {
		assert.True(t, limiter.Allow("client"), "request %d within burst", i)
	}
	assert.False(t, limiter.Allow("client"))
}
