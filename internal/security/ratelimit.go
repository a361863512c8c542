package security

import (
	"log"
	"sync"
	"time"
)

// RateLimiter gates calls to the external AI service with a sliding
// window: at most maxRequests request timestamps may fall inside the
// trailing window. It is safe for concurrent use.
type RateLimiter struct {
	mu          sync.Mutex
	maxRequests int
	window      time.Duration
	requests    []time.Time

	now func() time.Time // overridable for tests

	totalAllowed  int64
	totalRejected int64
}

// NewRateLimiter creates a limiter with the given configuration.
func NewRateLimiter(maxRequests int, window time.Duration) *RateLimiter {
	if maxRequests < 1 {
		maxRequests = 10
	}
	if window < time.Second {
		window = time.Minute
	}
	rl := &RateLimiter{
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
	}
	log.Printf("[RateLimiter] Initialized: %d requests per %s", maxRequests, window)
	return rl
}

// Allow records a request slot if one is available and reports whether
// the call may proceed.
func (rl *RateLimiter) Allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.prune(now)

	if len(rl.requests) >= rl.maxRequests {
		rl.totalRejected++
		return false
	}
	rl.requests = append(rl.requests, now)
	rl.totalAllowed++
	return true
}

// TimeUntilReset returns how long until the oldest in-window request
// expires, or zero when the window is empty.
func (rl *RateLimiter) TimeUntilReset() time.Duration {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.prune(now)
	if len(rl.requests) == 0 {
		return 0
	}
	remaining := rl.window - now.Sub(rl.requests[0])
	if remaining < 0 {
		return 0
	}
	return remaining
}

// prune drops timestamps that have left the window. Caller holds mu.
func (rl *RateLimiter) prune(now time.Time) {
	kept := rl.requests[:0]
	for _, ts := range rl.requests {
		if now.Sub(ts) < rl.window {
			kept = append(kept, ts)
		}
	}
	rl.requests = kept
}
