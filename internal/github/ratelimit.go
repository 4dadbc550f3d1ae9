package github

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// HeaderRateRemaining is the remaining-requests header.
	HeaderRateRemaining = "X-RateLimit-Remaining"

	// HeaderRateReset is the reset timestamp header (Unix seconds).
	HeaderRateReset = "X-RateLimit-Reset"

	// ProactiveRate is the proactive throttle rate (~1.2 req/sec).
	ProactiveRate = 1.2

	// ResetMargin is the safety margin added past the advertised
	// reset time before resuming requests.
	ResetMargin = 5 * time.Second
)

// RateLimiter throttles API callers. It combines a proactive token
// bucket with reactive state parsed from GitHub's rate limit headers.
// A single instance is shared by all scan workers; state updates are
// mutex-guarded.
type RateLimiter struct {
	mu        sync.Mutex
	remaining int
	resetTime time.Time
	bucket    *rate.Limiter

	now   func() time.Time
	sleep func(time.Duration)
}

// NewRateLimiter creates a rate limiter with proactive throttling.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		remaining: -1, // unknown until the first response
		bucket:    rate.NewLimiter(rate.Limit(ProactiveRate), 1),
		now:       time.Now,
		sleep:     time.Sleep,
	}
}

// Wait blocks until the proactive bucket permits another request.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.bucket.Wait(ctx)
}

// Pause inspects rate limit headers after a successful call and, when
// the quota is exhausted, blocks until the advertised reset plus
// ResetMargin, anticipating the next request. Missing or malformed
// headers take no action: the worst case is an unnecessary or
// insufficient wait, never a failure.
func (r *RateLimiter) Pause(h http.Header) {
	remaining, err := strconv.Atoi(h.Get(HeaderRateRemaining))
	if err != nil {
		return
	}
	resetEpoch, err := strconv.ParseInt(h.Get(HeaderRateReset), 10, 64)
	if err != nil {
		return
	}
	reset := time.Unix(resetEpoch, 0)

	r.mu.Lock()
	r.remaining = remaining
	r.resetTime = reset
	r.mu.Unlock()

	if remaining > 0 {
		return
	}

	if wait := reset.Sub(r.now()) + ResetMargin; wait > 0 {
		r.sleep(wait)
	}
}

// Remaining returns the last observed remaining-request count, or -1
// if no response has been seen yet.
func (r *RateLimiter) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.remaining
}

// ResetTime returns the last observed quota reset time.
func (r *RateLimiter) ResetTime() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resetTime
}
