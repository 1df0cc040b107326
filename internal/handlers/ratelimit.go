package handlers

import "golang.org/x/time/rate"

// RateLimiter is a token bucket shared by every request of a handler
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a limiter refilling requestsPerSecond tokens up to burst
func NewRateLimiter(requestsPerSecond int, burst int) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}
}

// Allow reports whether a request may proceed now. rate.Limiter is safe for
// concurrent use.
func (rl *RateLimiter) Allow() bool {
	return rl.limiter.Allow()
}
