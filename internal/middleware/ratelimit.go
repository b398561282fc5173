// Copyright (c) 2025-2026 AEA Engineering
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// limiterCache is a per-IP rate limiter cache with double-check locking.
type limiterCache struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	rate     rate.Limit
	burst    int
}

func newLimiterCache(rps float64, burst int) *limiterCache {
	return &limiterCache{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(rps),
		burst:    burst,
	}
}

// get returns the rate limiter for a key, creating one if needed.
func (lc *limiterCache) get(key string) *rate.Limiter {
	lc.mu.RLock()
	limiter, exists := lc.limiters[key]
	lc.mu.RUnlock()

	if exists {
		return limiter
	}

	lc.mu.Lock()
	defer lc.mu.Unlock()

	// Double-check after acquiring write lock
	if limiter, exists = lc.limiters[key]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(lc.rate, lc.burst)
	lc.limiters[key] = limiter
	return limiter
}

// maxLimiterEntries caps the cache; exceeding it resets all buckets.
const maxLimiterEntries = 10000

func (lc *limiterCache) clearIfExceeds(maxSize int) {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	if len(lc.limiters) > maxSize {
		lc.limiters = make(map[string]*rate.Limiter)
	}
}

// RateLimiter limits requests per client IP. It guards the public POST
// endpoints (contact form, login) against abuse; reads are not limited.
type RateLimiter struct {
	cache *limiterCache
}

// NewRateLimiter creates a per-IP rate limiter allowing rps requests
// per second with the given burst.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{cache: newLimiterCache(rps, burst)}
}

// Middleware enforces the limit, answering 429 when exceeded.
func (rl *RateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			if !rl.cache.get(ip).Allow() {
				http.Error(w, "Too many requests. Please slow down.", http.StatusTooManyRequests)
				return
			}
			rl.cache.clearIfExceeds(maxLimiterEntries)
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP extracts the client address, relying on chi's RealIP
// middleware having rewritten RemoteAddr from proxy headers.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
