package middleware

import (
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"Snapgram/internal/api/handlers"
)

// RateLimiter is a fixed-window in-memory rate limiter. Authenticated
// requests are counted per user, anonymous ones per client IP. Single
// process only; a multi-instance deployment needs a shared store instead.
type RateLimiter struct {
	buckets  map[string]*bucket
	requests int
	window   time.Duration
	mu       sync.Mutex
}

type bucket struct {
	resetAt time.Time
	count   int
}

// NewRateLimiter allows up to requests per window per client.
func NewRateLimiter(requests int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		buckets:  make(map[string]*bucket),
		requests: requests,
		window:   window,
	}
	go rl.evictExpired()
	return rl
}

// Middleware rejects over-limit requests with 429 and the standard
// error envelope.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientKey(r)) {
			handlers.WriteError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	b, exists := rl.buckets[key]
	if !exists || now.After(b.resetAt) {
		rl.buckets[key] = &bucket{count: 1, resetAt: now.Add(rl.window)}
		return true
	}

	if b.count >= rl.requests {
		return false
	}
	b.count++
	return true
}

func (rl *RateLimiter) evictExpired() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for key, b := range rl.buckets {
			if now.After(b.resetAt) {
				delete(rl.buckets, key)
			}
		}
		rl.mu.Unlock()
	}
}

// clientKey prefers the authenticated user so NAT'd users don't share a
// bucket, falling back to the client IP for unauthenticated routes.
func clientKey(r *http.Request) string {
	if userID := GetUserID(r); userID != 0 {
		return fmt.Sprintf("user:%d", userID)
	}

	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return "ip:" + forwarded
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return "ip:" + realIP
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "ip:" + r.RemoteAddr
	}
	return "ip:" + host
}
