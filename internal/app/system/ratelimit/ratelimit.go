// internal/app/system/ratelimit/ratelimit.go
package ratelimit

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter provides per-key rate limiting with a token bucket per key:
// limit requests may burst, refilled evenly over duration.
// It is safe for concurrent use.
type Limiter struct {
	mu       sync.Mutex
	clients  map[string]*client
	limit    int           // max requests per window
	duration time.Duration // window duration
	cleanup  time.Duration // how often to clean idle entries
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// New creates a new rate limiter.
// limit: maximum requests allowed per duration
// duration: the time window for counting requests
func New(limit int, duration time.Duration) *Limiter {
	l := &Limiter{
		clients:  make(map[string]*client),
		limit:    limit,
		duration: duration,
		cleanup:  duration * 2, // drop keys idle for 2x duration
	}
	go l.cleanupLoop()
	return l
}

// get returns the bucket for key, creating a full one on first use.
// Callers hold l.mu.
func (l *Limiter) get(key string, now time.Time) *client {
	c, ok := l.clients[key]
	if !ok {
		every := rate.Every(l.duration / time.Duration(l.limit))
		c = &client{limiter: rate.NewLimiter(every, l.limit)}
		l.clients[key] = c
	}
	c.lastSeen = now
	return c
}

// Allow checks if a request from the given key should be allowed.
// Returns true if allowed, false if rate limited.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now()
	return l.get(key, now).limiter.AllowN(now, 1)
}

// Remaining returns how many requests are left for this key right now.
func (l *Limiter) Remaining(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.clients[key]
	if !ok {
		return l.limit
	}
	remaining := int(c.limiter.Tokens())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Reset clears the rate limit for a specific key.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.clients, key)
}

// cleanupLoop periodically removes idle entries to prevent memory leaks.
func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(l.cleanup)
	defer ticker.Stop()

	for range ticker.C {
		l.mu.Lock()
		cutoff := time.Now().Add(-l.cleanup)
		for key, c := range l.clients {
			if c.lastSeen.Before(cutoff) {
				delete(l.clients, key)
			}
		}
		l.mu.Unlock()
	}
}

// ClientIP extracts the client IP from an HTTP request.
// It checks X-Forwarded-For and X-Real-IP headers first (for proxied requests),
// then falls back to RemoteAddr.
func ClientIP(r *http.Request) string {
	// Check X-Forwarded-For header (comma-separated list, first is client)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		if len(parts) > 0 {
			ip := strings.TrimSpace(parts[0])
			if ip != "" {
				return ip
			}
		}
	}

	// Check X-Real-IP header
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// Fall back to RemoteAddr (strip port)
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr might not have a port
		return r.RemoteAddr
	}
	return ip
}

// Middleware rejects requests from clients that exceeded the limiter with
// 429 Too Many Requests. onLimited, when non-nil, is called for each rejection.
//
// Example:
//
//	toggles := ratelimit.New(120, time.Minute)
//	r.With(ratelimit.Middleware(toggles, nil)).Post("/sidebar/toggle", h.HandleSidebarToggle)
func Middleware(l *Limiter, onLimited func(r *http.Request, ip string)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ClientIP(r)
			if !l.Allow(ip) {
				if onLimited != nil {
					onLimited(r, ip)
				}
				w.Header().Set("Retry-After", strconv.Itoa(int(l.duration.Seconds())))
				http.Error(w, "Too many requests. Please slow down.", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
