// Package timeouts provides centralized timeout values for catalog I/O.
//
// These timeouts bound reads of the generated materials artifacts, whether
// they come from the local public directory or a remote static host.
// Timeouts can be configured at startup using Configure(). If not configured,
// the defaults are used.
//
// Guidelines:
//   - Ping: health checks
//   - Fetch: one index or content read
//   - Rebuild: re-reading the index after a change notification
package timeouts

import (
	"context"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultPing    = 2 * time.Second
	DefaultFetch   = 10 * time.Second
	DefaultRebuild = 30 * time.Second
)

var (
	mu      sync.RWMutex
	ping    = DefaultPing
	fetch   = DefaultFetch
	rebuild = DefaultRebuild
)

// Ping returns the timeout for health checks.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Fetch returns the timeout for a single index or content read.
func Fetch() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return fetch
}

// Rebuild returns the timeout for reloading the catalog in the background.
func Rebuild() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return rebuild
}

// Config holds timeout configuration values.
// Zero values are ignored (current values are kept).
type Config struct {
	Ping    time.Duration
	Fetch   time.Duration
	Rebuild time.Duration
}

// Configure sets custom timeout values. Call during startup, before
// handlers are registered.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Fetch > 0 {
		fetch = cfg.Fetch
	}
	if cfg.Rebuild > 0 {
		rebuild = cfg.Rebuild
	}
}

// Reset restores the defaults. Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	fetch = DefaultFetch
	rebuild = DefaultRebuild
}

// ConfigureFromEnv reads TIMEOUT_PING, TIMEOUT_FETCH and TIMEOUT_REBUILD
// (Go duration strings). Invalid or non-positive values are ignored.
// Returns the number of values applied.
func ConfigureFromEnv() int {
	var cfg Config
	n := 0
	for _, e := range []struct {
		name string
		dst  *time.Duration
	}{
		{"TIMEOUT_PING", &cfg.Ping},
		{"TIMEOUT_FETCH", &cfg.Fetch},
		{"TIMEOUT_REBUILD", &cfg.Rebuild},
	} {
		if v := os.Getenv(e.name); v != "" {
			if d, err := time.ParseDuration(v); err == nil && d > 0 {
				*e.dst = d
				n++
			}
		}
	}
	Configure(cfg)
	return n
}

// Current returns the active configuration, for logging.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{Ping: ping, Fetch: fetch, Rebuild: rebuild}
}

// WithTimeout creates a context with timeout whose cancel function logs a
// warning when the deadline was the reason the operation ended.
//
//	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Fetch(), h.Log, "load material content")
//	defer cancel()
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
