// Package ratelimit provides per-key request rate limiting for the HTTP API.
//
// Handlers depend on the Limiter interface rather than any concrete
// implementation, so a shared-store limiter can be substituted when the
// server runs as multiple instances. The in-memory implementation is
// correct for a single process only.
package ratelimit

import (
	"sync"
	"time"
)

// Info describes the outcome of a rate limit check.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter is the capability the HTTP handlers consume: check whether the
// key may proceed and consume one unit if so.
type Limiter interface {
	CheckAndConsume(key string) Info
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	Limit           int           // requests per window
	Window          time.Duration // fixed window length
	CleanupInterval time.Duration // how often stale windows are dropped
}

// DefaultConfig returns the production defaults: 100 requests per hour
// per user.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		Limit:           100,
		Window:          time.Hour,
		CleanupInterval: 10 * time.Minute,
	}
}

// window tracks consumption for one key in the current fixed window.
type window struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter is a fixed-window, per-key limiter backed by a mutex-guarded
// map. Windows reset a full Window after their first request.
type MemoryLimiter struct {
	config  *Config
	mu      sync.Mutex
	windows map[string]*window

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewMemoryLimiter creates a memory-backed limiter. A nil config uses defaults.
func NewMemoryLimiter(config *Config) *MemoryLimiter {
	if config == nil {
		config = DefaultConfig()
	}

	l := &MemoryLimiter{
		config:  config,
		windows: make(map[string]*window),
	}

	if config.CleanupInterval > 0 {
		l.cleanupTicker = time.NewTicker(config.CleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanupLoop()
	}

	return l
}

// CheckAndConsume checks the key against its window and consumes one
// request if allowed.
func (l *MemoryLimiter) CheckAndConsume(key string) Info {
	if !l.config.Enabled {
		return Info{Allowed: true, Limit: l.config.Limit, Remaining: l.config.Limit}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	w, ok := l.windows[key]
	if !ok || now.After(w.resetAt) {
		w = &window{count: 0, resetAt: now.Add(l.config.Window)}
		l.windows[key] = w
	}

	if w.count >= l.config.Limit {
		return Info{
			Allowed:    false,
			Limit:      l.config.Limit,
			Remaining:  0,
			ResetTime:  w.resetAt,
			RetryAfter: time.Until(w.resetAt),
		}
	}

	w.count++
	return Info{
		Allowed:   true,
		Limit:     l.config.Limit,
		Remaining: l.config.Limit - w.count,
		ResetTime: w.resetAt,
	}
}

// Stop terminates the background cleanup goroutine.
func (l *MemoryLimiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
		close(l.cleanupStop)
	}
}

func (l *MemoryLimiter) cleanupLoop() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.cleanup()
		case <-l.cleanupStop:
			return
		}
	}
}

// cleanup drops windows that have expired.
func (l *MemoryLimiter) cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	for key, w := range l.windows {
		if now.After(w.resetAt) {
			delete(l.windows, key)
		}
	}
}
