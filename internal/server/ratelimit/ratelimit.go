// Package ratelimit provides per-client request throttling using the token
// bucket algorithm. Auth endpoints get a tighter bucket than the rest of
// the API so credential guessing stays slow while normal use is unaffected.
package ratelimit

import (
	"strings"
	"sync"
	"time"
)

// bucket is a single token bucket. Tokens refill at a steady rate up to a
// fixed capacity.
type bucket struct {
	mu         sync.Mutex
	capacity   float64
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
}

func newBucket(limit int, window time.Duration) *bucket {
	return &bucket{
		capacity:   float64(limit),
		refillRate: float64(limit) / window.Seconds(),
		tokens:     float64(limit),
		lastRefill: time.Now(),
	}
}

// take refills the bucket for elapsed time, then consumes a token if one is
// available. It reports whether the request is allowed and how many tokens
// remain.
func (b *bucket) take() (allowed bool, remaining int, retryAfter time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens = min(b.capacity, b.tokens+now.Sub(b.lastRefill).Seconds()*b.refillRate)
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return true, int(b.tokens), 0
	}

	// Time until one full token is available.
	deficit := 1 - b.tokens
	return false, 0, time.Duration(deficit / b.refillRate * float64(time.Second))
}

// Info describes the rate limit decision for one request.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Config holds the per-window request limits.
type Config struct {
	Enabled   bool
	Limit     int           // requests per window for most endpoints
	AuthLimit int           // requests per window for /api/auth/ endpoints
	Window    time.Duration
}

// DefaultConfig returns the production limits.
func DefaultConfig() Config {
	return Config{
		Enabled:   true,
		Limit:     300,
		AuthLimit: 20,
		Window:    time.Minute,
	}
}

// Limiter throttles requests per client. Buckets idle for over an hour are
// dropped by a background sweep.
type Limiter struct {
	mu         sync.Mutex
	config     Config
	buckets    map[string]*bucket
	lastAccess map[string]time.Time
	stop       chan struct{}
	stopOnce   sync.Once
}

// NewLimiter creates a limiter and starts its cleanup sweep.
func NewLimiter(config Config) *Limiter {
	l := &Limiter{
		config:     config,
		buckets:    make(map[string]*bucket),
		lastAccess: make(map[string]time.Time),
		stop:       make(chan struct{}),
	}
	if config.Enabled {
		go l.sweep()
	}
	return l
}

// Allow reports whether a request from clientID to path may proceed.
func (l *Limiter) Allow(clientID, path string) Info {
	if !l.config.Enabled {
		return Info{Allowed: true}
	}

	limit := l.config.Limit
	class := "api"
	if strings.HasPrefix(path, "/api/auth/") {
		limit = l.config.AuthLimit
		class = "auth"
	}

	key := clientID + ":" + class
	l.mu.Lock()
	b, ok := l.buckets[key]
	if !ok {
		b = newBucket(limit, l.config.Window)
		l.buckets[key] = b
	}
	l.lastAccess[key] = time.Now()
	l.mu.Unlock()

	allowed, remaining, retryAfter := b.take()
	return Info{
		Allowed:    allowed,
		Limit:      limit,
		Remaining:  remaining,
		RetryAfter: retryAfter,
	}
}

func (l *Limiter) sweep() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.dropIdle(time.Now().Add(-time.Hour))
		case <-l.stop:
			return
		}
	}
}

func (l *Limiter) dropIdle(cutoff time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, last := range l.lastAccess {
		if last.Before(cutoff) {
			delete(l.buckets, key)
			delete(l.lastAccess, key)
		}
	}
}

// Stop ends the cleanup sweep.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}
