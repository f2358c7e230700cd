// Package ratelimit implements per-user sliding-window admission control for
// suggestion submissions. State is process-local and resets on restart; that
// is a documented limitation of the design, not something to persist around.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter tracks submission timestamps per user and admits a submission only
// while fewer than max timestamps fall inside the trailing window.
type Limiter struct {
	mu      sync.Mutex
	window  time.Duration
	max     int
	now     func() time.Time
	history map[string][]time.Time
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

// New creates a Limiter admitting at most max submissions per user within a
// trailing window.
func New(window time.Duration, max int, opts ...Option) *Limiter {
	l := &Limiter{
		window:  window,
		max:     max,
		now:     time.Now,
		history: make(map[string][]time.Time),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Check prunes the user's history to the current window, then either records
// the attempt and allows it, or denies it and reports how long until the
// oldest recorded submission leaves the window. A denied attempt is not
// counted.
func (l *Limiter) Check(userID string) (allowed bool, retryAfter time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	kept := l.history[userID][:0]
	for _, ts := range l.history[userID] {
		if now.Sub(ts) < l.window {
			kept = append(kept, ts)
		}
	}

	if len(kept) >= l.max {
		l.history[userID] = kept
		retry := l.window - now.Sub(kept[0])
		if retry < 0 {
			retry = 0
		}
		return false, retry
	}

	l.history[userID] = append(kept, now)
	return true, 0
}

// Cleanup drops users whose entire history has aged out of the window. Call
// periodically to keep the map from growing with one-off submitters.
func (l *Limiter) Cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for userID, times := range l.history {
		stale := true
		for _, ts := range times {
			if now.Sub(ts) < l.window {
				stale = false
				break
			}
		}
		if stale {
			delete(l.history, userID)
		}
	}
}
