// Package ratelimit throttles repeated failed login attempts per key using a
// sliding window of recent attempts and a secondary lockout state. It is an
// in-process structure; the port boundary allows a networked cache to be
// substituted later without changing callers.
package ratelimit

import (
	"sync"
	"time"

	"github.com/Jupiter-12/kanban/internal/core/ports"
)

const (
	DefaultMaxAttempts    = 5
	DefaultWindowSeconds  = 300
	DefaultLockoutSeconds = 900
)

type attempt struct {
	at      time.Time
	success bool
}

type Limiter struct {
	mu       sync.Mutex
	attempts map[string][]attempt
	lockouts map[string]time.Time

	maxAttempts int
	window      time.Duration
	lockout     time.Duration
	now         func() time.Time
}

var _ ports.LoginRateLimiter = (*Limiter)(nil)

type Option func(*Limiter)

// WithClock injects a time source for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

func New(maxAttempts, windowSeconds, lockoutSeconds int, opts ...Option) *Limiter {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if windowSeconds <= 0 {
		windowSeconds = DefaultWindowSeconds
	}
	if lockoutSeconds <= 0 {
		lockoutSeconds = DefaultLockoutSeconds
	}

	l := &Limiter{
		attempts:    make(map[string][]attempt),
		lockouts:    make(map[string]time.Time),
		maxAttempts: maxAttempts,
		window:      time.Duration(windowSeconds) * time.Second,
		lockout:     time.Duration(lockoutSeconds) * time.Second,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// IsAllowed reports whether an attempt for key would currently be accepted,
// without recording anything. Callers that need check-and-record semantics
// must use CheckAndRecord instead; combining IsAllowed with a later
// RecordAttempt is racy by construction.
func (l *Limiter) IsAllowed(key string) (bool, int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if wait, locked := l.lockedOut(key, now); locked {
		return false, wait
	}

	l.prune(key, now)
	if l.failedCount(key) >= l.maxAttempts {
		l.lockouts[key] = now.Add(l.lockout)
		return false, int(l.lockout.Seconds())
	}
	return true, 0
}

// CheckAndRecord atomically checks the limit for key and records the attempt.
// It returns whether this attempt was accepted, the seconds to wait when it
// was not, and the attempts remaining before lockout.
func (l *Limiter) CheckAndRecord(key string, success bool) (bool, int, int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if wait, locked := l.lockedOut(key, now); locked {
		return false, wait, 0
	}

	l.prune(key, now)
	failed := l.failedCount(key)
	if failed >= l.maxAttempts {
		l.lockouts[key] = now.Add(l.lockout)
		return false, int(l.lockout.Seconds()), 0
	}

	l.attempts[key] = append(l.attempts[key], attempt{at: now, success: success})

	if success {
		delete(l.attempts, key)
		delete(l.lockouts, key)
		return true, 0, l.maxAttempts
	}

	failed++
	if failed >= l.maxAttempts {
		// This attempt already happened so it stays allowed; the lockout
		// applies to subsequent calls.
		l.lockouts[key] = now.Add(l.lockout)
		return true, 0, 0
	}
	return true, 0, l.maxAttempts - failed
}

// RecordAttempt appends an attempt without checking the limit. It is a
// lower-level primitive for call sites that already decided admission.
func (l *Limiter) RecordAttempt(key string, success bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if success {
		delete(l.attempts, key)
		delete(l.lockouts, key)
		return
	}
	l.attempts[key] = append(l.attempts[key], attempt{at: l.now(), success: success})
}

// RemainingAttempts returns how many failed attempts are left in the current
// window before lockout.
func (l *Limiter) RemainingAttempts(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.prune(key, l.now())
	remaining := l.maxAttempts - l.failedCount(key)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// lockedOut reports an active lockout and clears an expired one.
// Callers must hold l.mu.
func (l *Limiter) lockedOut(key string, now time.Time) (int, bool) {
	until, ok := l.lockouts[key]
	if !ok {
		return 0, false
	}
	if now.Before(until) {
		wait := int(until.Sub(now).Seconds())
		if until.Sub(now)%time.Second != 0 {
			wait++
		}
		return wait, true
	}
	delete(l.lockouts, key)
	return 0, false
}

// prune drops attempts older than the window. Callers must hold l.mu.
func (l *Limiter) prune(key string, now time.Time) {
	records, ok := l.attempts[key]
	if !ok {
		return
	}
	cutoff := now.Add(-l.window)
	kept := records[:0]
	for _, a := range records {
		if a.at.After(cutoff) {
			kept = append(kept, a)
		}
	}
	if len(kept) == 0 {
		delete(l.attempts, key)
		return
	}
	l.attempts[key] = kept
}

// failedCount counts failures in the (already pruned) window.
// Callers must hold l.mu.
func (l *Limiter) failedCount(key string) int {
	failed := 0
	for _, a := range l.attempts[key] {
		if !a.success {
			failed++
		}
	}
	return failed
}
