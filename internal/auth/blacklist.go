// Package auth holds the in-memory security state shared by the login flow:
// the token blacklist and, in the ratelimit subpackage, the login limiter.
package auth

import (
	"sync"
	"time"

	"github.com/Jupiter-12/kanban/internal/core/ports"
)

// Blacklist tracks revoked token identifiers (JTI) until their expiry.
// Expired entries are purged opportunistically on every Add; the purge is a
// memory bound, not a correctness mechanism, since the codec rejects expired
// tokens on its own.
type Blacklist struct {
	mu         sync.Mutex
	revoked    map[string]time.Time
	defaultTTL time.Duration
	now        func() time.Time
}

var _ ports.TokenBlacklist = (*Blacklist)(nil)

type BlacklistOption func(*Blacklist)

// WithClock injects a time source for deterministic tests.
func WithClock(now func() time.Time) BlacklistOption {
	return func(b *Blacklist) { b.now = now }
}

// NewBlacklist creates a blacklist. defaultTTL is used when Add is called
// with a zero expiry.
func NewBlacklist(defaultTTL time.Duration, opts ...BlacklistOption) *Blacklist {
	b := &Blacklist{
		revoked:    make(map[string]time.Time),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add marks jti revoked until expiresAt. A zero expiresAt defaults to
// now + the configured TTL.
func (b *Blacklist) Add(jti string, expiresAt time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	if expiresAt.IsZero() {
		expiresAt = now.Add(b.defaultTTL)
	}
	b.revoked[jti] = expiresAt

	for id, exp := range b.revoked {
		if exp.Before(now) {
			delete(b.revoked, id)
		}
	}
}

// IsRevoked is a pure membership check; it never purges.
func (b *Blacklist) IsRevoked(jti string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.revoked[jti]
	return ok
}

// Len reports the number of tracked entries, for observability.
func (b *Blacklist) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.revoked)
}
