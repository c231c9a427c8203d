package ports

import (
	"context"
	"time"

	"github.com/Jupiter-12/kanban/internal/core/domain"
)

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

// TokenClaims is the decoded content of an access token.
type TokenClaims struct {
	UserID    uint64
	JTI       string
	ExpiresAt time.Time
}

type TokenCodec interface {
	Encode(userID uint64, jti string, expiresAt time.Time) (string, error)
	// Decode verifies signature and expiry; any failure yields an error.
	Decode(token string) (TokenClaims, error)
}

// TokenBlacklist tracks revoked token identifiers until their natural expiry.
// Both methods return sentinel values rather than errors: revocation lookups
// are expected outcomes, not failures.
type TokenBlacklist interface {
	Add(jti string, expiresAt time.Time)
	IsRevoked(jti string) bool
}

// LoginRateLimiter throttles failed login attempts per key.
type LoginRateLimiter interface {
	// IsAllowed is the cheap pre-check used before password verification.
	IsAllowed(key string) (allowed bool, waitSeconds int)
	// CheckAndRecord atomically checks the limit and records the attempt.
	CheckAndRecord(key string, success bool) (allowed bool, waitSeconds, remainingAttempts int)
}

type AuthService interface {
	Register(ctx context.Context, input domain.RegisterUserInput) (domain.User, error)
	// Login returns a signed access token. Failures are *domain.RateLimitedError,
	// *domain.InvalidCredentialsError or domain.ErrUserDisabled.
	Login(ctx context.Context, clientIP, username, password string) (string, error)
	// Logout revokes the presented token; invalid tokens are ignored.
	Logout(ctx context.Context, token string)
	// Authenticate validates a token and resolves its user.
	Authenticate(ctx context.Context, token string) (domain.User, error)
}
