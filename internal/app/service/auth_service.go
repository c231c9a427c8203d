package service

import (
	"context"
	"errors"
	"time"

	"github.com/Jupiter-12/kanban/internal/core/domain"
	"github.com/Jupiter-12/kanban/internal/core/ports"

	"github.com/google/uuid"
)

// AuthService composes the rate limiter, the token blacklist and credential
// verification into the login/logout/session-validation flow.
type AuthService struct {
	users     ports.UserRepository
	hasher    ports.PasswordHasher
	codec     ports.TokenCodec
	limiter   ports.LoginRateLimiter
	blacklist ports.TokenBlacklist
	tokenTTL  time.Duration
	now       func() time.Time
}

var _ ports.AuthService = (*AuthService)(nil)

type AuthOption func(*AuthService)

// WithClock injects a time source for deterministic tests.
func WithClock(now func() time.Time) AuthOption {
	return func(s *AuthService) { s.now = now }
}

func NewAuthService(
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	codec ports.TokenCodec,
	limiter ports.LoginRateLimiter,
	blacklist ports.TokenBlacklist,
	tokenTTL time.Duration,
	opts ...AuthOption,
) *AuthService {
	s := &AuthService{
		users:     users,
		hasher:    hasher,
		codec:     codec,
		limiter:   limiter,
		blacklist: blacklist,
		tokenTTL:  tokenTTL,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates a user account. The first registered user becomes the
// board owner; everyone after that starts as a regular user.
func (s *AuthService) Register(ctx context.Context, input domain.RegisterUserInput) (domain.User, error) {
	if _, err := s.users.GetByUsername(ctx, input.Username); err == nil {
		return domain.User{}, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, err
	}
	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return domain.User{}, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, err
	}

	count, err := s.users.Count(ctx)
	if err != nil {
		return domain.User{}, err
	}
	role := domain.RoleUser
	if count == 0 {
		role = domain.RoleOwner
	}

	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		return domain.User{}, err
	}

	displayName := input.DisplayName
	if displayName == nil || *displayName == "" {
		displayName = &input.Username
	}

	user := domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashed,
		DisplayName:  displayName,
		Role:         role,
		Active:       true,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// Login runs the attempt through the rate limiter, verifies credentials and
// issues a signed access token.
func (s *AuthService) Login(ctx context.Context, clientIP, username, password string) (string, error) {
	key := clientIP + ":" + username

	// Cheap pre-check: skip password verification work while locked out.
	if allowed, wait := s.limiter.IsAllowed(key); !allowed {
		return "", &domain.RateLimitedError{WaitSeconds: wait}
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return "", err
	}
	verified := err == nil && s.hasher.Verify(password, user.PasswordHash)

	// Record regardless of outcome. A disabled user's correct password still
	// counts as a failure so account state cannot be probed without limit.
	allowed, wait, remaining := s.limiter.CheckAndRecord(key, verified && user.Active)
	if !allowed {
		return "", &domain.RateLimitedError{WaitSeconds: wait}
	}
	if !verified {
		return "", &domain.InvalidCredentialsError{RemainingAttempts: remaining}
	}
	if !user.Active {
		return "", domain.ErrUserDisabled
	}

	return s.codec.Encode(user.ID, uuid.NewString(), s.now().Add(s.tokenTTL))
}

// Logout revokes the presented token until its natural expiry. Tokens that
// fail to decode are ignored: there is nothing to revoke.
func (s *AuthService) Logout(ctx context.Context, tokenString string) {
	claims, err := s.codec.Decode(tokenString)
	if err != nil {
		return
	}
	s.blacklist.Add(claims.JTI, claims.ExpiresAt)
}

// Authenticate validates a token and resolves its user, for use on every
// authenticated request.
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (domain.User, error) {
	claims, err := s.codec.Decode(tokenString)
	if err != nil {
		return domain.User{}, domain.ErrUnauthenticated
	}
	if s.blacklist.IsRevoked(claims.JTI) {
		return domain.User{}, domain.ErrUnauthenticated
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.User{}, domain.ErrUnauthenticated
		}
		return domain.User{}, err
	}
	if !user.Active {
		// The token itself was valid, so this is a distinct outcome.
		return domain.User{}, domain.ErrUserDisabled
	}
	return user, nil
}
