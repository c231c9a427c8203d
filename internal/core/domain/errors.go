package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrColumnNotFound  = errors.New("column not found")
	ErrTaskNotFound    = errors.New("task not found")
	ErrCommentNotFound = errors.New("comment not found")

	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already registered")

	ErrPermissionDenied = errors.New("permission denied")
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrUserDisabled     = errors.New("user account disabled")

	// ErrOwnerSelfUpdate guards the owner against demoting, disabling or
	// deleting their own account.
	ErrOwnerSelfUpdate = errors.New("owner cannot modify own account")

	ErrEmptyComment     = errors.New("comment content must not be empty")
	ErrEmptyReorderList = errors.New("reorder list must not be empty")
	// ErrReorderScope: a reorder list mixed items from different parents.
	ErrReorderScope = errors.New("items must belong to same parent")
	// ErrCrossProjectMove: a task move targeted a column in another project.
	ErrCrossProjectMove = errors.New("target column must belong to same project")

	// ErrConflict is reserved for concurrent-update detection. Renumbering
	// currently runs inside serializing transactions, so it is never raised.
	ErrConflict = errors.New("conflicting concurrent update")
)

// RateLimitedError is returned by the login flow while a lockout is active.
type RateLimitedError struct {
	WaitSeconds int
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited, retry in %ds", e.WaitSeconds)
}

// InvalidCredentialsError carries the remaining attempts before lockout so
// the client can warn the user.
type InvalidCredentialsError struct {
	RemainingAttempts int
}

func (e *InvalidCredentialsError) Error() string {
	return fmt.Sprintf("invalid credentials, %d attempts remaining", e.RemainingAttempts)
}
