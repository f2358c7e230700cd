package suggest

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors returned by the lifecycle service. Handlers branch on these
// with errors.Is and own all user-visible wording.
var (
	// ErrNotFound means the referenced suggestion, channel config or
	// category does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the actor lacks permission or ownership.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidStatus means a status value outside the enum was given.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrStore wraps any underlying persistence failure. Engine detail is
	// logged at the failure site, never surfaced through this error.
	ErrStore = errors.New("storage failure")

	// ErrNoChannel means no suggestion channel is configured for the guild.
	ErrNoChannel = errors.New("no suggestion channel configured")
)

// ValidationError reports input that exceeds constraints.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s", e.Reason)
}

// RateLimitedError reports a throttled submission and how long until the next
// attempt can succeed.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited, retry after %s", e.RetryAfter)
}
