// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEmail is returned before any backend call when the
	// email fails the shape check.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrInvalidName is returned when the display name fails the
	// length or alphabet check.
	ErrInvalidName = errors.New("invalid display name")

	// ErrWeakPassword is returned when the password misses the length
	// or character-class requirements.
	ErrWeakPassword = errors.New("password too weak")
)

// RateLimitedError reports that the identifier is locked out and how
// long the caller has to wait.
type RateLimitedError struct {
	RetryAfter int // seconds
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited, retry after %ds", e.RetryAfter)
}
