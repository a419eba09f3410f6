// Package domain defines domain-level errors for the auth feature.
package domain

import "errors"

// Domain errors for authentication operations. These represent business
// failures and are translated to localized messages at the transport
// boundary.
var (
	// ErrEmailInUse indicates an account with the given email already
	// exists. Returned during signup.
	ErrEmailInUse = errors.New("email already in use")

	// ErrInvalidCredentials indicates the email or password is wrong.
	// Deliberately generic so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotAdmin indicates a valid account without admin rights tried
	// to use the admin surface.
	ErrNotAdmin = errors.New("account has no admin rights")

	// ErrAccountNotFound indicates no account matched the lookup.
	ErrAccountNotFound = errors.New("account not found")
)
