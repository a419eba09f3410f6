package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"manassa_backend/internal/feature/auth/domain"
	"manassa_backend/internal/feature/auth/domain/entity"
	jwtmw "manassa_backend/internal/platform/jwt"
	"manassa_backend/internal/shared/ratelimit"
	"manassa_backend/internal/shared/validation"
)

// Slot names the two independent session slots.
type Slot string

const (
	SlotUser  Slot = "user"
	SlotAdmin Slot = "admin"
)

// IdentityProvider abstracts the external identity backend. Following
// Go convention, the interface is defined by the consumer (usecase),
// not the provider (adapters).
type IdentityProvider interface {
	// CreateAccount registers a new identity and returns it. Fails
	// with domain.ErrEmailInUse on a duplicate address.
	CreateAccount(ctx context.Context, email, password, name string) (*entity.Account, error)

	// SignIn verifies credentials and returns the matching account, or
	// domain.ErrInvalidCredentials.
	SignIn(ctx context.Context, email, password string) (*entity.Account, error)
}

// SessionStore abstracts the local expiring session slots.
type SessionStore interface {
	// Set overwrites the slot unconditionally with a fresh TTL.
	Set(slot Slot, subjectID string, data []byte) error

	// Get returns the slot's session, or nil when absent or expired
	// (expired slots are cleared as a side effect).
	Get(slot Slot) (*entity.Session, error)

	// Clear removes the slot unconditionally.
	Clear(slot Slot) error
}

// RateLimiter abstracts the login throttle.
type RateLimiter interface {
	Check(identifier string) ratelimit.Result
	Reset(identifier string)
}

// profile is the opaque subject blob stored alongside a session.
type profile struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoginResult is returned by the authentication operations.
type LoginResult struct {
	Account *entity.Account
	Token   string // API bearer token
}

// AuthUsecase implements registration, login and session lifecycle for
// both the user and the admin surfaces. All auth-type actions consult
// the rate limiter before touching the identity backend.
type AuthUsecase struct {
	identity IdentityProvider
	sessions SessionStore
	limiter  RateLimiter
	tokens   jwtmw.Generator
}

// NewAuthUsecase creates an AuthUsecase with its dependencies injected.
func NewAuthUsecase(identity IdentityProvider, sessions SessionStore, limiter RateLimiter, tokens jwtmw.Generator) *AuthUsecase {
	return &AuthUsecase{
		identity: identity,
		sessions: sessions,
		limiter:  limiter,
		tokens:   tokens,
	}
}

// Signup registers a new user. Validation runs first, then the rate
// limiter, and only then the identity backend.
func (u *AuthUsecase) Signup(ctx context.Context, name, email, password string) (*LoginResult, error) {
	if !validation.ValidName(name) {
		return nil, ErrInvalidName
	}
	if !validation.ValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if !validation.ValidPassword(password) {
		return nil, ErrWeakPassword
	}
	if res := u.limiter.Check(email); !res.Allowed {
		return nil, &RateLimitedError{RetryAfter: res.RetryAfter}
	}

	acct, err := u.identity.CreateAccount(ctx, email, password, name)
	if err != nil {
		return nil, err
	}
	u.limiter.Reset(email)

	return u.establish(acct, SlotUser, jwtmw.RoleUser)
}

// Login authenticates a user and opens the user session slot.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	return u.login(ctx, email, password, email, SlotUser, jwtmw.RoleUser, false)
}

// AdminLogin authenticates an admin. The rate-limit budget is keyed by
// the namespaced admin identifier so user and admin attempts for the
// same email stay independent.
func (u *AuthUsecase) AdminLogin(ctx context.Context, email, password string) (*LoginResult, error) {
	return u.login(ctx, email, password, ratelimit.AdminKey(email), SlotAdmin, jwtmw.RoleAdmin, true)
}

func (u *AuthUsecase) login(ctx context.Context, email, password, limitKey string, slot Slot, role string, requireAdmin bool) (*LoginResult, error) {
	if !validation.ValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if res := u.limiter.Check(limitKey); !res.Allowed {
		return nil, &RateLimitedError{RetryAfter: res.RetryAfter}
	}

	acct, err := u.identity.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if requireAdmin && !acct.IsAdmin {
		// Counts as a failed attempt: the limiter is not reset.
		return nil, domain.ErrNotAdmin
	}

	u.limiter.Reset(limitKey)
	return u.establish(acct, slot, role)
}

// establish stores the session and issues the API token.
func (u *AuthUsecase) establish(acct *entity.Account, slot Slot, role string) (*LoginResult, error) {
	data, err := json.Marshal(profile{Email: acct.Email, Name: acct.Name})
	if err != nil {
		return nil, fmt.Errorf("marshal session data: %w", err)
	}
	if err := u.sessions.Set(slot, acct.ID, data); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	token, err := u.tokens.GenerateToken(acct.ID, acct.Email, role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &LoginResult{Account: acct, Token: token}, nil
}

// Logout clears the user session slot.
func (u *AuthUsecase) Logout() error {
	return u.sessions.Clear(SlotUser)
}

// AdminLogout clears the admin session slot.
func (u *AuthUsecase) AdminLogout() error {
	return u.sessions.Clear(SlotAdmin)
}

// CurrentSession returns the slot's session, or nil when absent or
// expired. Expiry is never an error: an expired session simply reads
// as absent, forcing re-authentication.
func (u *AuthUsecase) CurrentSession(slot Slot) (*entity.Session, error) {
	return u.sessions.Get(slot)
}

// IsLoggedIn reports whether the slot currently holds a live session.
func (u *AuthUsecase) IsLoggedIn(slot Slot) bool {
	s, err := u.sessions.Get(slot)
	return err == nil && s != nil
}
