// Package ratelimit implements the fixed-window login throttle with
// lockout that fronts every authentication attempt.
package ratelimit

import (
	"sync"
	"time"
)

const (
	// DefaultMaxAttempts is the number of attempts allowed before the
	// next check trips the lockout.
	DefaultMaxAttempts = 5

	// DefaultLockout is how long an identifier stays locked out.
	DefaultLockout = 15 * time.Minute
)

// Result is the outcome of a rate-limit check.
type Result struct {
	Allowed bool
	// RetryAfter is the number of seconds until the lockout ends,
	// zero when the attempt is allowed.
	RetryAfter int
}

type record struct {
	count       int
	lastAttempt time.Time
	lockedUntil time.Time // zero while no lockout is set
}

// Limiter tracks attempt counts per identifier. It is an explicitly
// owned state container injected into its consumers, never package
// globals, so tests and tenants get isolated instances. State is
// process-local and lost on restart.
type Limiter struct {
	mu          sync.Mutex
	maxAttempts int
	lockout     time.Duration
	records     map[string]*record
	now         func() time.Time
}

// New creates a Limiter. Non-positive arguments fall back to the
// defaults.
func New(maxAttempts int, lockout time.Duration) *Limiter {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if lockout <= 0 {
		lockout = DefaultLockout
	}
	return &Limiter{
		maxAttempts: maxAttempts,
		lockout:     lockout,
		records:     make(map[string]*record),
		now:         time.Now,
	}
}

// AdminKey namespaces an email so admin and user attempts for the same
// address never share a budget.
func AdminKey(email string) string {
	return "admin_" + email
}

// Check records an attempt for identifier and reports whether it may
// proceed. The caller invokes Check before the authentication call and
// Reset after a successful one.
func (l *Limiter) Check(identifier string) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	rec, ok := l.records[identifier]
	if !ok {
		l.records[identifier] = &record{count: 1, lastAttempt: now}
		return Result{Allowed: true}
	}

	if !rec.lockedUntil.IsZero() {
		if now.Before(rec.lockedUntil) {
			return Result{RetryAfter: ceilSeconds(rec.lockedUntil.Sub(now))}
		}
		// Lockout elapsed: fresh window.
		*rec = record{count: 1, lastAttempt: now}
		return Result{Allowed: true}
	}

	if rec.count >= l.maxAttempts {
		rec.lockedUntil = now.Add(l.lockout)
		rec.lastAttempt = now
		return Result{RetryAfter: int(l.lockout / time.Second)}
	}

	rec.count++
	rec.lastAttempt = now
	return Result{Allowed: true}
}

// Reset deletes the record outright, so the next Check behaves like a
// first-ever attempt.
func (l *Limiter) Reset(identifier string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.records, identifier)
}

// SetClock replaces the time source. Test hook.
func (l *Limiter) SetClock(now func() time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
}

func ceilSeconds(d time.Duration) int {
	return int((d + time.Second - 1) / time.Second)
}
