// Package expiry unifies the lazy-expiry checks used by the session
// store and the ban lookup path: expiration is detected at read time,
// never by a background sweep.
package expiry

import "time"

// Record pairs a value with its expiry instant.
type Record[T any] struct {
	Value     T         `json:"value"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Get returns the value while the record is still live at now.
func (r Record[T]) Get(now time.Time) (T, bool) {
	if r.Expired(now) {
		var zero T
		return zero, false
	}
	return r.Value, true
}

// Expired reports whether the record has passed its expiry at now.
// A zero ExpiresAt never expires.
func (r Record[T]) Expired(now time.Time) bool {
	return !r.ExpiresAt.IsZero() && now.After(r.ExpiresAt)
}

// Past reports whether an optional expiry instant is set and already
// behind now. Used for records that carry a nullable expiry column.
func Past(expiresAt *time.Time, now time.Time) bool {
	return expiresAt != nil && now.After(*expiresAt)
}
