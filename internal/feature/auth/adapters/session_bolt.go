package adapters

import (
	"encoding/json"
	"fmt"
	"time"

	"manassa_backend/internal/feature/auth/domain/entity"
	"manassa_backend/internal/feature/auth/usecase"
	"manassa_backend/internal/platform/kv"
	"manassa_backend/internal/shared/expiry"
)

// SessionBucket is the bbolt bucket holding the session slots.
const SessionBucket = "sessions"

// DefaultSessionTTL is the fixed session lifetime.
const DefaultSessionTTL = 24 * time.Hour

// sessionBolt implements usecase.SessionStore on the local key-value
// store. Each slot is one key; expiry is enforced lazily on read, with
// no background sweep.
type sessionBolt struct {
	store kv.Store
	ttl   time.Duration
	now   func() time.Time
}

var _ usecase.SessionStore = (*sessionBolt)(nil)

// NewSessionBolt creates a sessionBolt. A non-positive ttl falls back
// to DefaultSessionTTL.
func NewSessionBolt(store kv.Store, ttl time.Duration) *sessionBolt {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &sessionBolt{store: store, ttl: ttl, now: time.Now}
}

// Set overwrites the slot unconditionally with a fresh TTL.
func (s *sessionBolt) Set(slot usecase.Slot, subjectID string, data []byte) error {
	now := s.now()
	rec := expiry.Record[entity.Session]{
		Value: entity.Session{
			SubjectID: subjectID,
			Data:      data,
			IssuedAt:  now,
			ExpiresAt: now.Add(s.ttl),
		},
		ExpiresAt: now.Add(s.ttl),
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.store.Put(SessionBucket, string(slot), raw)
}

// Get returns the slot's session, or nil when absent. A session past
// its expiry is cleared as a side effect and reads as absent.
func (s *sessionBolt) Get(slot usecase.Slot) (*entity.Session, error) {
	raw, err := s.store.Get(SessionBucket, string(slot))
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var rec expiry.Record[entity.Session]
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}

	sess, ok := rec.Get(s.now())
	if !ok {
		// Lazy expiry: clear the slot on first read past ExpiresAt.
		if err := s.store.Delete(SessionBucket, string(slot)); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return &sess, nil
}

// Clear removes the slot unconditionally.
func (s *sessionBolt) Clear(slot usecase.Slot) error {
	return s.store.Delete(SessionBucket, string(slot))
}

// SetClock replaces the time source. Test hook.
func (s *sessionBolt) SetClock(now func() time.Time) {
	s.now = now
}
