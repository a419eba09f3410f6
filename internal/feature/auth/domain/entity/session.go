package entity

import (
	"encoding/json"
	"time"
)

// Session is a login record held in the local key-value store. There
// are exactly two slots, one for the user and one for the admin, each
// holding at most one Session.
type Session struct {
	SubjectID string          `json:"subject_id"`
	Data      json.RawMessage `json:"data,omitempty"` // opaque subject blob (profile)
	IssuedAt  time.Time       `json:"issued_at"`
	ExpiresAt time.Time       `json:"expires_at"`
}
