// Package token implements the self-describing access token used for
// resource-level authorization checks independent of the login session.
package token

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"
)

// DefaultTTL matches the session lifetime.
const DefaultTTL = 24 * time.Hour

// Scheme issues and checks reversible capability tokens binding a
// subject to a resource for a bounded time. The encoding is not a
// signature: any holder of the subject and resource ids can mint a
// matching token. It is an expiry-and-binding convention only and must
// not be treated as a tamper-proof authorization boundary.
type Scheme struct {
	ttl time.Duration
	now func() time.Time
}

// NewScheme creates a Scheme. A non-positive ttl falls back to
// DefaultTTL.
func NewScheme(ttl time.Duration) *Scheme {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Scheme{ttl: ttl, now: time.Now}
}

// Generate encodes subjectID, resourceID and the issuance time. The
// ids must not contain ':'.
func (s *Scheme) Generate(subjectID, resourceID string) string {
	raw := subjectID + ":" + resourceID + ":" + strconv.FormatInt(s.now().UnixMilli(), 10)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// Validate reports whether tok decodes to the expected subject/resource
// pair and was issued less than the TTL ago. Any decoding failure is an
// invalid token, never an error.
func (s *Scheme) Validate(tok, subjectID, resourceID string) bool {
	raw, err := base64.RawURLEncoding.DecodeString(tok)
	if err != nil {
		return false
	}
	parts := strings.Split(string(raw), ":")
	if len(parts) != 3 {
		return false
	}
	if parts[0] != subjectID || parts[1] != resourceID {
		return false
	}
	millis, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return false
	}
	return s.now().Sub(time.UnixMilli(millis)) < s.ttl
}

// SetClock replaces the time source. Test hook.
func (s *Scheme) SetClock(now func() time.Time) {
	s.now = now
}
