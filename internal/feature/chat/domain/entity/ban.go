package entity

import (
	"time"

	"manassa_backend/internal/shared/expiry"
)

// Ban is a moderation record. IsActive is the source of truth for
// "currently banned"; a record whose ExpiresAt has passed is treated as
// inactive even while the flag is stale, and the flag is flipped lazily
// on the next lookup. Records are never deleted.
type Ban struct {
	ID       string `gorm:"primaryKey;size:36"`
	UserID   string `gorm:"size:36;index;not null"`
	BannedBy string `gorm:"size:36;not null"`
	Reason   string `gorm:"size:512"`
	IsActive bool   `gorm:"not null;index"`

	BannedAt time.Time `gorm:"autoCreateTime"`

	// ExpiresAt is nil for a permanent ban.
	ExpiresAt *time.Time
}

// Expired reports whether a temporary ban has lapsed at now.
func (b *Ban) Expired(now time.Time) bool {
	return expiry.Past(b.ExpiresAt, now)
}
