// Package entity defines the domain entities for the chat feature.
package entity

import "time"

// Message is a chat message. Deletion is soft and terminal: the body is
// retained but rendered redacted, and IsDeleted never flips back.
type Message struct {
	ID          string `gorm:"primaryKey;size:36"`
	AuthorID    string `gorm:"size:36;index;not null"`
	// DisplayName and Body are stored sanitized, and sanitization can
	// expand its input several-fold (entity escaping), so both columns
	// are unbounded text rather than sized varchars.
	DisplayName string `gorm:"type:text;not null"`
	Body        string `gorm:"type:text;not null"`
	AvatarURL   string `gorm:"size:255"`
	IsAdmin     bool   `gorm:"not null;default:false"`
	IsDeleted   bool   `gorm:"not null;default:false;index"`
	DeletedBy   string `gorm:"size:36"`

	// CreatedAt is assigned by the store, keeping ordering consistent
	// across writers.
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}
