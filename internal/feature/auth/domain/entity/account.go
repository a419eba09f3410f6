// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Account is a registered identity. IsAdmin gates the moderation and
// publishing surfaces.
type Account struct {
	// ID is the opaque subject identifier (UUID).
	ID string `gorm:"primaryKey;size:36"`

	// Email is the address used for authentication, unique across
	// accounts.
	Email string `gorm:"uniqueIndex;size:100;not null"`

	// Name is the display name shown in chat and on published content.
	Name string `gorm:"size:50;not null"`

	// PasswordHash holds the bcrypt hash. Never a plaintext password.
	PasswordHash string `gorm:"size:255;not null"`

	// IsAdmin marks accounts allowed on the admin surface.
	IsAdmin bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
