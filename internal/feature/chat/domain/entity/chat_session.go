package entity

import "time"

// Participants is the set of user ids that have posted in a session,
// stored as a JSON array column.
type Participants []string

// Contains reports whether id is already in the set.
func (p Participants) Contains(id string) bool {
	for _, v := range p {
		if v == id {
			return true
		}
	}
	return false
}

// Add returns the set with id added. Adding an existing id is a no-op.
func (p Participants) Add(id string) Participants {
	if p.Contains(id) {
		return p
	}
	return append(p, id)
}

// ChatSession tracks whether the chat surface is open. At most one row
// has IsOpen=true at a time; the moderation policy enforces this, not
// the store.
type ChatSession struct {
	ID           string       `gorm:"primaryKey;size:36"`
	IsOpen       bool         `gorm:"not null;index"`
	OpenedBy     string       `gorm:"size:36;not null"`
	ClosedBy     string       `gorm:"size:36"`
	Participants Participants `gorm:"serializer:json"`
	MessageCount int          `gorm:"not null;default:0"`
	OpenedAt     time.Time    `gorm:"autoCreateTime"`
	ClosedAt     *time.Time
}
