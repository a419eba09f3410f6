// Package entity defines the persisted content types. Every
// user-facing text field carries an Arabic and an English variant;
// clients pick per the viewer's locale.
package entity

import (
	"time"

	"gorm.io/gorm"
)

// Article is a published piece of writing. Bodies hold sanitized
// rich-text HTML. Rows are soft-deleted so slugs stay reserved.
type Article struct {
	ID        string `gorm:"primaryKey;size:36"`
	Slug      string `gorm:"uniqueIndex;size:80"`
	TitleAR   string `gorm:"size:200"`
	TitleEN   string `gorm:"size:200"`
	BodyAR    string
	BodyEN    string
	CoverURL  string
	Published bool
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
