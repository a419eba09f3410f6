package entity

import (
	"time"

	"gorm.io/gorm"
)

// Project is a portfolio entry. Descriptions hold sanitized rich-text
// HTML; the three URLs are validated on write.
type Project struct {
	ID            string `gorm:"primaryKey;size:36"`
	Slug          string `gorm:"uniqueIndex;size:80"`
	TitleAR       string `gorm:"size:200"`
	TitleEN       string `gorm:"size:200"`
	DescriptionAR string
	DescriptionEN string
	RepoURL       string
	LiveURL       string
	ImageURL      string
	Published     bool
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}
