package usecase

import "errors"

var (
	ErrInvalidSlug     = errors.New("slug must be lowercase words joined by hyphens")
	ErrInvalidTitle    = errors.New("both title variants must be 2-200 characters")
	ErrInvalidURL      = errors.New("url must be absolute http or https")
	ErrSlugInUse       = errors.New("slug already in use")
	ErrArticleNotFound = errors.New("article not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrInvalidPreview  = errors.New("preview token invalid or expired")
)
