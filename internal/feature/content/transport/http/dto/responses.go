package dto

import "time"

// StatusRes is the generic success/failure envelope.
type StatusRes struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ArticleRes is an article as rendered to clients.
type ArticleRes struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	TitleAR   string    `json:"titleAr"`
	TitleEN   string    `json:"titleEn"`
	BodyAR    string    `json:"bodyAr"`
	BodyEN    string    `json:"bodyEn"`
	CoverURL  string    `json:"coverUrl,omitempty"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ArticleItemRes wraps a single article.
type ArticleItemRes struct {
	Success bool       `json:"success"`
	Article ArticleRes `json:"article"`
}

// ArticlesRes wraps an article list, oldest first.
type ArticlesRes struct {
	Success  bool         `json:"success"`
	Articles []ArticleRes `json:"articles"`
}

// PreviewLinkRes carries a freshly issued draft preview token.
type PreviewLinkRes struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// ProjectRes is a project as rendered to clients.
type ProjectRes struct {
	ID            string    `json:"id"`
	Slug          string    `json:"slug"`
	TitleAR       string    `json:"titleAr"`
	TitleEN       string    `json:"titleEn"`
	DescriptionAR string    `json:"descriptionAr"`
	DescriptionEN string    `json:"descriptionEn"`
	RepoURL       string    `json:"repoUrl,omitempty"`
	LiveURL       string    `json:"liveUrl,omitempty"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	Published     bool      `json:"published"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ProjectItemRes wraps a single project.
type ProjectItemRes struct {
	Success bool       `json:"success"`
	Project ProjectRes `json:"project"`
}

// ProjectsRes wraps a project list, oldest first.
type ProjectsRes struct {
	Success  bool         `json:"success"`
	Projects []ProjectRes `json:"projects"`
}
