package dto

// ArticleReq is the request body for creating or updating an article.
type ArticleReq struct {
	Slug      string `json:"slug" binding:"required"`
	TitleAR   string `json:"titleAr" binding:"required"`
	TitleEN   string `json:"titleEn" binding:"required"`
	BodyAR    string `json:"bodyAr"`
	BodyEN    string `json:"bodyEn"`
	CoverURL  string `json:"coverUrl"`
	Published bool   `json:"published"`
}

// ProjectReq is the request body for creating or updating a project.
type ProjectReq struct {
	Slug          string `json:"slug" binding:"required"`
	TitleAR       string `json:"titleAr" binding:"required"`
	TitleEN       string `json:"titleEn" binding:"required"`
	DescriptionAR string `json:"descriptionAr"`
	DescriptionEN string `json:"descriptionEn"`
	RepoURL       string `json:"repoUrl"`
	LiveURL       string `json:"liveUrl"`
	ImageURL      string `json:"imageUrl"`
	Published     bool   `json:"published"`
}
