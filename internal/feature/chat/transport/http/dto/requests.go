package dto

// SendMessageReq is the request body for posting a chat message. The
// display name and avatar come from the client profile; both are
// sanitized server-side before storage.
type SendMessageReq struct {
	Name      string `json:"name" binding:"required"`
	Body      string `json:"body" binding:"required"`
	AvatarURL string `json:"avatarUrl"`
}

// BanReq is the request body for banning a user. DurationSeconds of 0
// means the ban is permanent.
type BanReq struct {
	UserID          string `json:"userId" binding:"required"`
	Reason          string `json:"reason"`
	DurationSeconds int64  `json:"durationSeconds"`
}

// UnbanReq is the request body for lifting a ban.
type UnbanReq struct {
	UserID string `json:"userId" binding:"required"`
}
