package dto

import "time"

// StatusRes is the generic success/failure envelope.
type StatusRes struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ChatStatusRes reports whether a chat session is currently open.
type ChatStatusRes struct {
	Success bool `json:"success"`
	Open    bool `json:"open"`
}

// MessageRes is a single chat message as rendered to clients. Deleted
// messages keep their row but carry a redaction placeholder as Body.
type MessageRes struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"authorId"`
	Name      string    `json:"name"`
	Body      string    `json:"body"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	IsAdmin   bool      `json:"isAdmin"`
	IsDeleted bool      `json:"isDeleted"`
	CreatedAt time.Time `json:"createdAt"`
}

// MessagesRes is the message history, oldest first.
type MessagesRes struct {
	Success  bool         `json:"success"`
	Messages []MessageRes `json:"messages"`
}

// BanRes is a single active ban as rendered to admins.
type BanRes struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	BannedBy  string     `json:"bannedBy"`
	Reason    string     `json:"reason,omitempty"`
	BannedAt  time.Time  `json:"bannedAt"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// BansRes is the list of active bans.
type BansRes struct {
	Success bool     `json:"success"`
	Bans    []BanRes `json:"bans"`
}

// ClearRes reports how many messages a clear-all touched.
type ClearRes struct {
	Success bool  `json:"success"`
	Cleared int64 `json:"cleared"`
}
