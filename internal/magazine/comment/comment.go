package comment

import "time"

// Comment is the denormalized read shape: the comment row joined with its
// user and article. Both references are optional and survive parent deletion
// as NULL.
type Comment struct {
	ID           int       `json:"id"`
	UserID       *int      `json:"userId"`
	Username     *string   `json:"username"`
	UserFirst    *string   `json:"userFirst,omitempty"`
	UserLast     *string   `json:"userLast,omitempty"`
	Icon         *string   `json:"icon,omitempty"`
	ArticleID    *int      `json:"articleId,omitempty"`
	ArticleTitle *string   `json:"articleTitle"`
	Text         string    `json:"text"`
	PostDate     time.Time `json:"postDate"`
}

// Record is the bare comments row, used as the fetch-then-write shape for
// partial updates.
type Record struct {
	ID        int
	UserID    *int
	ArticleID *int
	Text      string
	PostDate  time.Time
}

// CreateInput carries the new-comment form. PostDate defaults to the
// insertion time when absent.
type CreateInput struct {
	UserID    *int       `json:"userId"`
	ArticleID *int       `json:"articleId"`
	Text      string     `json:"text"`
	PostDate  *time.Time `json:"postDate"`
}

// UpdateInput carries a partial update; absent fields fall back to stored
// values.
type UpdateInput struct {
	UserID    *int       `json:"userId"`
	ArticleID *int       `json:"articleId"`
	Text      string     `json:"text"`
	PostDate  *time.Time `json:"postDate"`
}

// FieldText names the comment body in validation messages.
const FieldText = "text"
