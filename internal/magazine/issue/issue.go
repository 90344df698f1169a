package issue

import "time"

// Issue represents a published edition of the magazine.
type Issue struct {
	ID         int       `json:"id"`
	IssueTitle string    `json:"issueTitle"`
	Volume     int       `json:"volume"`
	IssueNum   int       `json:"issueNum"`
	PubDate    time.Time `json:"pubDate"`
}

// ArticleRow is one row of an issue detail view: the issue joined against its
// articles and their authors. The article side is nullable because an issue
// can exist with no articles yet.
type ArticleRow struct {
	IssueTitle   string    `json:"issueTitle"`
	Volume       int       `json:"volume"`
	IssueNum     int       `json:"issueNum"`
	PubDate      time.Time `json:"pubDate"`
	ArticleID    *int      `json:"articleId"`
	ArticleTitle *string   `json:"articleTitle"`
	Text         *string   `json:"text"`
	AuthorFirst  *string   `json:"authorFirst"`
	AuthorLast   *string   `json:"authorLast"`
	AuthorHandle *string   `json:"authorHandle"`
}

// CreateInput carries the new-issue form. PubDate is optional and defaults to
// the insertion time.
type CreateInput struct {
	IssueTitle string     `json:"issueTitle"`
	Volume     int        `json:"volume"`
	IssueNum   int        `json:"issueNum"`
	PubDate    *time.Time `json:"pubDate"`
}

// UpdateInput carries a partial update; zero values fall back to stored ones.
type UpdateInput struct {
	IssueTitle string     `json:"issueTitle"`
	Volume     int        `json:"volume"`
	IssueNum   int        `json:"issueNum"`
	PubDate    *time.Time `json:"pubDate"`
}

// Field names for validation messages
const (
	FieldTitle    = "issueTitle"
	FieldVolume   = "volume"
	FieldIssueNum = "issueNum"
)
