package article

// Article is the denormalized read shape: the article row flattened together
// with its author and issue. The joined fields are nullable because both
// foreign keys are optional and survive parent deletion as NULL.
type Article struct {
	ID           int     `json:"id"`
	ArticleTitle string  `json:"articleTitle"`
	AuthorFirst  *string `json:"authorFirst"`
	AuthorLast   *string `json:"authorLast"`
	AuthorHandle *string `json:"authorHandle"`
	AuthorID     *int    `json:"authorId"`
	Text         string  `json:"text"`
	IssueTitle   *string `json:"issueTitle"`
	IssueID      *int    `json:"issueId"`
}

// Record is the bare articles row, used as the fetch-then-write shape for
// partial updates.
type Record struct {
	ID           int
	ArticleTitle string
	Text         string
	AuthorID     *int
	IssueID      *int
}

// CreateInput carries the new-article form. AuthorID and IssueID are
// independently optional and persist as NULL when absent.
type CreateInput struct {
	ArticleTitle string `json:"articleTitle"`
	Text         string `json:"text"`
	AuthorID     *int   `json:"authorId"`
	IssueID      *int   `json:"issueId"`
}

// UpdateInput carries a partial update; absent fields fall back to stored
// values.
type UpdateInput struct {
	ArticleTitle string `json:"articleTitle"`
	Text         string `json:"text"`
	AuthorID     *int   `json:"authorId"`
	IssueID      *int   `json:"issueId"`
}

// Field names for validation messages
const (
	FieldTitle = "articleTitle"
	FieldText  = "text"
)

// TagMarker prefixes a search term that should be looked up in the keyword
// table instead of the article text.
const TagMarker = "*"
