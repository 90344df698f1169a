// Package keyword manages the free-text tag associations on articles. There
// is no keyword entity; the tag string itself, paired with an article id, is
// the whole record.
package keyword

// Association is one (keyword, article) pair in the full admin listing.
type Association struct {
	Keyword      string  `json:"keyword"`
	ArticleID    *int    `json:"articleId"`
	ArticleTitle *string `json:"articleTitle"`
}

// Row is a bare keyword in a per-article listing.
type Row struct {
	Keyword string `json:"keyword"`
}

// AddInput is the request body for associating keywords with an article. An
// ArticleID of zero broadcasts the keywords to every existing article.
type AddInput struct {
	ArticleID int      `json:"articleId"`
	Keywords  []string `json:"keywords"`
}

// AddResult echoes a successful add.
type AddResult struct {
	ArticleTitle string   `json:"articleTitle"`
	Keywords     []string `json:"keywords"`
}

// EditInput is the request body for renaming a keyword.
type EditInput struct {
	Keyword string `json:"keyword"`
	Edit    string `json:"edit"`
}

// EditResult echoes a rename or removal.
type EditResult struct {
	ArticleTitle string `json:"articleTitle"`
	Keyword      string `json:"keyword"`
}

const (
	FieldKeyword  = "keyword"
	FieldKeywords = "keywords"
	FieldEdit     = "edit"
)
