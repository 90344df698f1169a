package keyword

import "context"

// Repository is the storage contract for keyword associations.
type Repository interface {
	// AddToArticle associates one keyword with one article and returns the
	// article's title. A duplicate pair surfaces as a unique violation.
	AddToArticle(ctx context.Context, articleID int, keyword string) (string, error)

	// AddToAllArticles associates one keyword with every existing article,
	// skipping articles that already carry it.
	AddToAllArticles(ctx context.Context, keyword string) error

	// ListAssociations returns every (keyword, article) pair.
	ListAssociations(ctx context.Context) ([]*Association, error)

	// ListArticleKeywords returns the keywords on one article.
	ListArticleKeywords(ctx context.Context, articleID int) ([]*Row, error)

	// Rename changes a keyword's value on one article.
	Rename(ctx context.Context, articleID int, keyword, edit string) error

	// RenameAll changes a keyword's value everywhere it appears.
	RenameAll(ctx context.Context, keyword, edit string) error

	// Remove deletes a keyword from one article.
	Remove(ctx context.Context, articleID int, keyword string) error

	// RemoveAll deletes a keyword everywhere it appears.
	RemoveAll(ctx context.Context, keyword string) error

	// GetArticleTitle looks up the title of the article being operated on.
	GetArticleTitle(ctx context.Context, articleID int) (string, error)
}
