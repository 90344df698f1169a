package issue

import "context"

type Repository interface {
	ListIssues(context context.Context) ([]*Issue, error)
	GetIssueByID(context context.Context, id int) (*Issue, error)
	GetIssueArticles(context context.Context, id int) ([]*ArticleRow, error)
	GetIssueArticlesByTitle(context context.Context, title string) ([]*ArticleRow, error)
	GetCurrentIssueArticles(context context.Context) ([]*ArticleRow, error)
	TitleExists(context context.Context, title string) (bool, error)
	CreateIssue(context context.Context, in *CreateInput) (*Issue, error)
	UpdateIssue(context context.Context, i *Issue) error
	DeleteIssue(context context.Context, id int) (*Issue, error)
}
