package article

import "context"

type Repository interface {
	ListArticles(context context.Context) ([]*Article, error)
	GetArticle(context context.Context, id int) (*Article, error)
	GetArticleByTitle(context context.Context, title string) (*Article, error)
	ListArticlesByAuthorHandle(context context.Context, handle string) ([]*Article, error)
	ListArticlesByKeyword(context context.Context, keyword string) ([]*Article, error)
	SearchTextIDs(context context.Context, terms []string) ([]int, error)
	SearchKeywordIDs(context context.Context, tags []string) ([]int, error)
	TitleExists(context context.Context, title string) (bool, error)
	GetRecord(context context.Context, id int) (*Record, error)
	CreateArticle(context context.Context, in *CreateInput) (*Article, error)
	UpdateArticle(context context.Context, rec *Record) (*Article, error)
	DeleteArticle(context context.Context, id int) (*Article, error)
}
