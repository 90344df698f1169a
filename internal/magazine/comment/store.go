package comment

import "context"

type Repository interface {
	CreateComment(context context.Context, in *CreateInput) (*Comment, error)
	ListByUser(context context.Context, userID int) ([]*Comment, error)
	ListByArticle(context context.Context, articleID int) ([]*Comment, error)
	GetComment(context context.Context, id int) (*Comment, error)
	GetRecord(context context.Context, id int) (*Record, error)
	UpdateComment(context context.Context, rec *Record) (*Comment, error)
	DeleteComment(context context.Context, id int) (*Comment, error)
}
