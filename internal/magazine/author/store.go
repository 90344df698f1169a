package author

import "context"

type Repository interface {
	ListAuthors(context context.Context) ([]*Author, error)
	GetAuthorByHandle(context context.Context, handle string) (*Author, error)
	GetAuthorByID(context context.Context, id int) (*Author, error)
	HandleExists(context context.Context, handle string) (bool, error)
	CreateAuthor(context context.Context, a *Author) error
	UpdateAuthor(context context.Context, a *Author) error
	DeleteAuthor(context context.Context, id int) (*Author, error)
}
