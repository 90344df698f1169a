package user

import "context"

type Repository interface {
	ListUsers(context context.Context) ([]*User, error)
	GetUserByUsername(context context.Context, username string) (*User, error)
	GetUserByID(context context.Context, id int) (*User, error)
	UsernameExists(context context.Context, username string) (bool, error)
	CreateUser(context context.Context, u *User) error
	UpdateUser(context context.Context, u *User) error
	DeleteUser(context context.Context, id int) (*DeletedUser, error)
	CreateFeedback(context context.Context, f *Feedback) error
}
