package user

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tigerlilly/api/internal/platform/database/schema"
	"github.com/tigerlilly/api/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListUsers(context context.Context) ([]*User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY LOWER(%s)
	`,
		schema.Users.ID, schema.Users.Username, schema.Users.UserFirst, schema.Users.UserLast,
		schema.Users.Email, schema.Users.IsAdmin, schema.Users.Icon,
		schema.Users.Table, schema.Users.Username,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_users")
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		u := &User{}
		if err := rows.Scan(&u.ID, &u.Username, &u.UserFirst, &u.UserLast, &u.Email, &u.IsAdmin, &u.Icon); err != nil {
			return nil, dberr.Wrap(err, "scan_user")
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// GetUserByUsername returns the full row including the password hash; callers
// presenting the user must not serialize it.
func (repository *PostgresRepository) GetUserByUsername(context context.Context, username string) (*User, error) {
	return repository.getUser(context, schema.Users.Username, username)
}

func (repository *PostgresRepository) GetUserByID(context context.Context, id int) (*User, error) {
	return repository.getUser(context, schema.Users.ID, id)
}

func (repository *PostgresRepository) getUser(context context.Context, column string, key any) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Users.ID, schema.Users.Username, schema.Users.Password, schema.Users.UserFirst,
		schema.Users.UserLast, schema.Users.Email, schema.Users.IsAdmin, schema.Users.Icon,
		schema.Users.Table, column,
	)
	u := &User{}

	err := repository.db.QueryRow(context, query, key).Scan(
		&u.ID, &u.Username, &u.Password, &u.UserFirst, &u.UserLast, &u.Email, &u.IsAdmin, &u.Icon,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_user")
	}

	return u, nil
}

func (repository *PostgresRepository) UsernameExists(context context.Context, username string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.Users.Table, schema.Users.Username,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, username).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "username_exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) CreateUser(context context.Context, u *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s
	`,
		schema.Users.Table, schema.Users.Username, schema.Users.Password, schema.Users.UserFirst,
		schema.Users.UserLast, schema.Users.Email, schema.Users.IsAdmin, schema.Users.Icon,
		schema.Users.ID,
	)

	err := repository.db.QueryRow(context, query,
		u.Username, u.Password, u.UserFirst, u.UserLast, u.Email, u.IsAdmin, u.Icon,
	).Scan(&u.ID)

	return dberr.Wrap(err, "create_user")
}

func (repository *PostgresRepository) UpdateUser(context context.Context, u *User) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8
		WHERE %s = $1
	`,
		schema.Users.Table,
		schema.Users.Username, schema.Users.Password, schema.Users.UserFirst, schema.Users.UserLast,
		schema.Users.Email, schema.Users.IsAdmin, schema.Users.Icon,
		schema.Users.ID,
	)

	cmd, err := repository.db.Exec(context, query,
		u.ID, u.Username, u.Password, u.UserFirst, u.UserLast, u.Email, u.IsAdmin, u.Icon,
	)
	if err != nil {
		return dberr.Wrap(err, "update_user")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteUser(context context.Context, id int) (*DeletedUser, error) {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1
		RETURNING %s, %s, %s
	`,
		schema.Users.Table, schema.Users.ID,
		schema.Users.Username, schema.Users.UserFirst, schema.Users.UserLast,
	)
	deleted := &DeletedUser{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&deleted.Username, &deleted.UserFirst, &deleted.UserLast,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "delete_user")
	}

	return deleted, nil
}

func (repository *PostgresRepository) CreateFeedback(context context.Context, f *Feedback) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s, %s
	`,
		schema.Feedback.Table, schema.Feedback.Name, schema.Feedback.Email, schema.Feedback.FeedbackText,
		schema.Feedback.ID, schema.Feedback.ReceivedAt,
	)

	err := repository.db.QueryRow(context, query, f.Name, f.Email, f.FeedbackText).Scan(&f.ID, &f.ReceivedAt)
	return dberr.Wrap(err, "create_feedback")
}
