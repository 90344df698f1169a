package author

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

func (repository *PostgresRepository) ListAuthors(context context.Context) ([]*Author, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY LOWER(%s)
	`,
		schema.Authors.ID, schema.Authors.AuthorFirst, schema.Authors.AuthorLast,
		schema.Authors.AuthorHandle, schema.Authors.AuthorSlogan, schema.Authors.AuthorBio,
		schema.Authors.Icon, schema.Authors.Table, schema.Authors.AuthorLast,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_authors")
	}
	defer rows.Close()

	var authors []*Author
	for rows.Next() {
		a := &Author{}
		if err := rows.Scan(&a.ID, &a.AuthorFirst, &a.AuthorLast, &a.AuthorHandle, &a.AuthorSlogan, &a.AuthorBio, &a.Icon); err != nil {
			return nil, dberr.Wrap(err, "scan_author")
		}
		authors = append(authors, a)
	}

	return authors, rows.Err()
}

func (repository *PostgresRepository) GetAuthorByHandle(context context.Context, handle string) (*Author, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Authors.ID, schema.Authors.AuthorFirst, schema.Authors.AuthorLast,
		schema.Authors.AuthorHandle, schema.Authors.AuthorSlogan, schema.Authors.AuthorBio,
		schema.Authors.Icon, schema.Authors.Table, schema.Authors.AuthorHandle,
	)
	a := &Author{}

	err := repository.db.QueryRow(context, query, handle).Scan(
		&a.ID, &a.AuthorFirst, &a.AuthorLast, &a.AuthorHandle, &a.AuthorSlogan, &a.AuthorBio, &a.Icon,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_author_by_handle")
	}

	return a, nil
}

func (repository *PostgresRepository) GetAuthorByID(context context.Context, id int) (*Author, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Authors.ID, schema.Authors.AuthorFirst, schema.Authors.AuthorLast,
		schema.Authors.AuthorHandle, schema.Authors.AuthorSlogan, schema.Authors.AuthorBio,
		schema.Authors.Icon, schema.Authors.Table, schema.Authors.ID,
	)
	a := &Author{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&a.ID, &a.AuthorFirst, &a.AuthorLast, &a.AuthorHandle, &a.AuthorSlogan, &a.AuthorBio, &a.Icon,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_author_by_id")
	}

	return a, nil
}

func (repository *PostgresRepository) HandleExists(context context.Context, handle string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.Authors.Table, schema.Authors.AuthorHandle,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, handle).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "author_handle_exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) CreateAuthor(context context.Context, a *Author) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s, CONCAT(%s, ' ', %s)
	`,
		schema.Authors.Table, schema.Authors.AuthorFirst, schema.Authors.AuthorLast,
		schema.Authors.AuthorHandle, schema.Authors.AuthorSlogan, schema.Authors.AuthorBio,
		schema.Authors.Icon,
		schema.Authors.ID, schema.Authors.AuthorFirst, schema.Authors.AuthorLast,
	)

	err := repository.db.QueryRow(context, query,
		a.AuthorFirst, a.AuthorLast, a.AuthorHandle, a.AuthorSlogan, a.AuthorBio, a.Icon,
	).Scan(&a.ID, &a.Author)

	return dberr.Wrap(err, "create_author")
}

func (repository *PostgresRepository) UpdateAuthor(context context.Context, a *Author) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7
		WHERE %s = $1
		RETURNING CONCAT(%s, ' ', %s)
	`,
		schema.Authors.Table,
		schema.Authors.AuthorFirst, schema.Authors.AuthorLast, schema.Authors.AuthorHandle,
		schema.Authors.AuthorSlogan, schema.Authors.AuthorBio, schema.Authors.Icon,
		schema.Authors.ID,
		schema.Authors.AuthorFirst, schema.Authors.AuthorLast,
	)

	err := repository.db.QueryRow(context, query,
		a.ID, a.AuthorFirst, a.AuthorLast, a.AuthorHandle, a.AuthorSlogan, a.AuthorBio, a.Icon,
	).Scan(&a.Author)

	return dberr.Wrap(err, "update_author")
}

func (repository *PostgresRepository) DeleteAuthor(context context.Context, id int) (*Author, error) {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1
		RETURNING %s, CONCAT(%s, ' ', %s), %s, %s, %s, %s, %s, %s
	`,
		schema.Authors.Table, schema.Authors.ID,
		schema.Authors.ID, schema.Authors.AuthorFirst, schema.Authors.AuthorLast,
		schema.Authors.AuthorFirst, schema.Authors.AuthorLast, schema.Authors.AuthorHandle,
		schema.Authors.AuthorSlogan, schema.Authors.AuthorBio, schema.Authors.Icon,
	)
	a := &Author{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&a.ID, &a.Author, &a.AuthorFirst, &a.AuthorLast, &a.AuthorHandle, &a.AuthorSlogan, &a.AuthorBio, &a.Icon,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "delete_author")
	}

	return a, nil
}
