package comment

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

// commentSelect is the read projection joining a comment with its user and
// article.
func commentSelect() string {
	return fmt.Sprintf(`
		SELECT c.%s, c.%s,
		       u.%s, u.%s, u.%s, u.%s,
		       c.%s, a.%s,
		       c.%s, c.%s
		FROM %s c
		LEFT JOIN %s u ON c.%s = u.%s
		LEFT JOIN %s a ON c.%s = a.%s
	`,
		schema.Comments.ID, schema.Comments.UserID,
		schema.Users.Username, schema.Users.UserFirst, schema.Users.UserLast, schema.Users.Icon,
		schema.Comments.ArticleID, schema.Articles.ArticleTitle,
		schema.Comments.Text, schema.Comments.PostDate,
		schema.Comments.Table,
		schema.Users.Table, schema.Comments.UserID, schema.Users.ID,
		schema.Articles.Table, schema.Comments.ArticleID, schema.Articles.ID,
	)
}

func scanComment(row interface{ Scan(...any) error }) (*Comment, error) {
	c := &Comment{}
	err := row.Scan(
		&c.ID, &c.UserID,
		&c.Username, &c.UserFirst, &c.UserLast, &c.Icon,
		&c.ArticleID, &c.ArticleTitle,
		&c.Text, &c.PostDate,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (repository *PostgresRepository) queryComments(context context.Context, query string, args ...any) ([]*Comment, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "query_comments")
	}
	defer rows.Close()

	var comments []*Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_comment")
		}
		comments = append(comments, c)
	}

	return comments, rows.Err()
}

func (repository *PostgresRepository) CreateComment(context context.Context, in *CreateInput) (*Comment, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, COALESCE($4, NOW()))
		RETURNING %s
	`,
		schema.Comments.Table, schema.Comments.UserID, schema.Comments.ArticleID,
		schema.Comments.Text, schema.Comments.PostDate,
		schema.Comments.ID,
	)

	var id int
	err := repository.db.QueryRow(context, query, in.UserID, in.ArticleID, in.Text, in.PostDate).Scan(&id)
	if err != nil {
		return nil, dberr.Wrap(err, "create_comment")
	}

	return repository.GetComment(context, id)
}

func (repository *PostgresRepository) ListByUser(context context.Context, userID int) ([]*Comment, error) {
	query := commentSelect() + fmt.Sprintf(` WHERE c.%s = $1`, schema.Comments.UserID)
	return repository.queryComments(context, query, userID)
}

func (repository *PostgresRepository) ListByArticle(context context.Context, articleID int) ([]*Comment, error) {
	query := commentSelect() + fmt.Sprintf(` WHERE c.%s = $1`, schema.Comments.ArticleID)
	return repository.queryComments(context, query, articleID)
}

func (repository *PostgresRepository) GetComment(context context.Context, id int) (*Comment, error) {
	query := commentSelect() + fmt.Sprintf(` WHERE c.%s = $1`, schema.Comments.ID)

	c, err := scanComment(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_comment")
	}
	return c, nil
}

func (repository *PostgresRepository) GetRecord(context context.Context, id int) (*Record, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Comments.ID, schema.Comments.UserID, schema.Comments.ArticleID,
		schema.Comments.Text, schema.Comments.PostDate,
		schema.Comments.Table, schema.Comments.ID,
	)
	rec := &Record{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&rec.ID, &rec.UserID, &rec.ArticleID, &rec.Text, &rec.PostDate,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_comment_record")
	}

	return rec, nil
}

func (repository *PostgresRepository) UpdateComment(context context.Context, rec *Record) (*Comment, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5
		WHERE %s = $1
	`,
		schema.Comments.Table,
		schema.Comments.UserID, schema.Comments.ArticleID, schema.Comments.Text, schema.Comments.PostDate,
		schema.Comments.ID,
	)

	cmd, err := repository.db.Exec(context, query, rec.ID, rec.UserID, rec.ArticleID, rec.Text, rec.PostDate)
	if err != nil {
		return nil, dberr.Wrap(err, "update_comment")
	}
	if cmd.RowsAffected() == 0 {
		return nil, dberr.ErrNotFound
	}

	return repository.GetComment(context, rec.ID)
}

func (repository *PostgresRepository) DeleteComment(context context.Context, id int) (*Comment, error) {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1
		RETURNING %s, %s,
			(SELECT %s FROM %s WHERE %s = %s),
			(SELECT %s FROM %s WHERE %s = %s),
			(SELECT %s FROM %s WHERE %s = %s),
			(SELECT %s FROM %s WHERE %s = %s),
			%s,
			(SELECT %s FROM %s WHERE %s = %s),
			%s, %s
	`,
		schema.Comments.Table, schema.Comments.ID,
		schema.Comments.ID, schema.Comments.UserID,
		schema.Users.Username, schema.Users.Table, schema.Users.ID, schema.Comments.UserID,
		schema.Users.UserFirst, schema.Users.Table, schema.Users.ID, schema.Comments.UserID,
		schema.Users.UserLast, schema.Users.Table, schema.Users.ID, schema.Comments.UserID,
		schema.Users.Icon, schema.Users.Table, schema.Users.ID, schema.Comments.UserID,
		schema.Comments.ArticleID,
		schema.Articles.ArticleTitle, schema.Articles.Table, schema.Articles.ID, schema.Comments.ArticleID,
		schema.Comments.Text, schema.Comments.PostDate,
	)

	c, err := scanComment(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "delete_comment")
	}
	return c, nil
}
