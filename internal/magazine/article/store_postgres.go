package article

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
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

// psql builds queries with $n placeholders for the variable-length search
// clauses.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// articleSelect is the denormalized projection shared by every article read.
func articleSelect() string {
	return fmt.Sprintf(`
		SELECT a.%s, a.%s,
		       au.%s, au.%s, au.%s, a.%s,
		       a.%s,
		       i.%s, a.%s
		FROM %s a
		LEFT JOIN %s au ON a.%s = au.%s
		LEFT JOIN %s i ON a.%s = i.%s
	`,
		schema.Articles.ID, schema.Articles.ArticleTitle,
		schema.Authors.AuthorFirst, schema.Authors.AuthorLast, schema.Authors.AuthorHandle, schema.Articles.AuthorID,
		schema.Articles.Text,
		schema.Issues.IssueTitle, schema.Articles.IssueID,
		schema.Articles.Table,
		schema.Authors.Table, schema.Articles.AuthorID, schema.Authors.ID,
		schema.Issues.Table, schema.Articles.IssueID, schema.Issues.ID,
	)
}

func scanArticle(row interface{ Scan(...any) error }) (*Article, error) {
	a := &Article{}
	err := row.Scan(
		&a.ID, &a.ArticleTitle,
		&a.AuthorFirst, &a.AuthorLast, &a.AuthorHandle, &a.AuthorID,
		&a.Text,
		&a.IssueTitle, &a.IssueID,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (repository *PostgresRepository) queryArticles(context context.Context, query string, args ...any) ([]*Article, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "query_articles")
	}
	defer rows.Close()

	var articles []*Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_article")
		}
		articles = append(articles, a)
	}

	return articles, rows.Err()
}

func (repository *PostgresRepository) ListArticles(context context.Context) ([]*Article, error) {
	query := articleSelect() + fmt.Sprintf(` ORDER BY LOWER(a.%s)`, schema.Articles.ArticleTitle)
	return repository.queryArticles(context, query)
}

func (repository *PostgresRepository) GetArticle(context context.Context, id int) (*Article, error) {
	query := articleSelect() + fmt.Sprintf(` WHERE a.%s = $1`, schema.Articles.ID)

	a, err := scanArticle(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_article")
	}
	return a, nil
}

func (repository *PostgresRepository) GetArticleByTitle(context context.Context, title string) (*Article, error) {
	query := articleSelect() + fmt.Sprintf(` WHERE a.%s = $1`, schema.Articles.ArticleTitle)

	a, err := scanArticle(repository.db.QueryRow(context, query, title))
	if err != nil {
		return nil, dberr.Wrap(err, "get_article_by_title")
	}
	return a, nil
}

func (repository *PostgresRepository) ListArticlesByAuthorHandle(context context.Context, handle string) ([]*Article, error) {
	query := articleSelect() + fmt.Sprintf(` WHERE au.%s = $1`, schema.Authors.AuthorHandle)
	return repository.queryArticles(context, query, handle)
}

func (repository *PostgresRepository) ListArticlesByKeyword(context context.Context, keyword string) ([]*Article, error) {
	query := articleSelect() + fmt.Sprintf(
		` WHERE a.%s IN (SELECT %s FROM %s WHERE %s = $1)`,
		schema.Articles.ID,
		schema.ArticleKeywords.ArticleID, schema.ArticleKeywords.Table, schema.ArticleKeywords.Keyword,
	)
	return repository.queryArticles(context, query, keyword)
}

// SearchTextIDs returns the ids of articles whose title or text contains any
// of the terms, case-insensitively.
func (repository *PostgresRepository) SearchTextIDs(context context.Context, terms []string) ([]int, error) {
	if len(terms) == 0 {
		return nil, nil
	}

	match := squirrel.Or{}
	for _, term := range terms {
		pattern := "%" + term + "%"
		match = append(match,
			squirrel.ILike{schema.Articles.ArticleTitle: pattern},
			squirrel.ILike{schema.Articles.Text: pattern},
		)
	}

	query, args, err := psql.
		Select(schema.Articles.ID).
		From(schema.Articles.Table).
		Where(match).
		ToSql()
	if err != nil {
		return nil, dberr.Wrap(err, "build_text_search")
	}

	return repository.queryIDs(context, query, args...)
}

// SearchKeywordIDs returns the ids of articles tagged with any keyword
// containing one of the given tags, case-insensitively.
func (repository *PostgresRepository) SearchKeywordIDs(context context.Context, tags []string) ([]int, error) {
	if len(tags) == 0 {
		return nil, nil
	}

	match := squirrel.Or{}
	for _, tag := range tags {
		match = append(match, squirrel.ILike{schema.ArticleKeywords.Keyword: "%" + tag + "%"})
	}

	query, args, err := psql.
		Select("DISTINCT " + schema.ArticleKeywords.ArticleID).
		From(schema.ArticleKeywords.Table).
		Where(match).
		ToSql()
	if err != nil {
		return nil, dberr.Wrap(err, "build_keyword_search")
	}

	return repository.queryIDs(context, query, args...)
}

func (repository *PostgresRepository) queryIDs(context context.Context, query string, args ...any) ([]int, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "search_articles")
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, dberr.Wrap(err, "scan_article_id")
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (repository *PostgresRepository) TitleExists(context context.Context, title string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.Articles.Table, schema.Articles.ArticleTitle,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, title).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "article_title_exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) GetRecord(context context.Context, id int) (*Record, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Articles.ID, schema.Articles.ArticleTitle, schema.Articles.Text,
		schema.Articles.AuthorID, schema.Articles.IssueID,
		schema.Articles.Table, schema.Articles.ID,
	)
	rec := &Record{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&rec.ID, &rec.ArticleTitle, &rec.Text, &rec.AuthorID, &rec.IssueID,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_article_record")
	}

	return rec, nil
}

func (repository *PostgresRepository) CreateArticle(context context.Context, in *CreateInput) (*Article, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s
	`,
		schema.Articles.Table, schema.Articles.ArticleTitle, schema.Articles.Text,
		schema.Articles.AuthorID, schema.Articles.IssueID,
		schema.Articles.ID,
	)

	var id int
	err := repository.db.QueryRow(context, query, in.ArticleTitle, in.Text, in.AuthorID, in.IssueID).Scan(&id)
	if err != nil {
		return nil, dberr.Wrap(err, "create_article")
	}

	return repository.GetArticle(context, id)
}

func (repository *PostgresRepository) UpdateArticle(context context.Context, rec *Record) (*Article, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5
		WHERE %s = $1
	`,
		schema.Articles.Table,
		schema.Articles.ArticleTitle, schema.Articles.Text,
		schema.Articles.AuthorID, schema.Articles.IssueID,
		schema.Articles.ID,
	)

	cmd, err := repository.db.Exec(context, query, rec.ID, rec.ArticleTitle, rec.Text, rec.AuthorID, rec.IssueID)
	if err != nil {
		return nil, dberr.Wrap(err, "update_article")
	}
	if cmd.RowsAffected() == 0 {
		return nil, dberr.ErrNotFound
	}

	return repository.GetArticle(context, rec.ID)
}

func (repository *PostgresRepository) DeleteArticle(context context.Context, id int) (*Article, error) {
	// The RETURNING subselects run against the deleted row's foreign keys, so
	// the echo still carries the joined author and issue fields.
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1
		RETURNING %s, %s,
			(SELECT %s FROM %s WHERE %s = %s),
			(SELECT %s FROM %s WHERE %s = %s),
			(SELECT %s FROM %s WHERE %s = %s),
			%s, %s,
			(SELECT %s FROM %s WHERE %s = %s),
			%s
	`,
		schema.Articles.Table, schema.Articles.ID,
		schema.Articles.ID, schema.Articles.ArticleTitle,
		schema.Authors.AuthorFirst, schema.Authors.Table, schema.Authors.ID, schema.Articles.AuthorID,
		schema.Authors.AuthorLast, schema.Authors.Table, schema.Authors.ID, schema.Articles.AuthorID,
		schema.Authors.AuthorHandle, schema.Authors.Table, schema.Authors.ID, schema.Articles.AuthorID,
		schema.Articles.AuthorID, schema.Articles.Text,
		schema.Issues.IssueTitle, schema.Issues.Table, schema.Issues.ID, schema.Articles.IssueID,
		schema.Articles.IssueID,
	)

	a, err := scanArticle(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "delete_article")
	}
	return a, nil
}
