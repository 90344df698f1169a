package keyword

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

func (repository *PostgresRepository) AddToArticle(context context.Context, articleID int, keyword string) (string, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		RETURNING (SELECT %s FROM %s WHERE %s = $1)
	`,
		schema.ArticleKeywords.Table, schema.ArticleKeywords.ArticleID, schema.ArticleKeywords.Keyword,
		schema.Articles.ArticleTitle, schema.Articles.Table, schema.Articles.ID,
	)

	var title string
	if err := repository.db.QueryRow(context, query, articleID, keyword).Scan(&title); err != nil {
		return "", dberr.Wrap(err, "add_keyword")
	}
	return title, nil
}

func (repository *PostgresRepository) AddToAllArticles(context context.Context, keyword string) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		SELECT %s, $1 FROM %s
		ON CONFLICT DO NOTHING
	`,
		schema.ArticleKeywords.Table, schema.ArticleKeywords.ArticleID, schema.ArticleKeywords.Keyword,
		schema.Articles.ID, schema.Articles.Table,
	)

	if _, err := repository.db.Exec(context, query, keyword); err != nil {
		return dberr.Wrap(err, "add_keyword_all")
	}
	return nil
}

func (repository *PostgresRepository) ListAssociations(context context.Context) ([]*Association, error) {
	query := fmt.Sprintf(`
		SELECT ak.%s, ak.%s, a.%s
		FROM %s ak
		LEFT JOIN %s a ON ak.%s = a.%s
		ORDER BY LOWER(ak.%s) asc
	`,
		schema.ArticleKeywords.Keyword, schema.ArticleKeywords.ArticleID, schema.Articles.ArticleTitle,
		schema.ArticleKeywords.Table,
		schema.Articles.Table, schema.ArticleKeywords.ArticleID, schema.Articles.ID,
		schema.ArticleKeywords.Keyword,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_keywords")
	}
	defer rows.Close()

	var associations []*Association
	for rows.Next() {
		a := &Association{}
		if err := rows.Scan(&a.Keyword, &a.ArticleID, &a.ArticleTitle); err != nil {
			return nil, dberr.Wrap(err, "scan_keyword")
		}
		associations = append(associations, a)
	}

	return associations, rows.Err()
}

func (repository *PostgresRepository) ListArticleKeywords(context context.Context, articleID int) ([]*Row, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
		ORDER BY LOWER(%s) asc
	`,
		schema.ArticleKeywords.Keyword, schema.ArticleKeywords.Table,
		schema.ArticleKeywords.ArticleID, schema.ArticleKeywords.Keyword,
	)

	rows, err := repository.db.Query(context, query, articleID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_article_keywords")
	}
	defer rows.Close()

	var keywords []*Row
	for rows.Next() {
		row := &Row{}
		if err := rows.Scan(&row.Keyword); err != nil {
			return nil, dberr.Wrap(err, "scan_article_keyword")
		}
		keywords = append(keywords, row)
	}

	return keywords, rows.Err()
}

func (repository *PostgresRepository) Rename(context context.Context, articleID int, keyword, edit string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1
		WHERE %s = $2 AND %s = $3
	`,
		schema.ArticleKeywords.Table, schema.ArticleKeywords.Keyword,
		schema.ArticleKeywords.Keyword, schema.ArticleKeywords.ArticleID,
	)

	if _, err := repository.db.Exec(context, query, edit, keyword, articleID); err != nil {
		return dberr.Wrap(err, "rename_keyword")
	}
	return nil
}

func (repository *PostgresRepository) RenameAll(context context.Context, keyword, edit string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1
		WHERE %s = $2
	`,
		schema.ArticleKeywords.Table, schema.ArticleKeywords.Keyword, schema.ArticleKeywords.Keyword,
	)

	if _, err := repository.db.Exec(context, query, edit, keyword); err != nil {
		return dberr.Wrap(err, "rename_keyword_all")
	}
	return nil
}

func (repository *PostgresRepository) Remove(context context.Context, articleID int, keyword string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1 AND %s = $2
	`,
		schema.ArticleKeywords.Table, schema.ArticleKeywords.ArticleID, schema.ArticleKeywords.Keyword,
	)

	if _, err := repository.db.Exec(context, query, articleID, keyword); err != nil {
		return dberr.Wrap(err, "remove_keyword")
	}
	return nil
}

func (repository *PostgresRepository) RemoveAll(context context.Context, keyword string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1
	`,
		schema.ArticleKeywords.Table, schema.ArticleKeywords.Keyword,
	)

	if _, err := repository.db.Exec(context, query, keyword); err != nil {
		return dberr.Wrap(err, "remove_keyword_all")
	}
	return nil
}

func (repository *PostgresRepository) GetArticleTitle(context context.Context, articleID int) (string, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE %s = $1
	`,
		schema.Articles.ArticleTitle, schema.Articles.Table, schema.Articles.ID,
	)

	var title string
	if err := repository.db.QueryRow(context, query, articleID).Scan(&title); err != nil {
		return "", dberr.Wrap(err, "get_article_title")
	}
	return title, nil
}
