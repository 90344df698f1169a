package issue

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

func (repository *PostgresRepository) ListIssues(context context.Context) ([]*Issue, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		ORDER BY LOWER(%s)
	`,
		schema.Issues.ID, schema.Issues.IssueTitle, schema.Issues.Volume,
		schema.Issues.IssueNum, schema.Issues.PubDate,
		schema.Issues.Table, schema.Issues.IssueTitle,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_issues")
	}
	defer rows.Close()

	var issues []*Issue
	for rows.Next() {
		i := &Issue{}
		if err := rows.Scan(&i.ID, &i.IssueTitle, &i.Volume, &i.IssueNum, &i.PubDate); err != nil {
			return nil, dberr.Wrap(err, "scan_issue")
		}
		issues = append(issues, i)
	}

	return issues, rows.Err()
}

func (repository *PostgresRepository) GetIssueByID(context context.Context, id int) (*Issue, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Issues.ID, schema.Issues.IssueTitle, schema.Issues.Volume,
		schema.Issues.IssueNum, schema.Issues.PubDate,
		schema.Issues.Table, schema.Issues.ID,
	)
	i := &Issue{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&i.ID, &i.IssueTitle, &i.Volume, &i.IssueNum, &i.PubDate,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_issue")
	}

	return i, nil
}

// issueArticlesQuery is the detail view joining an issue against its articles
// and their authors. The WHERE clause is appended by each caller.
func issueArticlesQuery() string {
	return fmt.Sprintf(`
		SELECT i.%s, i.%s, i.%s, i.%s,
		       a.%s, a.%s, a.%s,
		       au.%s, au.%s, au.%s
		FROM %s i
		LEFT JOIN %s a ON i.%s = a.%s
		LEFT JOIN %s au ON a.%s = au.%s
	`,
		schema.Issues.IssueTitle, schema.Issues.Volume, schema.Issues.IssueNum, schema.Issues.PubDate,
		schema.Articles.ID, schema.Articles.ArticleTitle, schema.Articles.Text,
		schema.Authors.AuthorFirst, schema.Authors.AuthorLast, schema.Authors.AuthorHandle,
		schema.Issues.Table,
		schema.Articles.Table, schema.Issues.ID, schema.Articles.IssueID,
		schema.Authors.Table, schema.Articles.AuthorID, schema.Authors.ID,
	)
}

func (repository *PostgresRepository) GetIssueArticles(context context.Context, id int) ([]*ArticleRow, error) {
	query := issueArticlesQuery() + fmt.Sprintf(` WHERE i.%s = $1`, schema.Issues.ID)
	return repository.queryArticleRows(context, query, id)
}

func (repository *PostgresRepository) GetIssueArticlesByTitle(context context.Context, title string) ([]*ArticleRow, error) {
	query := issueArticlesQuery() + fmt.Sprintf(` WHERE i.%s = $1`, schema.Issues.IssueTitle)
	return repository.queryArticleRows(context, query, title)
}

// GetCurrentIssueArticles returns the detail view of the most recently
// published issue.
func (repository *PostgresRepository) GetCurrentIssueArticles(context context.Context) ([]*ArticleRow, error) {
	query := issueArticlesQuery() + fmt.Sprintf(
		` WHERE i.%s = (SELECT %s FROM %s ORDER BY %s DESC LIMIT 1)`,
		schema.Issues.ID, schema.Issues.ID, schema.Issues.Table, schema.Issues.PubDate,
	)
	return repository.queryArticleRows(context, query)
}

func (repository *PostgresRepository) queryArticleRows(context context.Context, query string, args ...any) ([]*ArticleRow, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "issue_articles")
	}
	defer rows.Close()

	var result []*ArticleRow
	for rows.Next() {
		row := &ArticleRow{}
		err := rows.Scan(
			&row.IssueTitle, &row.Volume, &row.IssueNum, &row.PubDate,
			&row.ArticleID, &row.ArticleTitle, &row.Text,
			&row.AuthorFirst, &row.AuthorLast, &row.AuthorHandle,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_issue_article")
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

func (repository *PostgresRepository) TitleExists(context context.Context, title string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.Issues.Table, schema.Issues.IssueTitle,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, title).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "issue_title_exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) CreateIssue(context context.Context, in *CreateInput) (*Issue, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, COALESCE($4, NOW()))
		RETURNING %s, %s, %s, %s, %s
	`,
		schema.Issues.Table, schema.Issues.IssueTitle, schema.Issues.Volume,
		schema.Issues.IssueNum, schema.Issues.PubDate,
		schema.Issues.ID, schema.Issues.IssueTitle, schema.Issues.Volume,
		schema.Issues.IssueNum, schema.Issues.PubDate,
	)
	i := &Issue{}

	err := repository.db.QueryRow(context, query, in.IssueTitle, in.Volume, in.IssueNum, in.PubDate).Scan(
		&i.ID, &i.IssueTitle, &i.Volume, &i.IssueNum, &i.PubDate,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "create_issue")
	}

	return i, nil
}

func (repository *PostgresRepository) UpdateIssue(context context.Context, i *Issue) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5
		WHERE %s = $1
	`,
		schema.Issues.Table,
		schema.Issues.IssueTitle, schema.Issues.Volume, schema.Issues.IssueNum, schema.Issues.PubDate,
		schema.Issues.ID,
	)

	cmd, err := repository.db.Exec(context, query, i.ID, i.IssueTitle, i.Volume, i.IssueNum, i.PubDate)
	if err != nil {
		return dberr.Wrap(err, "update_issue")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteIssue(context context.Context, id int) (*Issue, error) {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1
		RETURNING %s, %s, %s, %s, %s
	`,
		schema.Issues.Table, schema.Issues.ID,
		schema.Issues.ID, schema.Issues.IssueTitle, schema.Issues.Volume,
		schema.Issues.IssueNum, schema.Issues.PubDate,
	)
	i := &Issue{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&i.ID, &i.IssueTitle, &i.Volume, &i.IssueNum, &i.PubDate,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "delete_issue")
	}

	return i, nil
}
