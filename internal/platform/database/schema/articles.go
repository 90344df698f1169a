// Copyright (c) 2026 Tigerlilly. All rights reserved.

package schema

// ArticlesTable represents the 'articles' table
type ArticlesTable struct {
	Table        string
	ID           string
	ArticleTitle string
	Text         string
	AuthorID     string
	IssueID      string
}

// Articles is the schema definition for articles
var Articles = ArticlesTable{
	Table:        "articles",
	ID:           "id",
	ArticleTitle: "article_title",
	Text:         "text",
	AuthorID:     "author_id",
	IssueID:      "issue_id",
}

func (t ArticlesTable) Columns() []string {
	return []string{t.ID, t.ArticleTitle, t.Text, t.AuthorID, t.IssueID}
}
