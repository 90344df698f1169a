// Copyright (c) 2026 Tigerlilly. All rights reserved.

package schema

// ArticleKeywordsTable represents the 'article_keywords' association table.
// The keyword string itself is part of the primary key; there is no separate
// keyword entity.
type ArticleKeywordsTable struct {
	Table     string
	ArticleID string
	Keyword   string
}

// ArticleKeywords is the schema definition for article_keywords
var ArticleKeywords = ArticleKeywordsTable{
	Table:     "article_keywords",
	ArticleID: "article_id",
	Keyword:   "keyword",
}

func (t ArticleKeywordsTable) Columns() []string {
	return []string{t.ArticleID, t.Keyword}
}
