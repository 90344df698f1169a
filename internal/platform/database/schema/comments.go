// Copyright (c) 2026 Tigerlilly. All rights reserved.

package schema

// CommentsTable represents the 'comments' table
type CommentsTable struct {
	Table     string
	ID        string
	UserID    string
	ArticleID string
	Text      string
	PostDate  string
}

// Comments is the schema definition for comments
var Comments = CommentsTable{
	Table:     "comments",
	ID:        "id",
	UserID:    "user_id",
	ArticleID: "article_id",
	Text:      "text",
	PostDate:  "post_date",
}

func (t CommentsTable) Columns() []string {
	return []string{t.ID, t.UserID, t.ArticleID, t.Text, t.PostDate}
}
