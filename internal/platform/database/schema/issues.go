// Copyright (c) 2026 Tigerlilly. All rights reserved.

package schema

// IssuesTable represents the 'issues' table
type IssuesTable struct {
	Table      string
	ID         string
	IssueTitle string
	Volume     string
	IssueNum   string
	PubDate    string
}

// Issues is the schema definition for issues
var Issues = IssuesTable{
	Table:      "issues",
	ID:         "id",
	IssueTitle: "issue_title",
	Volume:     "volume",
	IssueNum:   "issue_num",
	PubDate:    "pub_date",
}

func (t IssuesTable) Columns() []string {
	return []string{t.ID, t.IssueTitle, t.Volume, t.IssueNum, t.PubDate}
}
