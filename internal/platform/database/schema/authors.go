// Copyright (c) 2026 Tigerlilly. All rights reserved.

package schema

// AuthorsTable represents the 'authors' table
type AuthorsTable struct {
	Table        string
	ID           string
	AuthorFirst  string
	AuthorLast   string
	AuthorHandle string
	AuthorSlogan string
	AuthorBio    string
	Icon         string
}

// Authors is the schema definition for authors
var Authors = AuthorsTable{
	Table:        "authors",
	ID:           "id",
	AuthorFirst:  "author_first",
	AuthorLast:   "author_last",
	AuthorHandle: "author_handle",
	AuthorSlogan: "author_slogan",
	AuthorBio:    "author_bio",
	Icon:         "icon",
}

func (t AuthorsTable) Columns() []string {
	return []string{t.ID, t.AuthorFirst, t.AuthorLast, t.AuthorHandle, t.AuthorSlogan, t.AuthorBio, t.Icon}
}
