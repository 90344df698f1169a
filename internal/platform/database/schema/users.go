// Copyright (c) 2026 Tigerlilly. All rights reserved.

// Package schema centralizes table and column identifiers so repository
// queries never embed raw string literals.
package schema

// UsersTable represents the 'users' table
type UsersTable struct {
	Table     string
	ID        string
	Username  string
	Password  string
	UserFirst string
	UserLast  string
	Email     string
	IsAdmin   string
	Icon      string
}

// Users is the schema definition for users
var Users = UsersTable{
	Table:     "users",
	ID:        "id",
	Username:  "username",
	Password:  "password",
	UserFirst: "user_first",
	UserLast:  "user_last",
	Email:     "email",
	IsAdmin:   "is_admin",
	Icon:      "icon",
}

func (t UsersTable) Columns() []string {
	return []string{t.ID, t.Username, t.Password, t.UserFirst, t.UserLast, t.Email, t.IsAdmin, t.Icon}
}
