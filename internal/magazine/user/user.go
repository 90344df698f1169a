package user

import "time"

// User represents a registered account. Password holds the bcrypt hash and
// never serializes.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Password  string `json:"-"`
	UserFirst string `json:"userFirst"`
	UserLast  string `json:"userLast"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"isAdmin"`
	Icon      string `json:"icon"`
}

// RegisterInput carries the self-service registration form. Password is the
// plaintext to be hashed; it never reaches the repository as-is.
type RegisterInput struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	UserFirst string `json:"userFirst"`
	UserLast  string `json:"userLast"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"isAdmin"`
}

// UpdateInput carries a partial update. Empty fields fall back to the stored
// value; IsAdmin only ever upgrades (false is indistinguishable from omitted).
type UpdateInput struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	UserFirst string `json:"userFirst"`
	UserLast  string `json:"userLast"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"isAdmin"`
}

// Credentials is the login form.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// DeletedUser is the echo shape returned after removing an account.
type DeletedUser struct {
	Username  string `json:"username"`
	UserFirst string `json:"userFirst"`
	UserLast  string `json:"userLast"`
}

// Feedback is an anonymous note left by a site visitor.
type Feedback struct {
	ID           int       `json:"id,omitempty"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	FeedbackText string    `json:"feedback"`
	ReceivedAt   time.Time `json:"receivedAt,omitempty"`
}

// Field names for validation messages
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldFirst    = "userFirst"
	FieldLast     = "userLast"
	FieldEmail    = "email"
	FieldName     = "name"
	FieldFeedback = "feedback"
)
