// Copyright (c) 2026 Tigerlilly. All rights reserved.

package schema

// FeedbackTable represents the 'feedback' table
type FeedbackTable struct {
	Table        string
	ID           string
	Name         string
	Email        string
	FeedbackText string
	ReceivedAt   string
}

// Feedback is the schema definition for feedback
var Feedback = FeedbackTable{
	Table:        "feedback",
	ID:           "id",
	Name:         "name",
	Email:        "email",
	FeedbackText: "feedback_text",
	ReceivedAt:   "received_at",
}

func (t FeedbackTable) Columns() []string {
	return []string{t.ID, t.Name, t.Email, t.FeedbackText, t.ReceivedAt}
}
