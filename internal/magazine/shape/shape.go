// Package shape applies read projections shared by the magazine entities.
package shape

import "github.com/tigerlilly/api/internal/platform/constants"

// Teaser cuts text longer than the teaser length down to exactly that many
// characters plus the suffix. Text at or under the limit is returned verbatim.
func Teaser(text string) string {
	runes := []rune(text)
	if len(runes) <= constants.TeaserLength {
		return text
	}
	return string(runes[:constants.TeaserLength]) + constants.TeaserSuffix
}

// TeaserPtr applies Teaser through an optional string, leaving nil untouched.
func TeaserPtr(text *string) *string {
	if text == nil {
		return nil
	}
	shortened := Teaser(*text)
	return &shortened
}
