// Copyright (c) 2026 Tigerlilly. All rights reserved.

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tigerlilly/api/pkg/slug"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "lilly", "lilly"},
		{"uppercase", "BigEditor", "bigeditor"},
		{"spaces", "ondine de la mer", "ondine-de-la-mer"},
		{"accents", "Clément Müller", "clement-muller"},
		{"punctuation", "who? me!", "who-me"},
		{"consecutive_separators", "a  --  b", "a-b"},
		{"leading_trailing", "  trimmed  ", "trimmed"},
		{"digits", "issue42", "issue42"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
