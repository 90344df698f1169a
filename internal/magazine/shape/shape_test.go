package shape_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tigerlilly/api/internal/magazine/shape"
)

func TestTeaser(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"empty", "", ""},
		{"short", "A modest proposal.", "A modest proposal."},
		{"exactly_199", strings.Repeat("a", 199), strings.Repeat("a", 199)},
		{"exactly_200", strings.Repeat("a", 200), strings.Repeat("a", 200)},
		{"exactly_201", strings.Repeat("a", 201), strings.Repeat("a", 200) + "..."},
		{"long", strings.Repeat("b", 500), strings.Repeat("b", 200) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shape.Teaser(tt.text))
		})
	}
}

// Truncation counts characters, not bytes.
func TestTeaser_MultiByte(t *testing.T) {
	text := strings.Repeat("é", 201)
	got := shape.Teaser(text)
	assert.Equal(t, strings.Repeat("é", 200)+"...", got)
}

func TestTeaserPtr(t *testing.T) {
	assert.Nil(t, shape.TeaserPtr(nil))

	long := strings.Repeat("c", 300)
	got := shape.TeaserPtr(&long)
	require.NotNil(t, got)
	assert.Equal(t, strings.Repeat("c", 200)+"...", *got)

	// Original string untouched.
	assert.Len(t, long, 300)
}
