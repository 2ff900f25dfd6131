package levenshtein_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sumatoshi-tech/weburl/pkg/levenshtein"
)

func TestDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want int
	}{
		{"", "a", 1},
		{"a", "", 1},
		{"a", "a", 0},
		{"ab", "aa", 1},
		{"ab", "aaa", 2},
		{"kitten", "sitting", 3},
		{"sitting", "kitten", 3},
		{"aa", "aü", 1},
		{"Fön", "Föm", 1},
		{"abc", "def", 3},
		{"jsno", "json", 2},
		{"yml", "yaml", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, levenshtein.Distance(tt.a, tt.b), "%q -> %q", tt.a, tt.b)
	}
}

func TestClosest(t *testing.T) {
	t.Parallel()

	candidates := []string{"json", "yaml", "table", "href"}

	got, ok := levenshtein.Closest("yml", candidates, 2)
	assert.True(t, ok)
	assert.Equal(t, "yaml", got)

	_, ok = levenshtein.Closest("xml", candidates, 1)
	assert.False(t, ok)

	_, ok = levenshtein.Closest("x", nil, 3)
	assert.False(t, ok)
}
