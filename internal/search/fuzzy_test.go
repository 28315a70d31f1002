package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshteinDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"BothEmpty", "", "", 0},
		{"Identical", "graph", "graph", 0},
		{"KittenSitting", "kitten", "sitting", 3},
		{"EmptyToWord", "", "note", 4},
		{"WordToEmpty", "note", "", 4},
		{"SingleSubstitution", "cat", "cut", 1},
		{"ShiftedWord", "flaw", "lawn", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, LevenshteinDistance(tt.a, tt.b))
		})
	}
}

func TestFuzzyMatchSimilarity(t *testing.T) {
	t.Parallel()

	t.Run("BothEmpty", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 1.0, FuzzyMatchSimilarity("", ""))
	})

	t.Run("Identical", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 1.0, FuzzyMatchSimilarity("note", "note"))
	})

	t.Run("KittenSitting", func(t *testing.T) {
		t.Parallel()
		assert.InDelta(t, 1.0-3.0/7.0, FuzzyMatchSimilarity("kitten", "sitting"), 1e-9)
	})

	t.Run("Disjoint", func(t *testing.T) {
		t.Parallel()
		assert.InDelta(t, 0.0, FuzzyMatchSimilarity("abc", "xyz"), 1e-9)
	})

	t.Run("OneEmpty", func(t *testing.T) {
		t.Parallel()
		assert.InDelta(t, 0.0, FuzzyMatchSimilarity("abc", ""), 1e-9)
	})
}
