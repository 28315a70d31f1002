package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeNeighborhood(t *testing.T) {
	t.Parallel()

	chain := []LinkPair{
		{Source: "a.md", Target: "b.md"},
		{Source: "b.md", Target: "c.md"},
	}
	files := []string{"a.md", "b.md", "c.md"}

	t.Run("StartOnlyAtDepthZero", func(t *testing.T) {
		t.Parallel()

		nodes := AnalyzeNeighborhood("a.md", chain, files, 0)

		assert.Equal(t, []NeighborhoodNode{{Path: "a.md", Depth: 0}}, nodes)
	})

	t.Run("AnnotatesHopDistance", func(t *testing.T) {
		t.Parallel()

		nodes := AnalyzeNeighborhood("a.md", chain, files, 2)

		assert.Equal(t, []NeighborhoodNode{
			{Path: "a.md", Depth: 0},
			{Path: "b.md", Depth: 1},
			{Path: "c.md", Depth: 2},
		}, nodes)
	})

	t.Run("DepthLimitsTraversal", func(t *testing.T) {
		t.Parallel()

		nodes := AnalyzeNeighborhood("a.md", chain, files, 1)

		assert.Equal(t, []NeighborhoodNode{
			{Path: "a.md", Depth: 0},
			{Path: "b.md", Depth: 1},
		}, nodes)
	})

	t.Run("NegativeDepthTreatedAsZero", func(t *testing.T) {
		t.Parallel()

		nodes := AnalyzeNeighborhood("a.md", chain, files, -3)

		assert.Equal(t, []NeighborhoodNode{{Path: "a.md", Depth: 0}}, nodes)
	})

	t.Run("TraversesAgainstLinkDirection", func(t *testing.T) {
		t.Parallel()

		nodes := AnalyzeNeighborhood("c.md", chain, files, 2)

		assert.Equal(t, []NeighborhoodNode{
			{Path: "c.md", Depth: 0},
			{Path: "b.md", Depth: 1},
			{Path: "a.md", Depth: 2},
		}, nodes)
	})

	t.Run("StartMissingFromFiles", func(t *testing.T) {
		t.Parallel()

		nodes := AnalyzeNeighborhood("missing.md", chain, files, 2)

		assert.NotNil(t, nodes)
		assert.Empty(t, nodes)
	})

	t.Run("IgnoresLinksOutsideFiles", func(t *testing.T) {
		t.Parallel()
		links := []LinkPair{
			{Source: "a.md", Target: "b.md"},
			{Source: "a.md", Target: "ghost.md"},
			{Source: "ghost.md", Target: "b.md"},
		}

		nodes := AnalyzeNeighborhood("a.md", links, []string{"a.md", "b.md"}, 3)

		assert.Equal(t, []NeighborhoodNode{
			{Path: "a.md", Depth: 0},
			{Path: "b.md", Depth: 1},
		}, nodes)
	})

	t.Run("UnreachableFilesExcluded", func(t *testing.T) {
		t.Parallel()

		nodes := AnalyzeNeighborhood("a.md", chain[:1], []string{"a.md", "b.md", "c.md", "d.md"}, 3)

		assert.Equal(t, []NeighborhoodNode{
			{Path: "a.md", Depth: 0},
			{Path: "b.md", Depth: 1},
		}, nodes)
	})

	t.Run("MinimumDepthOnMultiplePaths", func(t *testing.T) {
		t.Parallel()
		links := []LinkPair{
			{Source: "a.md", Target: "b.md"},
			{Source: "b.md", Target: "c.md"},
			{Source: "a.md", Target: "c.md"},
		}

		nodes := AnalyzeNeighborhood("a.md", links, files, 2)

		assert.Equal(t, []NeighborhoodNode{
			{Path: "a.md", Depth: 0},
			{Path: "b.md", Depth: 1},
			{Path: "c.md", Depth: 1},
		}, nodes)
	})

	t.Run("TerminatesOnCyclicLinks", func(t *testing.T) {
		t.Parallel()
		links := []LinkPair{
			{Source: "a.md", Target: "b.md"},
			{Source: "b.md", Target: "c.md"},
			{Source: "c.md", Target: "a.md"},
		}

		nodes := AnalyzeNeighborhood("a.md", links, files, 10)

		assert.Equal(t, []NeighborhoodNode{
			{Path: "a.md", Depth: 0},
			{Path: "b.md", Depth: 1},
			{Path: "c.md", Depth: 1},
		}, nodes)
	})

	t.Run("SortedByDepthThenPath", func(t *testing.T) {
		t.Parallel()
		links := []LinkPair{
			{Source: "m.md", Target: "b.md"},
			{Source: "m.md", Target: "a.md"},
		}

		nodes := AnalyzeNeighborhood("m.md", links, []string{"a.md", "b.md", "m.md"}, 1)

		assert.Equal(t, []NeighborhoodNode{
			{Path: "m.md", Depth: 0},
			{Path: "a.md", Depth: 1},
			{Path: "b.md", Depth: 1},
		}, nodes)
	})
}
