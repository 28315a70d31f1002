package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func triangle(a, b, c string) ([]Node, []Edge) {
	nodes := []Node{{Path: a}, {Path: b}, {Path: c}}
	edges := []Edge{
		{Source: a, Target: b, Weight: 1},
		{Source: b, Target: c, Weight: 1},
		{Source: c, Target: a, Weight: 1},
	}
	return nodes, edges
}

func TestLinkGraph_DetectCommunities(t *testing.T) {
	t.Parallel()

	t.Run("EmptyGraph", func(t *testing.T) {
		t.Parallel()
		g := NewLinkGraph()

		communities, count := g.DetectCommunities(0)

		assert.NotNil(t, communities)
		assert.Empty(t, communities)
		assert.Equal(t, 0, count)
	})

	t.Run("DisjointCliques", func(t *testing.T) {
		t.Parallel()
		g := NewLinkGraph()
		firstNodes, firstEdges := triangle("a.md", "b.md", "c.md")
		secondNodes, secondEdges := triangle("x.md", "y.md", "z.md")
		g.Build(append(firstNodes, secondNodes...), append(firstEdges, secondEdges...))

		communities, count := g.DetectCommunities(0)

		assert.Equal(t, 2, count)
		assert.Equal(t, map[string]int{
			"a.md": 0, "b.md": 0, "c.md": 0,
			"x.md": 1, "y.md": 1, "z.md": 1,
		}, communities)
	})

	t.Run("IsolatedNodesStaySingletons", func(t *testing.T) {
		t.Parallel()
		g := NewLinkGraph()
		g.Build([]Node{{Path: "a.md"}, {Path: "b.md"}, {Path: "c.md"}}, nil)

		communities, count := g.DetectCommunities(0)

		assert.Equal(t, 3, count)
		assert.Equal(t, map[string]int{"a.md": 0, "b.md": 1, "c.md": 2}, communities)
	})

	t.Run("SelfLoopsDoNotJoinCommunities", func(t *testing.T) {
		t.Parallel()
		g := NewLinkGraph()
		g.Build(
			[]Node{{Path: "a.md"}, {Path: "b.md"}, {Path: "c.md"}},
			[]Edge{
				{Source: "a.md", Target: "a.md", Weight: 5},
				{Source: "b.md", Target: "c.md", Weight: 1},
			},
		)

		communities, count := g.DetectCommunities(0)

		assert.Equal(t, 2, count)
		assert.Equal(t, map[string]int{"a.md": 0, "b.md": 1, "c.md": 1}, communities)
	})

	t.Run("Deterministic", func(t *testing.T) {
		t.Parallel()
		g := NewLinkGraph()
		firstNodes, firstEdges := triangle("a.md", "b.md", "c.md")
		secondNodes, secondEdges := triangle("x.md", "y.md", "z.md")
		g.Build(
			append(firstNodes, secondNodes...),
			append(append(firstEdges, secondEdges...), Edge{Source: "c.md", Target: "x.md", Weight: 1}),
		)

		firstRun, firstCount := g.DetectCommunities(0)
		secondRun, secondCount := g.DetectCommunities(0)

		assert.Equal(t, firstRun, secondRun)
		assert.Equal(t, firstCount, secondCount)
	})
}
