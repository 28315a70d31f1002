package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkGraph_PageRank(t *testing.T) {
	t.Parallel()

	t.Run("EmptyGraph", func(t *testing.T) {
		t.Parallel()
		g := NewLinkGraph()

		scores := g.PageRank(PageRankOptions{})

		assert.NotNil(t, scores)
		assert.Empty(t, scores)
	})

	t.Run("ScoresSumToOne", func(t *testing.T) {
		t.Parallel()
		g := NewLinkGraph()
		g.Build(
			[]Node{{Path: "a.md"}, {Path: "b.md"}, {Path: "c.md"}, {Path: "d.md"}},
			[]Edge{
				{Source: "a.md", Target: "b.md", Weight: 1},
				{Source: "a.md", Target: "d.md", Weight: 1},
				{Source: "b.md", Target: "c.md", Weight: 1},
				{Source: "c.md", Target: "a.md", Weight: 1},
			},
		)

		scores := g.PageRank(PageRankOptions{})

		sum := 0.0
		for _, score := range scores {
			sum += score
		}
		assert.Len(t, scores, 4)
		assert.InDelta(t, 1.0, sum, 1e-9)
	})

	t.Run("EdgelessGraphIsUniform", func(t *testing.T) {
		t.Parallel()
		g := NewLinkGraph()
		g.Build([]Node{{Path: "a.md"}, {Path: "b.md"}, {Path: "c.md"}}, nil)

		scores := g.PageRank(PageRankOptions{})

		for path, score := range scores {
			assert.InDelta(t, 1.0/3.0, score, 1e-9, "score for %s", path)
		}
	})

	t.Run("HubOutranksSpokes", func(t *testing.T) {
		t.Parallel()
		g := NewLinkGraph()
		g.Build(
			[]Node{{Path: "hub.md"}, {Path: "b.md"}, {Path: "c.md"}, {Path: "d.md"}},
			[]Edge{
				{Source: "b.md", Target: "hub.md", Weight: 1},
				{Source: "c.md", Target: "hub.md", Weight: 1},
				{Source: "d.md", Target: "hub.md", Weight: 1},
			},
		)

		scores := g.PageRank(PageRankOptions{})

		assert.Greater(t, scores["hub.md"], scores["b.md"])
		assert.Greater(t, scores["hub.md"], scores["c.md"])
		assert.Greater(t, scores["hub.md"], scores["d.md"])
	})

	t.Run("WeightsBiasTransitions", func(t *testing.T) {
		t.Parallel()
		g := NewLinkGraph()
		g.Build(
			[]Node{{Path: "a.md"}, {Path: "b.md"}, {Path: "c.md"}},
			[]Edge{
				{Source: "a.md", Target: "b.md", Weight: 3},
				{Source: "a.md", Target: "c.md", Weight: 1},
			},
		)

		scores := g.PageRank(PageRankOptions{})

		assert.Greater(t, scores["b.md"], scores["c.md"])
	})

	t.Run("ParallelEdgesSumWeight", func(t *testing.T) {
		t.Parallel()
		single := NewLinkGraph()
		single.Build(
			[]Node{{Path: "a.md"}, {Path: "b.md"}, {Path: "c.md"}},
			[]Edge{
				{Source: "a.md", Target: "b.md", Weight: 2},
				{Source: "a.md", Target: "c.md", Weight: 1},
			},
		)
		parallel := NewLinkGraph()
		parallel.Build(
			[]Node{{Path: "a.md"}, {Path: "b.md"}, {Path: "c.md"}},
			[]Edge{
				{Source: "a.md", Target: "b.md", Weight: 1},
				{Source: "a.md", Target: "b.md", Weight: 1},
				{Source: "a.md", Target: "c.md", Weight: 1},
			},
		)

		singleScores := single.PageRank(PageRankOptions{})
		parallelScores := parallel.PageRank(PageRankOptions{})

		assert.Len(t, parallelScores, len(singleScores))
		for path, score := range singleScores {
			assert.InDelta(t, score, parallelScores[path], 1e-9, "score for %s", path)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		t.Parallel()
		g := NewLinkGraph()
		g.Build(
			[]Node{{Path: "a.md"}, {Path: "b.md"}, {Path: "c.md"}, {Path: "d.md"}},
			[]Edge{
				{Source: "a.md", Target: "b.md", Weight: 1},
				{Source: "b.md", Target: "c.md", Weight: 2},
				{Source: "c.md", Target: "d.md", Weight: 1},
				{Source: "d.md", Target: "a.md", Weight: 3},
			},
		)

		assert.Equal(t, g.PageRank(PageRankOptions{}), g.PageRank(PageRankOptions{}))
	})

	t.Run("InvalidOptionsFallBackToDefaults", func(t *testing.T) {
		t.Parallel()
		g := NewLinkGraph()
		g.Build(
			[]Node{{Path: "a.md"}, {Path: "b.md"}},
			[]Edge{{Source: "a.md", Target: "b.md", Weight: 1}},
		)

		withDefaults := g.PageRank(PageRankOptions{})
		withInvalid := g.PageRank(PageRankOptions{Damping: 2, Tolerance: -1, MaxIterations: -5})

		assert.Equal(t, withDefaults, withInvalid)
	})
}
