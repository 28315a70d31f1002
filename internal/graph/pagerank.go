package graph

import (
	"math"
	"sort"
)

// Default PageRank parameters, applied whenever an option is missing or
// out of range.
const (
	DefaultDamping       = 0.85
	DefaultTolerance     = 1e-4
	DefaultMaxIterations = 100
)

// PageRankOptions tunes the power iteration. Out-of-range values fall
// back to the defaults above.
type PageRankOptions struct {
	// Damping is the probability of following a link rather than
	// teleporting. Must lie strictly between 0 and 1.
	Damping float64

	// Tolerance is the convergence threshold on the largest per-node
	// score change between successive iterations.
	Tolerance float64

	// MaxIterations caps the number of power iterations.
	MaxIterations int
}

func (o *PageRankOptions) normalize() {
	if math.IsNaN(o.Damping) || o.Damping <= 0 || o.Damping >= 1 {
		o.Damping = DefaultDamping
	}
	if math.IsNaN(o.Tolerance) || o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
}

type pageRankLink struct {
	target string
	weight float64
}

// PageRank computes a link-importance score for every node by weighted
// power iteration. Transition probability out of a node is proportional
// to edge weight, with parallel edges contributing their summed weight.
// Rank mass of nodes without outgoing edges is redistributed uniformly
// across the graph, keeping the score sum at ~1.
//
// Iteration stops when the largest per-node score change drops below
// the tolerance, or at the iteration cap. An empty graph yields an
// empty map.
func (g *LinkGraph) PageRank(opts PageRankOptions) map[string]float64 {
	opts.normalize()

	n := len(g.nodes)
	if n == 0 {
		return map[string]float64{}
	}

	paths := g.Paths()

	// Deterministic per-node adjacency: edge ids sorted ascending so
	// contributions accumulate in insertion order on every run.
	links := make(map[string][]pageRankLink, n)
	outWeight := make(map[string]float64, n)
	for _, path := range paths {
		out := g.outgoing[path]
		if len(out) == 0 {
			continue
		}
		ids := make([]int, 0, len(out))
		for id := range out {
			ids = append(ids, id)
		}
		sort.Ints(ids)

		ordered := make([]pageRankLink, 0, len(ids))
		total := 0.0
		for _, id := range ids {
			edge := out[id]
			ordered = append(ordered, pageRankLink{target: edge.Target, weight: edge.Weight})
			total += edge.Weight
		}
		links[path] = ordered
		outWeight[path] = total
	}

	rank := make(map[string]float64, n)
	next := make(map[string]float64, n)
	initial := 1.0 / float64(n)
	for _, path := range paths {
		rank[path] = initial
	}

	for iter := 0; iter < opts.MaxIterations; iter++ {
		danglingSum := 0.0
		for _, path := range paths {
			if outWeight[path] == 0 {
				danglingSum += rank[path]
			}
		}

		base := (1.0-opts.Damping)/float64(n) + opts.Damping*danglingSum/float64(n)
		for _, path := range paths {
			next[path] = base
		}

		for _, path := range paths {
			total := outWeight[path]
			if total == 0 {
				continue
			}
			share := opts.Damping * rank[path] / total
			for _, link := range links[path] {
				next[link.target] += share * link.weight
			}
		}

		maxDelta := 0.0
		for _, path := range paths {
			delta := math.Abs(next[path] - rank[path])
			if delta > maxDelta {
				maxDelta = delta
			}
		}

		rank, next = next, rank

		if maxDelta < opts.Tolerance {
			break
		}
	}

	return rank
}
