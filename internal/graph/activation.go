package graph

import (
	"math"
	"sort"
)

// Default spreading-activation parameters, applied whenever an option
// is missing or out of range.
const (
	DefaultDecay               = 0.5
	DefaultInitialEnergy       = 1.0
	DefaultActivationThreshold = 0.01
)

// ActivationOptions tunes energy propagation. Out-of-range values fall
// back to the defaults above.
type ActivationOptions struct {
	// Decay scales the energy offered to each neighbor. Must lie
	// strictly between 0 and 1.
	Decay float64

	// Initial is the energy assigned to the start node. Must lie in
	// (0, 1].
	Initial float64

	// Threshold is the minimum outgoing energy that still propagates.
	Threshold float64
}

func (o *ActivationOptions) normalize() {
	if math.IsNaN(o.Decay) || o.Decay <= 0 || o.Decay >= 1 {
		o.Decay = DefaultDecay
	}
	if math.IsNaN(o.Initial) || o.Initial <= 0 || o.Initial > 1 {
		o.Initial = DefaultInitialEnergy
	}
	if math.IsNaN(o.Threshold) || o.Threshold <= 0 {
		o.Threshold = DefaultActivationThreshold
	}
}

// ActivatedNode is one node reached by spreading activation, scored by
// the highest energy that arrived at it.
type ActivatedNode struct {
	Path  string  `json:"path"`
	Score float64 `json:"score"`
}

// SpreadingActivation propagates energy outward from the start node
// over the undirected neighbor view. Each explored node offers
// energy*decay to every direct neighbor in full; a neighbor is
// re-explored only when the offered energy clears the threshold and
// strictly exceeds the energy already recorded for it. Edge weights do
// not influence propagation.
//
// The result lists every node that received energy, excluding the
// start node itself, sorted by score descending with ties broken by
// path ascending. An unknown start yields an empty result.
func (g *LinkGraph) SpreadingActivation(start string, opts ActivationOptions) []ActivatedNode {
	opts.normalize()

	if !g.HasNode(start) {
		return []ActivatedNode{}
	}

	type pending struct {
		path   string
		energy float64
	}

	recorded := map[string]float64{start: opts.Initial}
	queue := []pending{{path: start, energy: opts.Initial}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		// Superseded by a higher-energy visit that is already queued.
		if current.energy < recorded[current.path] {
			continue
		}

		output := current.energy * opts.Decay
		if output <= opts.Threshold {
			continue
		}

		for _, neighbor := range g.Neighbors(current.path) {
			if output > recorded[neighbor] {
				recorded[neighbor] = output
				queue = append(queue, pending{path: neighbor, energy: output})
			}
		}
	}

	activated := make([]ActivatedNode, 0, len(recorded))
	for path, score := range recorded {
		if path == start {
			continue
		}
		activated = append(activated, ActivatedNode{Path: path, Score: score})
	}
	sort.Slice(activated, func(i, j int) bool {
		if activated[i].Score != activated[j].Score {
			return activated[i].Score > activated[j].Score
		}
		return activated[i].Path < activated[j].Path
	})
	return activated
}
