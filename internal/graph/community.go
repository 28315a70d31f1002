package graph

// DefaultMaxPasses caps label-propagation passes.
const DefaultMaxPasses = 100

// DetectCommunities partitions the graph into communities by label
// propagation over the undirected weighted neighbor view. Every node
// starts in its own community; on each pass every node, visited in
// ascending path order, adopts the label with the highest summed edge
// weight among its current neighbors, ties resolving to the smaller
// label. Updates apply in place during the sweep, so a pass never
// oscillates between two label assignments. Propagation stops when a
// pass changes nothing or after maxPasses (values below 1 fall back to
// the default cap).
//
// Final labels are renumbered consecutively from 0 in ascending path
// order, so identical graphs always produce identical assignments.
// Returns the per-path community ids and the community count.
func (g *LinkGraph) DetectCommunities(maxPasses int) (map[string]int, int) {
	if maxPasses < 1 {
		maxPasses = DefaultMaxPasses
	}

	paths := g.Paths()
	if len(paths) == 0 {
		return map[string]int{}, 0
	}

	weights := g.undirectedWeights()

	labels := make(map[string]int, len(paths))
	for i, path := range paths {
		labels[path] = i
	}

	for pass := 0; pass < maxPasses; pass++ {
		changed := false

		for _, path := range paths {
			neighbors := weights[path]
			if len(neighbors) == 0 {
				continue
			}

			support := make(map[int]float64, len(neighbors))
			for neighbor, weight := range neighbors {
				support[labels[neighbor]] += weight
			}

			// Max support wins; equal support resolves to the smaller
			// label, so the winner is independent of map order.
			bestLabel := -1
			bestSupport := 0.0
			for label, total := range support {
				if bestLabel == -1 || total > bestSupport ||
					(total == bestSupport && label < bestLabel) {
					bestLabel = label
					bestSupport = total
				}
			}

			if bestLabel != labels[path] {
				labels[path] = bestLabel
				changed = true
			}
		}

		if !changed {
			break
		}
	}

	communities := make(map[string]int, len(paths))
	idByLabel := make(map[int]int)
	nextID := 0
	for _, path := range paths {
		label := labels[path]
		id, ok := idByLabel[label]
		if !ok {
			id = nextID
			idByLabel[label] = id
			nextID++
		}
		communities[path] = id
	}
	return communities, nextID
}
