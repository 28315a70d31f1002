package graph

import "sort"

// NeighborhoodNode is one node of a bounded neighborhood, annotated
// with its hop distance from the start node.
type NeighborhoodNode struct {
	Path  string `json:"path"`
	Depth int    `json:"depth"`
}

// AnalyzeNeighborhood walks a link snapshot breadth-first from the
// start node and annotates every node within maxDepth hops with its
// minimum hop distance. Links are treated as undirected, and links
// naming files outside allFiles are ignored. The snapshot stands on
// its own; no LinkGraph state is consulted.
//
// The start node appears at depth 0. A negative maxDepth is treated as
// 0, and a start missing from allFiles yields an empty result. Nodes
// are sorted by depth ascending, then path ascending.
func AnalyzeNeighborhood(start string, links []LinkPair, allFiles []string, maxDepth int) []NeighborhoodNode {
	if maxDepth < 0 {
		maxDepth = 0
	}

	universe := make(map[string]struct{}, len(allFiles))
	for _, file := range allFiles {
		universe[file] = struct{}{}
	}
	if _, ok := universe[start]; !ok {
		return []NeighborhoodNode{}
	}

	adjacency := make(map[string][]string)
	for _, link := range links {
		if _, ok := universe[link.Source]; !ok {
			continue
		}
		if _, ok := universe[link.Target]; !ok {
			continue
		}
		adjacency[link.Source] = append(adjacency[link.Source], link.Target)
		adjacency[link.Target] = append(adjacency[link.Target], link.Source)
	}

	type frontier struct {
		path  string
		depth int
	}

	depths := map[string]int{start: 0}
	queue := []frontier{{path: start, depth: 0}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.depth == maxDepth {
			continue
		}

		for _, neighbor := range adjacency[current.path] {
			if _, seen := depths[neighbor]; seen {
				continue
			}
			depths[neighbor] = current.depth + 1
			queue = append(queue, frontier{path: neighbor, depth: current.depth + 1})
		}
	}

	nodes := make([]NeighborhoodNode, 0, len(depths))
	for path, depth := range depths {
		nodes = append(nodes, NeighborhoodNode{Path: path, Depth: depth})
	}
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].Depth != nodes[j].Depth {
			return nodes[i].Depth < nodes[j].Depth
		}
		return nodes[i].Path < nodes[j].Path
	})
	return nodes
}
