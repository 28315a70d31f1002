// Package graph provides the in-memory link graph for Quiver.
//
// It provides a lightweight, map-backed multigraph that stores Node and
// Edge instances with O(1) lookups by path. Adjacency indexes on both
// edge directions keep traversals proportional to the result set rather
// than the total graph size.
package graph

import (
	"math"
	"sort"
)

// LinkGraph is an in-memory directed multigraph of corpus documents.
//
// Nodes are keyed by their path. Edges carry an internal id so that
// parallel edges between the same pair of nodes stay distinct. Removing
// a node cascades to every edge where the node appears as source or
// target, so the graph never holds a dangling edge.
//
// A LinkGraph is not safe for concurrent use. The worker processes
// requests strictly sequentially, so mutations and queries never
// overlap.
type LinkGraph struct {
	nodes map[string]*Node
	edges map[int]*Edge

	// Adjacency indexes, kept in sync by add/remove helpers.
	outgoing map[string]map[int]*Edge
	incoming map[string]map[int]*Edge

	nextEdgeID int
}

// NewLinkGraph creates a new empty link graph.
func NewLinkGraph() *LinkGraph {
	g := &LinkGraph{}
	g.Clear()
	return g
}

// Clear removes all nodes and edges.
func (g *LinkGraph) Clear() {
	g.nodes = make(map[string]*Node)
	g.edges = make(map[int]*Edge)
	g.outgoing = make(map[string]map[int]*Edge)
	g.incoming = make(map[string]map[int]*Edge)
	g.nextEdgeID = 0
}

// Order returns the number of nodes without list materialization.
func (g *LinkGraph) Order() int {
	return len(g.nodes)
}

// Size returns the number of edges without list materialization.
func (g *LinkGraph) Size() int {
	return len(g.edges)
}

// HasNode reports whether a node with the given path exists.
func (g *LinkGraph) HasNode(path string) bool {
	_, ok := g.nodes[path]
	return ok
}

// GetNode returns the node with the given path, or nil if it does not exist.
func (g *LinkGraph) GetNode(path string) *Node {
	return g.nodes[path]
}

// Paths returns all node paths in ascending order.
func (g *LinkGraph) Paths() []string {
	paths := make([]string, 0, len(g.nodes))
	for path := range g.nodes {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// AddNode adds a node to the graph. Re-adding an existing path is a
// no-op that keeps the first occurrence; it returns false and is never
// an error.
func (g *LinkGraph) AddNode(node Node) bool {
	if _, ok := g.nodes[node.Path]; ok {
		return false
	}
	stored := node
	g.nodes[node.Path] = &stored
	return true
}

// AddEdge adds a directed edge. The edge is dropped, returning false,
// unless both endpoint nodes exist and the weight is positive and
// finite. This is the invariant that keeps dangling edges out of the
// graph.
func (g *LinkGraph) AddEdge(edge Edge) bool {
	if edge.Weight <= 0 || math.IsNaN(edge.Weight) || math.IsInf(edge.Weight, 0) {
		return false
	}
	if _, ok := g.nodes[edge.Source]; !ok {
		return false
	}
	if _, ok := g.nodes[edge.Target]; !ok {
		return false
	}

	id := g.nextEdgeID
	g.nextEdgeID++

	stored := edge
	g.edges[id] = &stored

	if g.outgoing[edge.Source] == nil {
		g.outgoing[edge.Source] = make(map[int]*Edge)
	}
	g.outgoing[edge.Source][id] = &stored

	if g.incoming[edge.Target] == nil {
		g.incoming[edge.Target] = make(map[int]*Edge)
	}
	g.incoming[edge.Target][id] = &stored

	return true
}

// RemoveNode removes a node and cascade-deletes all edges that reference it.
// Returns true if the node existed and was removed, false otherwise.
func (g *LinkGraph) RemoveNode(path string) bool {
	if _, ok := g.nodes[path]; !ok {
		return false
	}

	delete(g.nodes, path)
	g.cascadeEdgesForNode(path)
	return true
}

// UpdateNode removes the named node and its incident edges if present,
// re-creates it with the new tag set, then adds the given edges subject
// to the usual endpoint and weight gates. Edges to nodes outside this
// node's neighborhood that need re-establishing must be supplied by the
// caller; no edge discovery happens here.
func (g *LinkGraph) UpdateNode(node Node, edges []Edge) {
	g.RemoveNode(node.Path)
	g.AddNode(node)
	for _, edge := range edges {
		g.AddEdge(edge)
	}
}

// SetTags replaces the tag set of an existing node. Returns false when
// the path is unknown, leaving the graph untouched.
func (g *LinkGraph) SetTags(path string, tags []string) bool {
	node, ok := g.nodes[path]
	if !ok {
		return false
	}
	node.Tags = tags
	return true
}

// Build clears all existing graph state, then adds every node
// (deduplicated by path) and every edge whose endpoints exist.
// Calling Build twice with identical input yields an identical graph.
func (g *LinkGraph) Build(nodes []Node, edges []Edge) {
	g.Clear()
	for _, node := range nodes {
		g.AddNode(node)
	}
	for _, edge := range edges {
		g.AddEdge(edge)
	}
}

// Neighbors returns the deduplicated union of out- and in-neighbors of
// the given path in ascending order. The node itself is excluded even
// when self-loops exist. An unknown path yields an empty result.
func (g *LinkGraph) Neighbors(path string) []string {
	seen := make(map[string]struct{})
	for _, edge := range g.outgoing[path] {
		if edge.Target != path {
			seen[edge.Target] = struct{}{}
		}
	}
	for _, edge := range g.incoming[path] {
		if edge.Source != path {
			seen[edge.Source] = struct{}{}
		}
	}

	neighbors := make([]string, 0, len(seen))
	for neighbor := range seen {
		neighbors = append(neighbors, neighbor)
	}
	sort.Strings(neighbors)
	return neighbors
}

// cascadeEdgesForNode removes all edges where the node is source or target.
func (g *LinkGraph) cascadeEdgesForNode(path string) {
	if out, ok := g.outgoing[path]; ok {
		for id, edge := range out {
			delete(g.edges, id)
			delete(g.incoming[edge.Target], id)
		}
		delete(g.outgoing, path)
	}

	if in, ok := g.incoming[path]; ok {
		for id, edge := range in {
			delete(g.edges, id)
			delete(g.outgoing[edge.Source], id)
		}
		delete(g.incoming, path)
	}
}

// undirectedWeights accumulates edge weights into a symmetric adjacency
// view. Parallel edges sum; self-loops are skipped because no algorithm
// over the undirected view consults them.
func (g *LinkGraph) undirectedWeights() map[string]map[string]float64 {
	weights := make(map[string]map[string]float64, len(g.nodes))
	for _, edge := range g.edges {
		if edge.Source == edge.Target {
			continue
		}
		if weights[edge.Source] == nil {
			weights[edge.Source] = make(map[string]float64)
		}
		if weights[edge.Target] == nil {
			weights[edge.Target] = make(map[string]float64)
		}
		weights[edge.Source][edge.Target] += edge.Weight
		weights[edge.Target][edge.Source] += edge.Weight
	}
	return weights
}
