// Package graph provides the link graph data model for Quiver.
//
// It defines the node and edge types that represent corpus documents
// and the directed, weighted links between them.
package graph

// Node represents a document in the link graph.
type Node struct {
	// Path is the unique corpus key for the document.
	Path string `json:"path"`

	// Tags holds the document's tag strings.
	Tags []string `json:"tags,omitempty"`
}

// Edge represents a directed, weighted link between two documents.
// Two nodes may be connected by any number of parallel edges, one per
// distinct link occurrence.
type Edge struct {
	// Source is the path of the linking document.
	Source string `json:"source"`

	// Target is the path of the linked document.
	Target string `json:"target"`

	// Weight is the positive, finite transition weight of the link.
	Weight float64 `json:"weight"`
}

// LinkPair is one resolved link in an externally supplied snapshot.
// Snapshots are consumed read-only by neighborhood analysis and never
// touch the owned graph.
type LinkPair struct {
	Source string `json:"source"`
	Target string `json:"target"`
}
