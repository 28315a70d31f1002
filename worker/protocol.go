// Package worker implements the engine's request/response protocol:
// newline-delimited JSON envelopes read from an input stream and
// answered one compact JSON line each, dispatched strictly
// sequentially to the graph and search engines.
package worker

import (
	"encoding/json"

	"github.com/quiverlabs/quiver-go/internal/graph"
	"github.com/quiverlabs/quiver-go/internal/search"
)

// MessageType identifies the operation a request invokes.
type MessageType string

// Recognized message types.
const (
	TypeBuildGraph          MessageType = "BUILD_GRAPH"
	TypeUpdateNode          MessageType = "UPDATE_NODE"
	TypeRemoveNode          MessageType = "REMOVE_NODE"
	TypeReindexMetadata     MessageType = "REINDEX_METADATA"
	TypeComputePageRank     MessageType = "COMPUTE_PAGERANK"
	TypeSpreadingActivation MessageType = "SPREADING_ACTIVATION"
	TypeAnalyzeNeighborhood MessageType = "ANALYZE_NEIGHBORHOOD"
	TypeDetectCommunities   MessageType = "DETECT_COMMUNITIES"
	TypeGetSize             MessageType = "GET_SIZE"
	TypeSearchContent       MessageType = "SEARCH_CONTENT"
	TypeListOperations      MessageType = "LIST_OPERATIONS"
	TypeReady               MessageType = "READY"
)

// ReadyID is the correlation id of the readiness notification emitted
// once at startup, before any request is read.
const ReadyID = "worker-ready"

// Request is one inbound envelope.
type Request struct {
	ID      string          `json:"id"`
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Response is one outbound envelope. Data is set on success, Error on
// failure, never both.
type Response struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SuccessResponse wraps a handler result for the given request id.
func SuccessResponse(id string, data any) Response {
	return Response{ID: id, Success: true, Data: data}
}

// FailureResponse wraps an error message for the given request id.
func FailureResponse(id string, message string) Response {
	return Response{ID: id, Success: false, Error: message}
}

// EdgeSpec is one link in a build or update payload. A nil weight
// defaults to 1.
type EdgeSpec struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Weight *float64 `json:"weight,omitempty"`
}

func (e EdgeSpec) edge() graph.Edge {
	weight := 1.0
	if e.Weight != nil {
		weight = *e.Weight
	}
	return graph.Edge{Source: e.Source, Target: e.Target, Weight: weight}
}

// BuildGraphPayload replaces the whole graph with a fresh snapshot.
type BuildGraphPayload struct {
	Nodes []graph.Node `json:"nodes"`
	Edges []EdgeSpec   `json:"edges"`
}

// UpdateNodePayload re-creates one node together with its links.
type UpdateNodePayload struct {
	Node  graph.Node `json:"node"`
	Edges []EdgeSpec `json:"edges"`
}

// RemoveNodePayload names the node to delete.
type RemoveNodePayload struct {
	Path string `json:"path"`
}

// ReindexMetadataPayload carries replacement tag sets for existing
// nodes.
type ReindexMetadataPayload struct {
	Nodes []graph.Node `json:"nodes"`
}

// PageRankPayload tunes the PageRank computation. Missing fields fall
// back to the engine defaults.
type PageRankPayload struct {
	Damping       float64 `json:"damping"`
	Tolerance     float64 `json:"tolerance"`
	MaxIterations int     `json:"maxIterations"`
}

// ActivationPayload selects the start node and tuning for spreading
// activation. Missing tuning fields fall back to the engine defaults.
type ActivationPayload struct {
	StartNode string  `json:"startNode"`
	Decay     float64 `json:"decay"`
	Initial   float64 `json:"initial"`
	Threshold float64 `json:"threshold"`
}

// NeighborhoodPayload carries the link snapshot for neighborhood
// analysis.
type NeighborhoodPayload struct {
	StartNode string           `json:"startNode"`
	Links     []graph.LinkPair `json:"links"`
	AllFiles  []string         `json:"allFiles"`
	MaxDepth  int              `json:"maxDepth"`
}

// DetectCommunitiesPayload tunes community detection.
type DetectCommunitiesPayload struct {
	MaxPasses int `json:"maxPasses"`
}

// SearchContentPayload carries the corpus to scan.
type SearchContentPayload struct {
	Query        string         `json:"query"`
	FileContents []search.Entry `json:"fileContents"`
	Fuzzy        bool           `json:"fuzzy"`
}

// GraphSizeResult reports the graph's node and edge counts.
type GraphSizeResult struct {
	Order int `json:"order"`
	Size  int `json:"size"`
}

// ReindexResult reports how many nodes had their tags replaced.
type ReindexResult struct {
	Updated int `json:"updated"`
}

// PageRankResult carries the per-path scores.
type PageRankResult struct {
	Scores map[string]float64 `json:"scores"`
}

// ActivationResult lists activated nodes in rank order.
type ActivationResult struct {
	ActivatedNodes []graph.ActivatedNode `json:"activatedNodes"`
}

// NeighborhoodResult lists the bounded neighborhood.
type NeighborhoodResult struct {
	Nodes []graph.NeighborhoodNode `json:"nodes"`
}

// CommunitiesResult carries the community assignment.
type CommunitiesResult struct {
	Communities map[string]int `json:"communities"`
	Count       int            `json:"count"`
}

// OperationsResult catalogs the recognized message types.
type OperationsResult struct {
	Operations []Operation `json:"operations"`
}

// ReadyResult signals engine readiness.
type ReadyResult struct {
	Status string `json:"status"`
}
