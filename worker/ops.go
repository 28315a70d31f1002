package worker

import "github.com/google/jsonschema-go/jsonschema"

// Operation describes one recognized message type for discovery.
type Operation struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	InputSchema *jsonschema.Schema `json:"inputSchema"`
}

// Operations returns the catalog of recognized message types with a
// JSON schema for each payload.
func Operations() []Operation {
	return []Operation{
		{
			Name:        string(TypeBuildGraph),
			Description: "Replace the whole graph with a node and edge snapshot. Edges referencing missing nodes are dropped.",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"nodes": {
						Type:        "array",
						Description: "Documents to add, deduplicated by path",
						Items: &jsonschema.Schema{
							Type: "object",
							Properties: map[string]*jsonschema.Schema{
								"path": {Type: "string", Description: "Unique document path"},
								"tags": {Type: "array", Items: &jsonschema.Schema{Type: "string"}, Description: "Tag strings"},
							},
							Required: []string{"path"},
						},
					},
					"edges": {
						Type:        "array",
						Description: "Directed links between documents",
						Items: &jsonschema.Schema{
							Type: "object",
							Properties: map[string]*jsonschema.Schema{
								"source": {Type: "string", Description: "Path of the linking document"},
								"target": {Type: "string", Description: "Path of the linked document"},
								"weight": {Type: "number", Description: "Positive link weight, defaults to 1"},
							},
							Required: []string{"source", "target"},
						},
					},
				},
				Required: []string{"nodes", "edges"},
			},
		},
		{
			Name:        string(TypeUpdateNode),
			Description: "Re-create one node with new tags and links. Every edge touching the node is removed first.",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"node": {
						Type: "object",
						Properties: map[string]*jsonschema.Schema{
							"path": {Type: "string", Description: "Unique document path"},
							"tags": {Type: "array", Items: &jsonschema.Schema{Type: "string"}, Description: "Tag strings"},
						},
						Required:    []string{"path"},
						Description: "Replacement node",
					},
					"edges": {
						Type:        "array",
						Description: "Links to establish after the node is re-created",
						Items: &jsonschema.Schema{
							Type: "object",
							Properties: map[string]*jsonschema.Schema{
								"source": {Type: "string", Description: "Path of the linking document"},
								"target": {Type: "string", Description: "Path of the linked document"},
								"weight": {Type: "number", Description: "Positive link weight, defaults to 1"},
							},
							Required: []string{"source", "target"},
						},
					},
				},
				Required: []string{"node"},
			},
		},
		{
			Name:        string(TypeRemoveNode),
			Description: "Delete a node and every edge that references it.",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"path": {Type: "string", Description: "Path of the node to delete"},
				},
				Required: []string{"path"},
			},
		},
		{
			Name:        string(TypeReindexMetadata),
			Description: "Replace the tag sets of existing nodes. Unknown paths are skipped and not counted.",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"nodes": {
						Type:        "array",
						Description: "Nodes with their replacement tag sets",
						Items: &jsonschema.Schema{
							Type: "object",
							Properties: map[string]*jsonschema.Schema{
								"path": {Type: "string", Description: "Existing document path"},
								"tags": {Type: "array", Items: &jsonschema.Schema{Type: "string"}, Description: "Replacement tag strings"},
							},
							Required: []string{"path"},
						},
					},
				},
				Required: []string{"nodes"},
			},
		},
		{
			Name:        string(TypeComputePageRank),
			Description: "Rank every node by weighted PageRank. Scores sum to 1 over the node set.",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"damping":       {Type: "number", Description: "Link-follow probability, defaults to 0.85"},
					"tolerance":     {Type: "number", Description: "Convergence threshold, defaults to 1e-4"},
					"maxIterations": {Type: "integer", Description: "Iteration cap, defaults to 100"},
				},
			},
		},
		{
			Name:        string(TypeSpreadingActivation),
			Description: "Spread decaying energy outward from a start node and rank the nodes it reaches.",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"startNode": {Type: "string", Description: "Path of the node to activate"},
					"decay":     {Type: "number", Description: "Per-hop energy decay, defaults to 0.5"},
					"initial":   {Type: "number", Description: "Start node energy, defaults to 1"},
					"threshold": {Type: "number", Description: "Minimum energy that still propagates, defaults to 0.01"},
				},
				Required: []string{"startNode"},
			},
		},
		{
			Name:        string(TypeAnalyzeNeighborhood),
			Description: "Annotate the bounded neighborhood of a node in a link snapshot with hop distances.",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"startNode": {Type: "string", Description: "Path to measure distances from"},
					"links": {
						Type:        "array",
						Description: "Resolved link pairs of the snapshot",
						Items: &jsonschema.Schema{
							Type: "object",
							Properties: map[string]*jsonschema.Schema{
								"source": {Type: "string", Description: "Linking document path"},
								"target": {Type: "string", Description: "Linked document path"},
							},
							Required: []string{"source", "target"},
						},
					},
					"allFiles": {
						Type:        "array",
						Items:       &jsonschema.Schema{Type: "string"},
						Description: "Every path in the snapshot; links outside this set are ignored",
					},
					"maxDepth": {Type: "integer", Description: "Maximum hop distance, 0 keeps only the start node"},
				},
				Required: []string{"startNode", "links", "allFiles"},
			},
		},
		{
			Name:        string(TypeDetectCommunities),
			Description: "Partition the graph into communities by label propagation.",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"maxPasses": {Type: "integer", Description: "Propagation pass cap, defaults to 100"},
				},
			},
		},
		{
			Name:        string(TypeGetSize),
			Description: "Report the current node and edge counts.",
			InputSchema: &jsonschema.Schema{
				Type:       "object",
				Properties: map[string]*jsonschema.Schema{},
			},
		},
		{
			Name:        string(TypeSearchContent),
			Description: "Search supplied file contents for a query, exact or fuzzy, with relevance scoring.",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"query": {Type: "string", Description: "Text to search for, matched case-insensitively"},
					"fileContents": {
						Type:        "array",
						Description: "Documents to scan",
						Items: &jsonschema.Schema{
							Type: "object",
							Properties: map[string]*jsonschema.Schema{
								"path":    {Type: "string", Description: "Document path"},
								"content": {Type: "string", Description: "Document text"},
							},
							Required: []string{"path", "content"},
						},
					},
					"fuzzy": {Type: "boolean", Description: "Subsequence matching instead of exact substrings"},
				},
				Required: []string{"query", "fileContents"},
			},
		},
		{
			Name:        string(TypeListOperations),
			Description: "List every recognized message type with its payload schema.",
			InputSchema: &jsonschema.Schema{
				Type:       "object",
				Properties: map[string]*jsonschema.Schema{},
			},
		},
		{
			Name:        string(TypeReady),
			Description: "Confirm the engine is ready to serve requests.",
			InputSchema: &jsonschema.Schema{
				Type:       "object",
				Properties: map[string]*jsonschema.Schema{},
			},
		},
	}
}
