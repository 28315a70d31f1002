package worker

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/quiverlabs/quiver-go/internal/graph"
	"github.com/quiverlabs/quiver-go/internal/search"
)

// Server owns one link graph and answers protocol envelopes. Requests
// are processed strictly sequentially; no two handlers ever run
// concurrently, so the graph needs no locking.
type Server struct {
	graph  *graph.LinkGraph
	logger *zap.Logger
}

// NewServer creates a server around the given graph. A nil logger
// falls back to a no-op logger.
func NewServer(g *graph.LinkGraph, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{graph: g, logger: logger}
}

// Run reads newline-delimited JSON requests from stdin and writes one
// response line per request to stdout. The readiness notification is
// emitted before the first read. Run returns when the input stream
// ends or the context is canceled.
func (s *Server) Run(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	if stdin == nil || stdout == nil {
		return fmt.Errorf("stdin and stdout must not be nil")
	}

	reader := bufio.NewReader(stdin)
	encoder := json.NewEncoder(stdout)
	// Note: Do NOT use SetIndent - the protocol requires compact JSON (one line per message)

	if err := encoder.Encode(SuccessResponse(ReadyID, ReadyResult{Status: "ready"})); err != nil {
		return fmt.Errorf("writing readiness notification: %w", err)
	}
	s.logger.Info("engine ready")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := reader.ReadBytes('\n')
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading request: %w", err)
		}

		// A line that does not decode into an envelope carries no
		// usable correlation id, so no reply is possible.
		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			s.logger.Warn("skipping undecodable request line", zap.Error(err))
			continue
		}

		resp := s.Dispatch(req)
		if err := encoder.Encode(resp); err != nil {
			return fmt.Errorf("writing response: %w", err)
		}
	}
}

// Dispatch routes one request to its handler and converts the outcome
// into a response envelope. A panicking handler is recovered here and
// reported as a failure reply; the process keeps serving.
func (s *Server) Dispatch(req Request) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("recovered handler panic",
				zap.String("id", req.ID),
				zap.String("type", string(req.Type)),
				zap.Any("panic", r),
			)
			resp = FailureResponse(req.ID, fmt.Sprintf("internal error: %v", r))
		}
	}()

	s.logger.Debug("dispatching request",
		zap.String("id", req.ID),
		zap.String("type", string(req.Type)),
	)

	switch req.Type {
	case TypeBuildGraph:
		return s.handleBuildGraph(req)
	case TypeUpdateNode:
		return s.handleUpdateNode(req)
	case TypeRemoveNode:
		return s.handleRemoveNode(req)
	case TypeReindexMetadata:
		return s.handleReindexMetadata(req)
	case TypeComputePageRank:
		return s.handleComputePageRank(req)
	case TypeSpreadingActivation:
		return s.handleSpreadingActivation(req)
	case TypeAnalyzeNeighborhood:
		return s.handleAnalyzeNeighborhood(req)
	case TypeDetectCommunities:
		return s.handleDetectCommunities(req)
	case TypeGetSize:
		return SuccessResponse(req.ID, s.sizeResult())
	case TypeSearchContent:
		return s.handleSearchContent(req)
	case TypeListOperations:
		return SuccessResponse(req.ID, OperationsResult{Operations: Operations()})
	case TypeReady:
		return SuccessResponse(req.ID, ReadyResult{Status: "ready"})
	default:
		return FailureResponse(req.ID, fmt.Sprintf("unknown message type: %s", req.Type))
	}
}

func (s *Server) handleBuildGraph(req Request) Response {
	var payload BuildGraphPayload
	if err := decodePayload(req.Payload, &payload); err != nil {
		return decodeFailure(req, err)
	}

	edges := make([]graph.Edge, 0, len(payload.Edges))
	for _, spec := range payload.Edges {
		edges = append(edges, spec.edge())
	}
	s.graph.Build(payload.Nodes, edges)

	s.logger.Debug("graph rebuilt",
		zap.Int("order", s.graph.Order()),
		zap.Int("size", s.graph.Size()),
	)
	return SuccessResponse(req.ID, s.sizeResult())
}

func (s *Server) handleUpdateNode(req Request) Response {
	var payload UpdateNodePayload
	if err := decodePayload(req.Payload, &payload); err != nil {
		return decodeFailure(req, err)
	}

	edges := make([]graph.Edge, 0, len(payload.Edges))
	for _, spec := range payload.Edges {
		edges = append(edges, spec.edge())
	}
	s.graph.UpdateNode(payload.Node, edges)

	return SuccessResponse(req.ID, s.sizeResult())
}

func (s *Server) handleRemoveNode(req Request) Response {
	var payload RemoveNodePayload
	if err := decodePayload(req.Payload, &payload); err != nil {
		return decodeFailure(req, err)
	}

	s.graph.RemoveNode(payload.Path)

	return SuccessResponse(req.ID, s.sizeResult())
}

func (s *Server) handleReindexMetadata(req Request) Response {
	var payload ReindexMetadataPayload
	if err := decodePayload(req.Payload, &payload); err != nil {
		return decodeFailure(req, err)
	}

	updated := 0
	for _, node := range payload.Nodes {
		if s.graph.SetTags(node.Path, node.Tags) {
			updated++
		}
	}

	return SuccessResponse(req.ID, ReindexResult{Updated: updated})
}

func (s *Server) handleComputePageRank(req Request) Response {
	var payload PageRankPayload
	if err := decodePayload(req.Payload, &payload); err != nil {
		return decodeFailure(req, err)
	}

	scores := s.graph.PageRank(graph.PageRankOptions{
		Damping:       payload.Damping,
		Tolerance:     payload.Tolerance,
		MaxIterations: payload.MaxIterations,
	})

	return SuccessResponse(req.ID, PageRankResult{Scores: scores})
}

func (s *Server) handleSpreadingActivation(req Request) Response {
	var payload ActivationPayload
	if err := decodePayload(req.Payload, &payload); err != nil {
		return decodeFailure(req, err)
	}

	activated := s.graph.SpreadingActivation(payload.StartNode, graph.ActivationOptions{
		Decay:     payload.Decay,
		Initial:   payload.Initial,
		Threshold: payload.Threshold,
	})

	return SuccessResponse(req.ID, ActivationResult{ActivatedNodes: activated})
}

func (s *Server) handleAnalyzeNeighborhood(req Request) Response {
	var payload NeighborhoodPayload
	if err := decodePayload(req.Payload, &payload); err != nil {
		return decodeFailure(req, err)
	}

	nodes := graph.AnalyzeNeighborhood(payload.StartNode, payload.Links, payload.AllFiles, payload.MaxDepth)

	return SuccessResponse(req.ID, NeighborhoodResult{Nodes: nodes})
}

func (s *Server) handleDetectCommunities(req Request) Response {
	var payload DetectCommunitiesPayload
	if err := decodePayload(req.Payload, &payload); err != nil {
		return decodeFailure(req, err)
	}

	communities, count := s.graph.DetectCommunities(payload.MaxPasses)

	return SuccessResponse(req.ID, CommunitiesResult{Communities: communities, Count: count})
}

func (s *Server) handleSearchContent(req Request) Response {
	var payload SearchContentPayload
	if err := decodePayload(req.Payload, &payload); err != nil {
		return decodeFailure(req, err)
	}

	result := search.Search(payload.Query, payload.FileContents, payload.Fuzzy)

	return SuccessResponse(req.ID, result)
}

func (s *Server) sizeResult() GraphSizeResult {
	return GraphSizeResult{Order: s.graph.Order(), Size: s.graph.Size()}
}

// decodePayload unmarshals a request payload. A missing payload
// decodes as the zero value, so optional tuning payloads can be
// omitted entirely.
func decodePayload(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, v)
}

func decodeFailure(req Request, err error) Response {
	return FailureResponse(req.ID, fmt.Sprintf("decoding %s payload: %v", req.Type, err))
}
