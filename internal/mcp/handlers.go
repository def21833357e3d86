package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/standardbeagle/idcomplete/internal/debug"
	"github.com/standardbeagle/idcomplete/internal/version"
)

// AddIdentifiersParams carries the add_identifiers arguments.
type AddIdentifiersParams struct {
	Identifiers []string `json:"identifiers"`
}

// CompleteParams carries the complete arguments.
type CompleteParams struct {
	Query string `json:"query"`
	Max   int    `json:"max"`
}

func (s *Server) handleAddIdentifiers(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params AddIdentifiersParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return createErrorResponse("add_identifiers", fmt.Errorf("invalid parameters: %w", err))
	}

	added := s.db.Add(params.Identifiers)
	debug.Logf("add_identifiers: %d offered, %d added, %d total", len(params.Identifiers), added, s.db.Len())

	return createJSONResponse(map[string]interface{}{
		"added": added,
		"total": s.db.Len(),
	})
}

func (s *Server) handleComplete(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params CompleteParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return createErrorResponse("complete", fmt.Errorf("invalid parameters: %w", err))
	}

	completions := s.comp.CandidatesForQuery(params.Query)
	if params.Max > 0 && len(completions) > params.Max {
		completions = completions[:params.Max]
	}
	debug.Logf("complete: query %q -> %d completions", params.Query, len(completions))

	return createJSONResponse(map[string]interface{}{
		"query":       params.Query,
		"completions": completions,
		"count":       len(completions),
	})
}

func (s *Server) handleReset(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.db.Reset()
	return createJSONResponse(map[string]interface{}{
		"total": 0,
	})
}

func (s *Server) handleInfo(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return createJSONResponse(map[string]interface{}{
		"server_name":    "idcomplete-mcp-server",
		"server_version": version.FullInfo(),
		"identifiers":    s.db.Len(),
		"case_sensitive": s.cfg.Completer.CaseSensitive,
		"max_results":    s.cfg.Completer.MaxResults,
	})
}
