// Package mcp serves the identifier completer over the Model Context
// Protocol. The matcher core stays transport-free; this package owns the
// stdio plumbing, tool schemas and JSON responses.
package mcp

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/standardbeagle/idcomplete/internal/completer"
	"github.com/standardbeagle/idcomplete/internal/config"
	"github.com/standardbeagle/idcomplete/internal/debug"
	"github.com/standardbeagle/idcomplete/internal/version"
)

// Server wires a completer and its database to MCP tools.
type Server struct {
	cfg    *config.Config
	db     *completer.Database
	comp   *completer.Completer
	server *mcp.Server
}

// NewServer builds the MCP server and registers its tools. Identifiers can
// be preloaded by the caller through Database before Run.
func NewServer(cfg *config.Config) *Server {
	db := completer.NewDatabase()
	db.SetMinIdentifierLength(cfg.Completer.MinIdentifierLength)

	s := &Server{
		cfg: cfg,
		db:  db,
		comp: completer.New(db, completer.Options{
			MaxResults:    cfg.Completer.MaxResults,
			CaseSensitive: cfg.Completer.CaseSensitive,
			Workers:       cfg.Completer.Workers,
		}),
	}

	s.server = mcp.NewServer(&mcp.Implementation{
		Name:    "idcomplete-mcp-server",
		Version: version.Version,
	}, nil)
	s.registerTools()
	return s
}

// Database returns the identifier database backing the server.
func (s *Server) Database() *completer.Database {
	return s.db
}

// Run serves MCP over stdio until the context is cancelled or the client
// disconnects.
func (s *Server) Run(ctx context.Context) error {
	debug.SetMCPMode(true)
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// registerTools declares the tool surface: identifier management plus the
// completion query itself.
func (s *Server) registerTools() {
	s.server.AddTool(&mcp.Tool{
		Name:        "add_identifiers",
		Description: "Add identifiers to the completion database. Duplicates, short identifiers and non-printable text are skipped.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"identifiers": {
					Type:        "array",
					Description: "Identifiers to add",
					Items:       &jsonschema.Schema{Type: "string"},
				},
			},
			Required: []string{"identifiers"},
		},
	}, s.handleAddIdentifiers)

	s.server.AddTool(&mcp.Tool{
		Name:        "complete",
		Description: "Rank stored identifiers against a query using smart-case fuzzy subsequence matching. Best matches first.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"query": {
					Type:        "string",
					Description: "Partial identifier to complete",
				},
				"max": {
					Type:        "integer",
					Description: "Maximum number of completions to return (0 = server default)",
				},
			},
			Required: []string{"query"},
		},
	}, s.handleComplete)

	s.server.AddTool(&mcp.Tool{
		Name:        "reset",
		Description: "Drop every stored identifier.",
		InputSchema: &jsonschema.Schema{
			Type:       "object",
			Properties: map[string]*jsonschema.Schema{},
		},
	}, s.handleReset)

	s.server.AddTool(&mcp.Tool{
		Name:        "info",
		Description: "Server version and database statistics.",
		InputSchema: &jsonschema.Schema{
			Type:       "object",
			Properties: map[string]*jsonschema.Schema{},
		},
	}, s.handleInfo)
}
