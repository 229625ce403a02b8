// ABOUTME: MCP server initialization and configuration
// ABOUTME: Exposes the walk selection, recommendation and history to agents

package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/seyeon-q/soomgil/internal/api"
	"github.com/seyeon-q/soomgil/internal/history"
	"github.com/seyeon-q/soomgil/internal/savegate"
	"github.com/seyeon-q/soomgil/internal/selection"
)

// Server wraps the MCP server with the app's state and collaborators.
type Server struct {
	mcp       *mcp.Server
	selection *selection.State
	ledger    *history.Ledger
	gate      *savegate.Gate
	client    *api.Client
}

// NewServer creates an MCP server with all capabilities. The save-gate is
// seeded from the ledger once, at startup, like a mounting result view.
func NewServer(sel *selection.State, ledger *history.Ledger, client *api.Client) (*Server, error) {
	if sel == nil || ledger == nil || client == nil {
		return nil, fmt.Errorf("selection, ledger and api client are required")
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "soomgil",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcp:       mcpServer,
		selection: sel,
		ledger:    ledger,
		gate:      savegate.New(ledger),
		client:    client,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server in stdio mode.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}
