// ABOUTME: MCP resource definitions
// ABOUTME: Read-only view of the saved walk history

package mcp

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/seyeon-q/soomgil/internal/history"
)

func (s *Server) registerResources() {
	s.mcp.AddResource(&mcp.Resource{
		Name:        "soomgil://history",
		Description: "All saved walks, newest first",
		URI:         "soomgil://history",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)
}

func (s *Server) handleHistoryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	records := s.ledger.All()
	output := HistoryOutput{
		Records:      records,
		Count:        len(records),
		TotalMinutes: history.TotalMinutes(records),
	}

	jsonBytes, _ := json.MarshalIndent(output, "", "  ") //nolint:errchkjson // output is always serializable

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      "soomgil://history",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		},
	}, nil
}
