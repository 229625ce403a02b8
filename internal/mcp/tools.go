// ABOUTME: MCP tool definitions and handlers
// ABOUTME: Selection editing, route recommendation and gated history saves

package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/seyeon-q/soomgil/internal/api"
	"github.com/seyeon-q/soomgil/internal/geojson"
	"github.com/seyeon-q/soomgil/internal/history"
	"github.com/seyeon-q/soomgil/internal/models"
	"github.com/seyeon-q/soomgil/internal/savegate"
	"github.com/seyeon-q/soomgil/internal/selection"
)

func (s *Server) registerTools() {
	s.registerGetSelectionTool()
	s.registerSetSelectionTool()
	s.registerRecommendRouteTool()
	s.registerSaveWalkTool()
	s.registerGetHistoryTool()
	s.registerClearHistoryTool()
}

// SelectionOutput defines output for selection tools.
type SelectionOutput struct {
	StartLocation *models.LatLng `json:"start_location,omitempty"`
	Address       string         `json:"address,omitempty"`
	DurationMin   *int           `json:"duration_min,omitempty"`
	CanProceed    bool           `json:"can_proceed"`
}

func (s *Server) selectionOutput() SelectionOutput {
	return SelectionOutput{
		StartLocation: s.selection.StartLocation(),
		Address:       s.selection.Address(),
		DurationMin:   s.selection.Duration(),
		CanProceed:    s.selection.CanProceed(),
	}
}

// GetSelectionInput is empty but required for type.
type GetSelectionInput struct{}

func (s *Server) registerGetSelectionTool() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_selection",
		Description: "Get the current trip selection (start location, address, duration) and whether a route can be requested.",
		InputSchema: map[string]interface{}{
			"type": "object",
		},
	}, s.handleGetSelection)
}

func (s *Server) handleGetSelection(_ context.Context, req *mcp.CallToolRequest, input GetSelectionInput) (*mcp.CallToolResult, SelectionOutput, error) {
	output := s.selectionOutput()
	jsonBytes, _ := json.MarshalIndent(output, "", "  ") //nolint:errchkjson // output is always serializable
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(jsonBytes)}},
	}, output, nil
}

// SetSelectionInput defines input for set_selection tool.
type SetSelectionInput struct {
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Address     *string  `json:"address,omitempty"`
	DurationMin *int     `json:"duration_min,omitempty"`
}

func (s *Server) registerSetSelectionTool() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "set_selection",
		Description: "Update parts of the trip selection. Fields left out are unchanged; the selection persists across sessions.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"latitude": map[string]interface{}{
					"type":        "number",
					"description": "Start latitude (-90 to 90), set together with longitude",
				},
				"longitude": map[string]interface{}{
					"type":        "number",
					"description": "Start longitude (-180 to 180), set together with latitude",
				},
				"address": map[string]interface{}{
					"type":        "string",
					"description": "Human-readable start address",
				},
				"duration_min": map[string]interface{}{
					"type":        "integer",
					"description": "Walk duration in minutes (at least 5 to proceed)",
				},
			},
		},
	}, s.handleSetSelection)
}

func (s *Server) handleSetSelection(_ context.Context, req *mcp.CallToolRequest, input SetSelectionInput) (*mcp.CallToolResult, SelectionOutput, error) {
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return nil, SelectionOutput{}, fmt.Errorf("latitude and longitude must be set together")
	}
	if input.Latitude != nil {
		if err := models.ValidateCoordinates(*input.Latitude, *input.Longitude); err != nil {
			return nil, SelectionOutput{}, err
		}
		s.selection.SetStartLocation(&models.LatLng{Lat: *input.Latitude, Lng: *input.Longitude})
	}
	if input.Address != nil {
		s.selection.SetAddress(*input.Address)
	}
	if input.DurationMin != nil {
		if *input.DurationMin < 0 {
			return nil, SelectionOutput{}, fmt.Errorf("duration cannot be negative")
		}
		s.selection.SetDuration(input.DurationMin)
	}

	output := s.selectionOutput()
	jsonBytes, _ := json.MarshalIndent(output, "", "  ") //nolint:errchkjson // output is always serializable
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(jsonBytes)}},
	}, output, nil
}

// RecommendInput is empty but required for type.
type RecommendInput struct{}

// RecommendOutput defines output for recommend_route tool.
type RecommendOutput struct {
	Route       []geojson.PointCoordinates `json:"route"`
	Description []models.PathDescription   `json:"description"`
	Fallback    bool                       `json:"fallback"`
}

func (s *Server) registerRecommendRouteTool() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "recommend_route",
		Description: "Request a recommended walking route for the current selection. Falls back to a locally synthesized route when the API is unreachable.",
		InputSchema: map[string]interface{}{
			"type": "object",
		},
	}, s.handleRecommendRoute)
}

func (s *Server) handleRecommendRoute(ctx context.Context, req *mcp.CallToolRequest, input RecommendInput) (*mcp.CallToolResult, RecommendOutput, error) {
	if !s.selection.CanProceed() {
		return nil, RecommendOutput{}, fmt.Errorf("selection incomplete: set a start location and a duration of at least %d minutes", selection.MinDuration)
	}

	start := s.selection.StartLocation()
	duration := s.selection.Duration()

	output := RecommendOutput{}
	rec, err := s.client.RecommendRoute(ctx, start.Lat, start.Lng, *duration)
	if err != nil {
		rec = api.FallbackRecommendation(start, duration)
		output.Fallback = true
	}

	output.Route = geojson.RouteCoordinates(rec.Geojson)
	output.Description = rec.Description

	jsonBytes, _ := json.MarshalIndent(output, "", "  ") //nolint:errchkjson // output is always serializable
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(jsonBytes)}},
	}, output, nil
}

// SaveWalkInput defines input for save_walk tool.
type SaveWalkInput struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// SaveWalkOutput defines output for save_walk tool.
type SaveWalkOutput struct {
	Status string `json:"status"`
}

func (s *Server) registerSaveWalkTool() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "save_walk",
		Description: "Save the current selection as a walk record. The same walk saves at most once per day; repeats report already_saved.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"title": map[string]interface{}{
					"type":        "string",
					"description": "Route title for the record",
				},
				"description": map[string]interface{}{
					"type":        "string",
					"description": "Long-form route description; it is truncated into the stored summary",
				},
			},
		},
	}, s.handleSaveWalk)
}

func (s *Server) handleSaveWalk(_ context.Context, req *mcp.CallToolRequest, input SaveWalkInput) (*mcp.CallToolResult, SaveWalkOutput, error) {
	candidate := history.Candidate{
		StartAddress: s.selection.Address(),
		DurationMin:  s.selection.Duration(),
		Title:        input.Title,
		Summary:      savegate.Summarize(input.Description),
	}

	status, err := s.gate.Save(candidate)
	if err != nil {
		return nil, SaveWalkOutput{}, err
	}

	output := SaveWalkOutput{Status: statusString(status)}
	jsonBytes, _ := json.MarshalIndent(output, "", "  ") //nolint:errchkjson // output is always serializable
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(jsonBytes)}},
	}, output, nil
}

func statusString(st savegate.Status) string {
	switch st {
	case savegate.AlreadySaved:
		return "already_saved"
	case savegate.InFlight:
		return "in_flight"
	default:
		return "saved"
	}
}

// HistoryInput is empty but required for type.
type HistoryInput struct{}

// HistoryOutput defines output for get_history tool.
type HistoryOutput struct {
	Records      []history.Record `json:"records"`
	Count        int              `json:"count"`
	TotalMinutes int              `json:"total_minutes"`
}

func (s *Server) registerGetHistoryTool() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_history",
		Description: "Get all saved walks, newest first, with the total walk time.",
		InputSchema: map[string]interface{}{
			"type": "object",
		},
	}, s.handleGetHistory)
}

func (s *Server) handleGetHistory(_ context.Context, req *mcp.CallToolRequest, input HistoryInput) (*mcp.CallToolResult, HistoryOutput, error) {
	records := s.ledger.All()
	output := HistoryOutput{
		Records:      records,
		Count:        len(records),
		TotalMinutes: history.TotalMinutes(records),
	}

	jsonBytes, _ := json.MarshalIndent(output, "", "  ") //nolint:errchkjson // output is always serializable
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(jsonBytes)}},
	}, output, nil
}

// ClearHistoryInput is empty but required for type.
type ClearHistoryInput struct{}

// ClearHistoryOutput defines output for clear_history tool.
type ClearHistoryOutput struct {
	Cleared bool `json:"cleared"`
}

func (s *Server) registerClearHistoryTool() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "clear_history",
		Description: "Delete every saved walk. This cannot be undone.",
		InputSchema: map[string]interface{}{
			"type": "object",
		},
	}, s.handleClearHistory)
}

func (s *Server) handleClearHistory(_ context.Context, req *mcp.CallToolRequest, input ClearHistoryInput) (*mcp.CallToolResult, ClearHistoryOutput, error) {
	if err := s.ledger.Clear(); err != nil {
		return nil, ClearHistoryOutput{}, fmt.Errorf("failed to clear history: %w", err)
	}

	output := ClearHistoryOutput{Cleared: true}
	jsonBytes, _ := json.MarshalIndent(output, "", "  ") //nolint:errchkjson // output is always serializable
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(jsonBytes)}},
	}, output, nil
}
