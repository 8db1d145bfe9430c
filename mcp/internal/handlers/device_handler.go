package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/audiolux/audiolux/client"
)

// DeviceHandler exposes the device settings and pattern tools.
type DeviceHandler struct {
	client *client.Client
}

func NewDeviceHandler(c *client.Client) *DeviceHandler { return &DeviceHandler{client: c} }

func (dh *DeviceHandler) RegisterTools(s *server.MCPServer) error {
	getSettings := mcp.NewTool("get_settings",
		mcp.WithDescription("Return the device settings (noise, compression, hue range, LED count) as JSON"),
	)
	listPatterns := mcp.NewTool("list_patterns",
		mcp.WithDescription("Return the names of the patterns the device can run"),
	)
	getPattern := mcp.NewTool("get_pattern",
		mcp.WithDescription("Return the pattern the device is currently running"),
	)
	// set_pattern – value must be one of list_patterns
	setPattern := mcp.NewTool("set_pattern",
		mcp.WithDescription("Select the pattern the device runs; returns the HTTP status and backend message"),
		mcp.WithString("pattern", mcp.Required(), mcp.Description("Pattern name from list_patterns, or a JSON value")),
	)

	s.AddTool(getSettings, dh.handleGetSettings)
	s.AddTool(listPatterns, dh.handleListPatterns)
	s.AddTool(getPattern, dh.handleGetPattern)
	s.AddTool(setPattern, dh.handleSetPattern)
	return nil
}

func (dh *DeviceHandler) handleGetSettings(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return readTool(ctx, "get_settings", dh.client.GetSettings)
}

func (dh *DeviceHandler) handleListPatterns(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return readTool(ctx, "list_patterns", dh.client.GetPatternList)
}

func (dh *DeviceHandler) handleGetPattern(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return readTool(ctx, "get_pattern", dh.client.GetPattern)
}

func (dh *DeviceHandler) handleSetPattern(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("pattern")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	log.Debug().Str("pattern", raw).Msg("set_pattern invoked")

	start := time.Now()
	resp, err := dh.client.SetPattern(ctx, parseValue(raw))
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("set_pattern failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to set pattern: %v", err)), nil
	}

	out := map[string]any{"status": resp.Status, "data": json.RawMessage(orNull(resp.Data))}
	b, _ := json.Marshal(out)
	return mcp.NewToolResultText(string(b)), nil
}

// readTool runs a client read and returns its JSON body as tool text.
func readTool(ctx context.Context, name string, call func(context.Context) (json.RawMessage, error)) (*mcp.CallToolResult, error) {
	log.Debug().Msgf("%s invoked", name)

	start := time.Now()
	body, err := call(ctx)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", elapsed).Msgf("%s failed", name)
		return mcp.NewToolResultError(fmt.Sprintf("%s failed: %v", name, err)), nil
	}
	log.Debug().Dur("elapsed", elapsed).Msgf("%s completed", name)
	return mcp.NewToolResultText(string(orNull(body))), nil
}

// parseValue returns v as JSON when it parses, otherwise the raw string.
func parseValue(v string) any {
	if json.Valid([]byte(v)) {
		return json.RawMessage(v)
	}
	return v
}

func orNull(b []byte) []byte {
	if len(b) == 0 {
		return []byte("null")
	}
	return b
}
