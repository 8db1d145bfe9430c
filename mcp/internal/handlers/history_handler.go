package handlers

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/audiolux/audiolux/client"
)

// HistoryHandler exposes the backend request log.
type HistoryHandler struct {
	client *client.Client
}

func NewHistoryHandler(c *client.Client) *HistoryHandler { return &HistoryHandler{client: c} }

func (hh *HistoryHandler) RegisterTools(s *server.MCPServer) error {
	// get_history drains the log; a second call returns only newer lines
	get := mcp.NewTool("get_history",
		mcp.WithDescription("Return and clear the list of requests the backend has served"),
	)
	s.AddTool(get, hh.handleGetHistory)
	return nil
}

func (hh *HistoryHandler) handleGetHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return readTool(ctx, "get_history", hh.client.GetHistory)
}
