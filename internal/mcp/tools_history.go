// tools_history.go implements MCP tools for search history access.

package mcp

import (
	"context"
	"time"

	"github.com/jpl-au/sift/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// getHistory handles sift_history tool calls.
func (h *handlers) getHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	items := h.app.History.Items()
	if limit := getInt(req, "limit", 0); limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	log.Event("mcp:sift_history", "list").Count(len(items)).Write(nil)

	type itemJSON struct {
		Query       string `json:"query"`
		Timestamp   string `json:"timestamp"`
		ResultCount int    `json:"resultCount"`
	}
	out := make([]itemJSON, len(items))
	for i, it := range items {
		out[i] = itemJSON{
			Query:       it.Query,
			Timestamp:   it.Timestamp.UTC().Format(time.RFC3339),
			ResultCount: it.ResultCount,
		}
	}
	return jsonResult(out)
}

// getPopular handles sift_popular tool calls.
func (h *handlers) getPopular(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	popular := h.app.History.Popular(getInt(req, "limit", 10))

	log.Event("mcp:sift_popular", "list").Count(len(popular)).Write(nil)

	return jsonResult(popular)
}
