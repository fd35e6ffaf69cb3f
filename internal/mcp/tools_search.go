// tools_search.go implements MCP tools for search, suggestions, and facets.
//
// Separated from tools_lists.go because search operations read the indexes
// and record history, while list management mutates persisted state.
//
// Design: Results are returned as JSON arrays for easy LLM parsing. Search
// results carry the entity, its type, the match score, and the matched
// field names so the LLM can explain why something matched.

package mcp

import (
	"context"

	"github.com/jpl-au/sift/internal/entity"
	"github.com/jpl-au/sift/internal/facet"
	"github.com/jpl-au/sift/internal/log"
	"github.com/jpl-au/sift/internal/search"
	"github.com/mark3labs/mcp-go/mcp"
)

// search handles sift_search tool calls.
func (h *handlers) search(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query is required"), nil //nolint:nilerr
	}

	opts := search.Options{
		Limit: getInt(req, "limit", 0),
	}
	for _, t := range splitCSV(getString(req, "types", "")) {
		opts.Types = append(opts.Types, entity.Type(t))
	}
	if c := criteriaFromRequest(req); !c.IsEmpty() {
		opts.Filters = &c
	}

	results := h.app.Engine.Search(query, opts)

	log.Event("mcp:sift_search", "search").Query(query).Count(len(results)).Write(nil)

	return jsonResult(results)
}

// suggest handles sift_suggest tool calls.
func (h *handlers) suggest(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query is required"), nil //nolint:nilerr
	}

	suggestions := h.app.History.Suggestions(query, h.app.SuggestionData())

	log.Event("mcp:sift_suggest", "suggest").Query(query).Count(len(suggestions)).Write(nil)

	return jsonResult(suggestions)
}

// facets handles sift_facets tool calls.
func (h *handlers) facets(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	groups := facet.Generate(h.app.Data.Actions, h.app.Data.Contexts)

	log.Event("mcp:sift_facets", "list").Count(len(groups)).Write(nil)

	return jsonResult(groups)
}
