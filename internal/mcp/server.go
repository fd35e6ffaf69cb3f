// Package mcp implements the Model Context Protocol server, exposing sift
// operations to LLMs. This enables AI assistants to search the workspace,
// manage smart lists, and read search history through a standardised
// protocol.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/sift/internal/app"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio, enabling LLM integration.
// Uses stdio transport for compatibility with Claude Desktop and other MCP clients.
func Serve(dataPath, dbPath string) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	a, err := app.New(dataPath, dbPath)
	if err != nil {
		slog.Error("failed to open workspace", "error", err)
		return err
	}
	defer a.Close()

	h := &handlers{app: a}

	s := server.NewMCPServer(
		"sift",
		Version,
		server.WithToolCapabilities(true),
	)

	registerTools(s, h)

	slog.Info("sift MCP server ready", "version", Version, "transport", "stdio")

	err = server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// handlers provides MCP request handlers with access to the wired engine.
type handlers struct {
	app *app.App
}

// registerTools exposes sift operations as MCP tools for LLM invocation.
func registerTools(s *server.MCPServer, h *handlers) {
	// Search
	s.AddTool(
		mcp.NewTool("sift_search",
			mcp.WithDescription("Fuzzy full-text search across actions, projects, waiting items, calendar items, and optionally inbox"),
			mcp.WithString("query", mcp.Required(), mcp.Description("Search query")),
			mcp.WithString("types", mcp.Description("Comma-separated entity types to search (action, project, waiting, calendar, inbox); defaults to all except inbox")),
			mcp.WithNumber("limit", mcp.Description("Maximum results to return (default 50)")),
			mcp.WithString("contexts", mcp.Description("Comma-separated context ids to filter by")),
			mcp.WithString("priorities", mcp.Description("Comma-separated priorities to filter by (low, medium, high)")),
			mcp.WithString("statuses", mcp.Description("Comma-separated statuses to filter by (next, waiting, scheduled, completed, cancelled)")),
			mcp.WithString("tags", mcp.Description("Comma-separated tags to filter by")),
		),
		h.search,
	)

	// Suggestions
	s.AddTool(
		mcp.NewTool("sift_suggest",
			mcp.WithDescription("Get completion suggestions for a partial query, blending history with known contexts, projects, and tags"),
			mcp.WithString("query", mcp.Required(), mcp.Description("Partial query")),
		),
		h.suggest,
	)

	// Facets
	s.AddTool(
		mcp.NewTool("sift_facets",
			mcp.WithDescription("Get filter option groups with usage counts (contexts, priorities, statuses, top tags, date buckets)"),
		),
		h.facets,
	)

	// List smart lists
	s.AddTool(
		mcp.NewTool("sift_lists",
			mcp.WithDescription("List all smart lists (system lists first, then user lists)"),
		),
		h.listSmartLists,
	)

	// Create smart list
	s.AddTool(
		mcp.NewTool("sift_list_create",
			mcp.WithDescription("Create a user smart list from filter criteria"),
			mcp.WithString("name", mcp.Required(), mcp.Description("List name")),
			mcp.WithString("description", mcp.Description("List description")),
			mcp.WithString("contexts", mcp.Description("Comma-separated context ids")),
			mcp.WithString("priorities", mcp.Description("Comma-separated priorities")),
			mcp.WithString("statuses", mcp.Description("Comma-separated statuses")),
			mcp.WithString("tags", mcp.Description("Comma-separated tags")),
			mcp.WithString("text", mcp.Description("Free-text dimension matched against entity text")),
			mcp.WithString("color", mcp.Description("Display colour (hex)")),
			mcp.WithString("icon", mcp.Description("Display icon name")),
		),
		h.createSmartList,
	)

	// Update smart list
	s.AddTool(
		mcp.NewTool("sift_list_update",
			mcp.WithDescription("Update a user smart list (system lists are immutable)"),
			mcp.WithString("id", mcp.Required(), mcp.Description("List id")),
			mcp.WithString("name", mcp.Description("New name")),
			mcp.WithString("description", mcp.Description("New description")),
			mcp.WithString("color", mcp.Description("New colour")),
			mcp.WithString("icon", mcp.Description("New icon")),
		),
		h.updateSmartList,
	)

	// Delete smart list
	s.AddTool(
		mcp.NewTool("sift_list_delete",
			mcp.WithDescription("Delete a user smart list (system lists cannot be deleted)"),
			mcp.WithString("id", mcp.Required(), mcp.Description("List id")),
		),
		h.deleteSmartList,
	)

	// Duplicate smart list
	s.AddTool(
		mcp.NewTool("sift_list_duplicate",
			mcp.WithDescription("Duplicate a smart list (including system lists) as a new user list"),
			mcp.WithString("id", mcp.Required(), mcp.Description("Source list id")),
			mcp.WithString("name", mcp.Description("Name for the copy (default: '<source> (copy)')")),
		),
		h.duplicateSmartList,
	)

	// Apply smart list
	s.AddTool(
		mcp.NewTool("sift_list_apply",
			mcp.WithDescription("Apply a smart list's filters to the workspace and return matching entities"),
			mcp.WithString("id", mcp.Required(), mcp.Description("List id")),
		),
		h.applySmartList,
	)

	// History
	s.AddTool(
		mcp.NewTool("sift_history",
			mcp.WithDescription("Get recent search history, newest first"),
			mcp.WithNumber("limit", mcp.Description("Maximum entries to return (default: all, capped at 50)")),
		),
		h.getHistory,
	)

	// Popular searches
	s.AddTool(
		mcp.NewTool("sift_popular",
			mcp.WithDescription("Get the most frequently executed queries this session"),
			mcp.WithNumber("limit", mcp.Description("Maximum entries to return (default 10)")),
		),
		h.getPopular,
	)
}
