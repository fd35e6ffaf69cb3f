// tools_lists.go implements MCP tools for smart list management.
//
// Design: The registry's defined rejections (nil for updating a system or
// unknown list, false for deleting one) are surfaced as MCP error results
// with a plain-language reason, so the LLM can relay the constraint rather
// than retry blindly.

package mcp

import (
	"context"
	"fmt"

	"github.com/jpl-au/sift/internal/filter"
	"github.com/jpl-au/sift/internal/log"
	"github.com/jpl-au/sift/internal/smartlist"
	"github.com/mark3labs/mcp-go/mcp"
)

// listSmartLists handles sift_lists tool calls.
func (h *handlers) listSmartLists(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lists := h.app.Lists.Lists()

	log.Event("mcp:sift_lists", "list").Count(len(lists)).Write(nil)

	return jsonResult(lists)
}

// createSmartList handles sift_list_create tool calls.
func (h *handlers) createSmartList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name is required"), nil //nolint:nilerr
	}

	l := h.app.Lists.Create(smartlist.Input{
		Name:        name,
		Description: getString(req, "description", ""),
		Filters:     criteriaFromRequest(req),
		Color:       getString(req, "color", ""),
		Icon:        getString(req, "icon", ""),
	})

	log.Event("mcp:sift_list_create", "create").List(l.ID).Write(nil)

	return jsonResult(l)
}

// updateSmartList handles sift_list_update tool calls.
func (h *handlers) updateSmartList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id is required"), nil //nolint:nilerr
	}

	u := smartlist.Update{
		Name:        getStringPtr(req, "name"),
		Description: getStringPtr(req, "description"),
		Color:       getStringPtr(req, "color"),
		Icon:        getStringPtr(req, "icon"),
	}

	l := h.app.Lists.Update(id, u)

	log.Event("mcp:sift_list_update", "update").List(id).Write(nil)

	if l == nil {
		return mcp.NewToolResultError("list not found or is a system list (system lists are immutable)"), nil
	}
	return jsonResult(l)
}

// deleteSmartList handles sift_list_delete tool calls.
func (h *handlers) deleteSmartList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id is required"), nil //nolint:nilerr
	}

	ok := h.app.Lists.Delete(id)

	log.Event("mcp:sift_list_delete", "delete").List(id).Write(nil)

	if !ok {
		return mcp.NewToolResultError("list not found or is a system list (system lists cannot be deleted)"), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("deleted %s", id)), nil
}

// duplicateSmartList handles sift_list_duplicate tool calls.
func (h *handlers) duplicateSmartList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id is required"), nil //nolint:nilerr
	}

	l := h.app.Lists.Duplicate(id, getString(req, "name", ""))

	log.Event("mcp:sift_list_duplicate", "duplicate").List(id).Write(nil)

	if l == nil {
		return mcp.NewToolResultError("list not found"), nil
	}
	return jsonResult(l)
}

// applySmartList handles sift_list_apply tool calls.
func (h *handlers) applySmartList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id is required"), nil //nolint:nilerr
	}

	l := h.app.Lists.ByID(id)
	if l == nil {
		return mcp.NewToolResultError("list not found"), nil
	}

	cols := filter.Apply(h.app.Collections(), l.Filters)
	total := len(cols.Actions) + len(cols.Projects) + len(cols.Waiting) + len(cols.Calendar)

	log.Event("mcp:sift_list_apply", "apply").List(id).Count(total).Write(nil)

	return jsonResult(map[string]any{
		"list":     l,
		"actions":  cols.Actions,
		"projects": cols.Projects,
		"waiting":  cols.Waiting,
		"calendar": cols.Calendar,
	})
}
