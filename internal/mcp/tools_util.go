// tools_util.go provides helper functions for MCP tool parameter extraction.
//
// Separated to centralise the boilerplate of extracting typed parameters from
// MCP's generic argument map. These helpers provide safe defaults when
// optional parameters are missing.
//
// Design: We use permissive extraction (return default on error) rather than
// strict validation because MCP tools should be forgiving - an LLM omitting
// an optional parameter shouldn't cause cryptic errors. This is important
// because LLMs frequently omit optional parameters or provide them in
// unexpected formats; returning sensible defaults keeps the tool usable
// rather than failing with type errors that the LLM may struggle to interpret.

package mcp

import (
	"strings"

	"github.com/jpl-au/sift/internal/entity"
	"github.com/jpl-au/sift/internal/filter"
	"github.com/jpl-au/sift/internal/store"
	"github.com/mark3labs/mcp-go/mcp"
)

// getString extracts a string parameter from the MCP request, returning the
// provided default if the parameter is missing or cannot be parsed as a string.
func getString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// getInt extracts an integer parameter from the MCP request arguments.
//
// JSON numbers are decoded as float64 in Go's encoding/json, so we must type
// assert to float64 first and then convert to int. Returns the default if the
// parameter is missing or not a number.
func getInt(req mcp.CallToolRequest, name string, def int) int {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(float64); ok {
		return int(v)
	}
	return def
}

// getStringPtr extracts an optional string parameter as a pointer, returning
// nil when the parameter is absent. Used for partial updates, where "not
// provided" and "provided but empty" must stay distinguishable.
func getStringPtr(req mcp.CallToolRequest, name string) *string {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return nil
	}
	if v, ok := args[name].(string); ok {
		return &v
	}
	return nil
}

// splitCSV splits a comma-separated parameter value into trimmed parts.
// Returns nil for an empty value, preserving the empty-means-no-filter
// convention of filter criteria.
func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// criteriaFromRequest assembles filter criteria from the flat
// comma-separated tool parameters.
func criteriaFromRequest(req mcp.CallToolRequest) filter.Criteria {
	c := filter.Criteria{
		Contexts:   splitCSV(getString(req, "contexts", "")),
		Tags:       splitCSV(getString(req, "tags", "")),
		SearchText: getString(req, "text", ""),
	}
	for _, p := range splitCSV(getString(req, "priorities", "")) {
		c.Priorities = append(c.Priorities, entity.Priority(p))
	}
	for _, s := range splitCSV(getString(req, "statuses", "")) {
		c.Statuses = append(c.Statuses, entity.ActionStatus(s))
	}
	return c
}

// jsonResult serialises any value as pretty-printed JSON and wraps it in an
// MCP text result for return to the LLM client.
//
// We use store.MarshalJSON (which pretty-prints with indentation) rather than
// compact JSON because LLMs parse structured output more reliably when it's
// formatted for readability.
//
// Errors during marshalling are converted to MCP error results rather than
// propagating as Go errors, keeping the tool response pattern consistent:
// all failures are communicated via MCP's error result mechanism.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := store.MarshalJSON(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
