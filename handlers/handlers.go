// ABOUTME: Shared helpers for the Folk MCP tool handlers
// ABOUTME: Limit clamping, custom-field extraction, and safe error reporting
package handlers

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/harperreed/folk-mcp/folk"
)

const (
	defaultSearchLimit = 10
	defaultPageSize    = 20
	maxPageSize        = 50
)

// clampLimit bounds an agent-supplied page size to [1, max], substituting
// def for the zero value.
func clampLimit(limit, def, max int) int {
	if limit == 0 {
		limit = def
	}
	if limit < 1 {
		return 1
	}
	if limit > max {
		return max
	}
	return limit
}

// reportAPIError logs a failed upstream call with its status code only;
// response payloads stay out of the logs.
func reportAPIError(logger zerolog.Logger, tool string, err error) {
	var apiErr *folk.APIError
	if errors.As(err, &apiErr) {
		logger.Error().Str("tool", tool).Int("status", apiErr.Status).Msg("folk api request failed")
	}
}

// groupFields pulls an entity's custom field values for one group. Folk
// keys custom fields by group ID.
func groupFields(values map[string]any, groupID string) map[string]any {
	fields, _ := values[groupID].(map[string]any)
	if fields == nil {
		return map[string]any{}
	}
	return fields
}

// GroupSummary is the compact group projection shared by several tools.
type GroupSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// groupMissHint steers the agent after a failed group-name resolution.
// Misses are soft: the output carries the error text, the available names,
// and this hint so the agent can retry with a corrected name.
const groupMissHint = "Check the group name or use list_groups to see all available groups"

func groupMissError(groupName string) string {
	return "Group '" + groupName + "' not found"
}
