// ABOUTME: Group endpoints and name-to-group resolution
// ABOUTME: Resolution is soft: a miss returns suggestions, not an error
package folk

import (
	"context"
	"strings"
)

const (
	// resolveFetchLimit is how many groups one resolution pass examines.
	resolveFetchLimit = 100

	// maxGroupSuggestions caps the names offered after a failed resolution.
	maxGroupSuggestions = 10
)

// ListGroups returns one page of groups.
func (c *Client) ListGroups(ctx context.Context, opts ListOptions) (*Page[Group], error) {
	return listPage[Group](ctx, c, "/groups", opts)
}

// GroupResolution is the outcome of resolving a human-entered group name.
// Either Group is set, or Suggestions samples the available names.
type GroupResolution struct {
	Group       *Group
	Suggestions []string
}

// Found reports whether a group matched.
func (r *GroupResolution) Found() bool { return r.Group != nil }

// ResolveGroup finds a group by name: case-insensitive exact match first,
// then the first name containing the query, in listing order. Groups are
// fetched fresh on every call, so renames show up immediately.
func (c *Client) ResolveGroup(ctx context.Context, name string) (*GroupResolution, error) {
	page, err := c.ListGroups(ctx, ListOptions{Limit: resolveFetchLimit})
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(name))
	for i := range page.Items {
		if strings.ToLower(page.Items[i].Name) == needle {
			return &GroupResolution{Group: &page.Items[i]}, nil
		}
	}
	for i := range page.Items {
		if strings.Contains(strings.ToLower(page.Items[i].Name), needle) {
			return &GroupResolution{Group: &page.Items[i]}, nil
		}
	}

	suggestions := make([]string, 0, maxGroupSuggestions)
	for _, g := range page.Items {
		if len(suggestions) == maxGroupSuggestions {
			break
		}
		suggestions = append(suggestions, g.Name)
	}
	return &GroupResolution{Suggestions: suggestions}, nil
}
