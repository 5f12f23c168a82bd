// ABOUTME: Deal (custom object) MCP tool handler
// ABOUTME: Deals live inside groups, so the group name is resolved first
package handlers

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/harperreed/folk-mcp/folk"
)

type DealHandlers struct {
	client *folk.Client
	logger zerolog.Logger
}

func NewDealHandlers(client *folk.Client, logger zerolog.Logger) *DealHandlers {
	return &DealHandlers{client: client, logger: logger}
}

type FindDealsInput struct {
	GroupName  string `json:"group_name" jsonschema:"Name of the group holding the deal pipeline"`
	ObjectType string `json:"object_type,omitempty" jsonschema:"Custom object collection name (default 'deals')"`
	Limit      int    `json:"limit,omitempty" jsonschema:"Maximum deals to return (default 20, max 50)"`
}

type DealRow struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Companies    []string       `json:"companies"`
	People       []string       `json:"people"`
	CustomFields map[string]any `json:"custom_fields"`
	CreatedAt    string         `json:"created_at,omitempty"`
}

type FindDealsOutput struct {
	Found           bool      `json:"found"`
	Deals           []DealRow `json:"deals"`
	Total           int       `json:"total"`
	GroupName       string    `json:"group_name,omitempty"`
	Deprecations    []string  `json:"deprecations,omitempty"`
	Error           string    `json:"error,omitempty"`
	AvailableGroups []string  `json:"available_groups,omitempty"`
	Hint            string    `json:"hint,omitempty"`
}

// FindDeals lists a group's deals (or another custom object collection).
func (h *DealHandlers) FindDeals(ctx context.Context, request *mcp.CallToolRequest, input FindDealsInput) (*mcp.CallToolResult, FindDealsOutput, error) {
	limit := clampLimit(input.Limit, defaultPageSize, maxPageSize)

	res, err := h.client.ResolveGroup(ctx, input.GroupName)
	if err != nil {
		reportAPIError(h.logger, "find_deals", err)
		return nil, FindDealsOutput{}, err
	}
	if !res.Found() {
		return nil, FindDealsOutput{
			Deals:           []DealRow{},
			Error:           groupMissError(input.GroupName),
			AvailableGroups: res.Suggestions,
			Hint:            groupMissHint,
		}, nil
	}

	groupID := res.Group.ID
	page, err := h.client.ListDeals(ctx, groupID, input.ObjectType, folk.ListOptions{Limit: limit})
	if err != nil {
		reportAPIError(h.logger, "find_deals", err)
		return nil, FindDealsOutput{}, err
	}

	rows := make([]DealRow, 0, len(page.Items))
	for i := range page.Items {
		d := &page.Items[i]
		row := DealRow{
			ID:           d.ID,
			Name:         d.Name,
			Companies:    make([]string, 0, len(d.Companies)),
			People:       make([]string, 0, len(d.People)),
			CustomFields: groupFields(d.CustomFieldValues, groupID),
			CreatedAt:    d.CreatedAt,
		}
		for _, c := range d.Companies {
			row.Companies = append(row.Companies, c.Name)
		}
		for _, p := range d.People {
			row.People = append(row.People, p.FullName)
		}
		rows = append(rows, row)
	}

	return nil, FindDealsOutput{
		Found:        len(rows) > 0,
		Deals:        rows,
		Total:        len(rows),
		GroupName:    res.Group.Name,
		Deprecations: page.Deprecations,
	}, nil
}
