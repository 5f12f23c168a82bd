// ABOUTME: Group MCP tool handlers
// ABOUTME: list_groups plus name-resolved membership queries with custom-field filtering
package handlers

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/harperreed/folk-mcp/folk"
)

type GroupHandlers struct {
	client *folk.Client
	logger zerolog.Logger
}

func NewGroupHandlers(client *folk.Client, logger zerolog.Logger) *GroupHandlers {
	return &GroupHandlers{client: client, logger: logger}
}

type ListGroupsInput struct{}

type ListGroupsOutput struct {
	Groups []GroupSummary `json:"groups"`
	Total  int            `json:"total"`
}

// ListGroups lists every group in the workspace so the agent can discover
// names before querying memberships.
func (h *GroupHandlers) ListGroups(ctx context.Context, request *mcp.CallToolRequest, input ListGroupsInput) (*mcp.CallToolResult, ListGroupsOutput, error) {
	page, err := h.client.ListGroups(ctx, folk.ListOptions{Limit: 100})
	if err != nil {
		reportAPIError(h.logger, "list_groups", err)
		return nil, ListGroupsOutput{}, err
	}

	groups := make([]GroupSummary, 0, len(page.Items))
	for _, g := range page.Items {
		groups = append(groups, GroupSummary{ID: g.ID, Name: g.Name})
	}

	return nil, ListGroupsOutput{Groups: groups, Total: len(groups)}, nil
}

type FindPeopleInGroupInput struct {
	GroupName   string `json:"group_name" jsonschema:"Name of the group, e.g. 'Clients' or 'Leads'"`
	Status      string `json:"status,omitempty" jsonschema:"Filter by the group's Status custom field value"`
	CustomField string `json:"custom_field,omitempty" jsonschema:"Name of a different custom field to filter by"`
	CustomValue string `json:"custom_value,omitempty" jsonschema:"Value to match for custom_field"`
	Limit       int    `json:"limit,omitempty" jsonschema:"Maximum results to return (default 20, max 50)"`
}

type GroupPersonRow struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Email        string         `json:"email,omitempty"`
	JobTitle     string         `json:"job_title,omitempty"`
	Status       any            `json:"status,omitempty"`
	CustomFields map[string]any `json:"custom_fields"`
}

type FindPeopleInGroupOutput struct {
	Found           bool             `json:"found"`
	People          []GroupPersonRow `json:"people"`
	Total           int              `json:"total"`
	GroupName       string           `json:"group_name,omitempty"`
	Error           string           `json:"error,omitempty"`
	AvailableGroups []string         `json:"available_groups,omitempty"`
	Hint            string           `json:"hint,omitempty"`
}

// FindPeopleInGroup resolves the group by name and lists its people,
// optionally narrowed by the group's custom fields. Custom fields like
// Status are group-specific in Folk.
func (h *GroupHandlers) FindPeopleInGroup(ctx context.Context, request *mcp.CallToolRequest, input FindPeopleInGroupInput) (*mcp.CallToolResult, FindPeopleInGroupOutput, error) {
	limit := clampLimit(input.Limit, defaultPageSize, maxPageSize)

	res, err := h.client.ResolveGroup(ctx, input.GroupName)
	if err != nil {
		reportAPIError(h.logger, "find_people_in_group", err)
		return nil, FindPeopleInGroupOutput{}, err
	}
	if !res.Found() {
		return nil, FindPeopleInGroupOutput{
			People:          []GroupPersonRow{},
			Error:           groupMissError(input.GroupName),
			AvailableGroups: res.Suggestions,
			Hint:            groupMissHint,
		}, nil
	}

	groupID := res.Group.ID
	filters := folk.GroupFilter(groupID)
	if input.Status != "" {
		filters[folk.CustomFieldKey(groupID, "Status")] = folk.Op("in", input.Status)
	}
	if input.CustomField != "" && input.CustomValue != "" {
		filters[folk.CustomFieldKey(groupID, input.CustomField)] = folk.Op("in", input.CustomValue)
	}

	page, err := h.client.ListPeople(ctx, folk.ListOptions{Limit: limit, Filters: filters})
	if err != nil {
		reportAPIError(h.logger, "find_people_in_group", err)
		return nil, FindPeopleInGroupOutput{}, err
	}

	rows := make([]GroupPersonRow, 0, len(page.Items))
	for i := range page.Items {
		p := &page.Items[i]
		fields := groupFields(p.CustomFieldValues, groupID)
		rows = append(rows, GroupPersonRow{
			ID:           p.ID,
			Name:         p.DisplayName(),
			Email:        p.PrimaryEmail(),
			JobTitle:     p.JobTitle,
			Status:       fields["Status"],
			CustomFields: fields,
		})
	}

	return nil, FindPeopleInGroupOutput{
		Found:     len(rows) > 0,
		People:    rows,
		Total:     len(rows),
		GroupName: res.Group.Name,
	}, nil
}

type FindCompaniesInGroupInput struct {
	GroupName   string `json:"group_name" jsonschema:"Name of the group, e.g. 'Target Accounts' or 'Partners'"`
	Status      string `json:"status,omitempty" jsonschema:"Filter by the group's Status custom field value"`
	CustomField string `json:"custom_field,omitempty" jsonschema:"Name of a different custom field to filter by"`
	CustomValue string `json:"custom_value,omitempty" jsonschema:"Value to match for custom_field"`
	Limit       int    `json:"limit,omitempty" jsonschema:"Maximum results to return (default 20, max 50)"`
}

type GroupCompanyRow struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Industry     string         `json:"industry,omitempty"`
	Status       any            `json:"status,omitempty"`
	CustomFields map[string]any `json:"custom_fields"`
}

type FindCompaniesInGroupOutput struct {
	Found           bool              `json:"found"`
	Companies       []GroupCompanyRow `json:"companies"`
	Total           int               `json:"total"`
	GroupName       string            `json:"group_name,omitempty"`
	Error           string            `json:"error,omitempty"`
	AvailableGroups []string          `json:"available_groups,omitempty"`
	Hint            string            `json:"hint,omitempty"`
}

// FindCompaniesInGroup resolves the group by name and lists its companies,
// optionally narrowed by the group's custom fields.
func (h *GroupHandlers) FindCompaniesInGroup(ctx context.Context, request *mcp.CallToolRequest, input FindCompaniesInGroupInput) (*mcp.CallToolResult, FindCompaniesInGroupOutput, error) {
	limit := clampLimit(input.Limit, defaultPageSize, maxPageSize)

	res, err := h.client.ResolveGroup(ctx, input.GroupName)
	if err != nil {
		reportAPIError(h.logger, "find_companies_in_group", err)
		return nil, FindCompaniesInGroupOutput{}, err
	}
	if !res.Found() {
		return nil, FindCompaniesInGroupOutput{
			Companies:       []GroupCompanyRow{},
			Error:           groupMissError(input.GroupName),
			AvailableGroups: res.Suggestions,
			Hint:            groupMissHint,
		}, nil
	}

	groupID := res.Group.ID
	filters := folk.GroupFilter(groupID)
	if input.Status != "" {
		filters[folk.CustomFieldKey(groupID, "Status")] = folk.Op("in", input.Status)
	}
	if input.CustomField != "" && input.CustomValue != "" {
		filters[folk.CustomFieldKey(groupID, input.CustomField)] = folk.Op("in", input.CustomValue)
	}

	page, err := h.client.ListCompanies(ctx, folk.ListOptions{Limit: limit, Filters: filters})
	if err != nil {
		reportAPIError(h.logger, "find_companies_in_group", err)
		return nil, FindCompaniesInGroupOutput{}, err
	}

	rows := make([]GroupCompanyRow, 0, len(page.Items))
	for i := range page.Items {
		c := &page.Items[i]
		fields := groupFields(c.CustomFieldValues, groupID)
		rows = append(rows, GroupCompanyRow{
			ID:           c.ID,
			Name:         c.DisplayName(),
			Industry:     c.Industry,
			Status:       fields["Status"],
			CustomFields: fields,
		})
	}

	return nil, FindCompaniesInGroupOutput{
		Found:     len(rows) > 0,
		Companies: rows,
		Total:     len(rows),
		GroupName: res.Group.Name,
	}, nil
}
