// ABOUTME: People MCP tool handlers
// ABOUTME: Implements find_person, get_person_details, browse_people, and the person mutations
package handlers

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/harperreed/folk-mcp/folk"
)

type PeopleHandlers struct {
	client *folk.Client
	logger zerolog.Logger
}

func NewPeopleHandlers(client *folk.Client, logger zerolog.Logger) *PeopleHandlers {
	return &PeopleHandlers{client: client, logger: logger}
}

type FindPersonInput struct {
	Name string `json:"name" jsonschema:"Name to search for (first name, last name, or full name)"`
}

type PersonMatch struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

type FindPersonOutput struct {
	Found   bool          `json:"found"`
	Matches []PersonMatch `json:"matches"`
	Total   int           `json:"total"`
}

// FindPerson searches people by name and returns minimal rows: enough to
// pick an ID for the detail and mutation tools.
func (h *PeopleHandlers) FindPerson(ctx context.Context, request *mcp.CallToolRequest, input FindPersonInput) (*mcp.CallToolResult, FindPersonOutput, error) {
	page, err := h.client.ListPeople(ctx, folk.ListOptions{
		Limit:   defaultSearchLimit,
		Filters: folk.Filters{"fullName": folk.Op("like", input.Name)},
	})
	if err != nil {
		reportAPIError(h.logger, "find_person", err)
		return nil, FindPersonOutput{}, err
	}

	matches := make([]PersonMatch, 0, len(page.Items))
	for i := range page.Items {
		p := &page.Items[i]
		matches = append(matches, PersonMatch{
			ID:    p.ID,
			Name:  p.DisplayName(),
			Email: p.PrimaryEmail(),
		})
	}

	return nil, FindPersonOutput{
		Found:   len(matches) > 0,
		Matches: matches,
		Total:   len(matches),
	}, nil
}

type GetPersonDetailsInput struct {
	PersonID string `json:"person_id" jsonschema:"Exact Folk ID from find_person results (prefix + UUID format)"`
}

type PersonDetailsOutput struct {
	ID                string         `json:"id"`
	FirstName         string         `json:"first_name,omitempty"`
	LastName          string         `json:"last_name,omitempty"`
	FullName          string         `json:"full_name,omitempty"`
	Emails            []string       `json:"emails"`
	Phones            []string       `json:"phones"`
	JobTitle          string         `json:"job_title,omitempty"`
	Description       string         `json:"description,omitempty"`
	Groups            []GroupSummary `json:"groups"`
	Companies         []string       `json:"companies"`
	CreatedAt         string         `json:"created_at,omitempty"`
	LastInteractionAt string         `json:"last_interaction_at,omitempty"`
}

// GetPersonDetails returns the full projection for one person.
func (h *PeopleHandlers) GetPersonDetails(ctx context.Context, request *mcp.CallToolRequest, input GetPersonDetailsInput) (*mcp.CallToolResult, PersonDetailsOutput, error) {
	if err := folk.ValidateID(input.PersonID, "person_id"); err != nil {
		return nil, PersonDetailsOutput{}, err
	}

	person, err := h.client.GetPerson(ctx, input.PersonID)
	if err != nil {
		reportAPIError(h.logger, "get_person_details", err)
		return nil, PersonDetailsOutput{}, err
	}

	out := PersonDetailsOutput{
		ID:          person.ID,
		FirstName:   person.FirstName,
		LastName:    person.LastName,
		FullName:    person.FullName,
		Emails:      person.Emails,
		Phones:      person.Phones,
		JobTitle:    person.JobTitle,
		Description: person.Description,
		Groups:      make([]GroupSummary, 0, len(person.Groups)),
		Companies:   make([]string, 0, len(person.Companies)),
		CreatedAt:   person.CreatedAt,
	}
	for _, g := range person.Groups {
		out.Groups = append(out.Groups, GroupSummary{ID: g.ID, Name: g.Name})
	}
	for _, c := range person.Companies {
		out.Companies = append(out.Companies, c.Name)
	}
	if meta := person.InteractionMetadata; meta != nil && meta.Workspace != nil {
		out.LastInteractionAt = meta.Workspace.LastInteractedAt
	}

	return nil, out, nil
}

type BrowsePeopleInput struct {
	Page    int `json:"page,omitempty" jsonschema:"Page number (starts at 1)"`
	PerPage int `json:"per_page,omitempty" jsonschema:"Results per page (default 20, max 50)"`
}

type PersonRow struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	JobTitle string `json:"job_title,omitempty"`
}

type BrowsePeopleOutput struct {
	People  []PersonRow `json:"people"`
	Page    int         `json:"page"`
	PerPage int         `json:"per_page"`
	HasMore bool        `json:"has_more"`
}

// BrowsePeople pages through the workspace when the agent has no name to
// search for.
func (h *PeopleHandlers) BrowsePeople(ctx context.Context, request *mcp.CallToolRequest, input BrowsePeopleInput) (*mcp.CallToolResult, BrowsePeopleOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	perPage := clampLimit(input.PerPage, defaultPageSize, maxPageSize)

	result, err := h.client.ListPeople(ctx, folk.ListOptions{Limit: perPage})
	if err != nil {
		reportAPIError(h.logger, "browse_people", err)
		return nil, BrowsePeopleOutput{}, err
	}

	rows := make([]PersonRow, 0, len(result.Items))
	for i := range result.Items {
		p := &result.Items[i]
		rows = append(rows, PersonRow{
			ID:       p.ID,
			Name:     p.DisplayName(),
			Email:    p.PrimaryEmail(),
			JobTitle: p.JobTitle,
		})
	}

	return nil, BrowsePeopleOutput{
		People:  rows,
		Page:    page,
		PerPage: perPage,
		HasMore: result.HasMore(),
	}, nil
}

type AddPersonInput struct {
	FirstName string   `json:"first_name" jsonschema:"Person's first name (required)"`
	LastName  string   `json:"last_name,omitempty" jsonschema:"Person's last name"`
	Email     string   `json:"email,omitempty" jsonschema:"Email address"`
	Phone     string   `json:"phone,omitempty" jsonschema:"Phone number"`
	JobTitle  string   `json:"job_title,omitempty" jsonschema:"Job title or role"`
	Notes     string   `json:"notes,omitempty" jsonschema:"Initial notes about this person"`
	GroupIDs  []string `json:"group_ids,omitempty" jsonschema:"Folk group IDs to add the person to"`
}

type MutationOutput struct {
	ID      string `json:"id"`
	Name    string `json:"name,omitempty"`
	Created bool   `json:"created,omitempty"`
	Updated bool   `json:"updated,omitempty"`
	Deleted bool   `json:"deleted,omitempty"`
}

// AddPerson creates a person.
func (h *PeopleHandlers) AddPerson(ctx context.Context, request *mcp.CallToolRequest, input AddPersonInput) (*mcp.CallToolResult, MutationOutput, error) {
	if input.FirstName == "" {
		return nil, MutationOutput{}, &folk.ValidationError{Message: "first_name is required"}
	}
	for _, gid := range input.GroupIDs {
		if err := folk.ValidateID(gid, "group_id"); err != nil {
			return nil, MutationOutput{}, err
		}
	}

	req := folk.CreatePersonRequest{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		JobTitle:    input.JobTitle,
		Description: input.Notes,
		GroupIDs:    input.GroupIDs,
	}
	if input.Email != "" {
		req.Emails = []string{input.Email}
	}
	if input.Phone != "" {
		req.Phones = []string{input.Phone}
	}

	person, err := h.client.CreatePerson(ctx, req)
	if err != nil {
		reportAPIError(h.logger, "add_person", err)
		return nil, MutationOutput{}, err
	}

	return nil, MutationOutput{ID: person.ID, Name: person.DisplayName(), Created: true}, nil
}

type UpdatePersonInput struct {
	PersonID  string `json:"person_id" jsonschema:"Exact Folk ID from find_person results (prefix + UUID format)"`
	FirstName string `json:"first_name,omitempty" jsonschema:"New first name (omit to keep existing)"`
	LastName  string `json:"last_name,omitempty" jsonschema:"New last name"`
	Email     string `json:"email,omitempty" jsonschema:"New email (replaces existing)"`
	Phone     string `json:"phone,omitempty" jsonschema:"New phone (replaces existing)"`
	JobTitle  string `json:"job_title,omitempty" jsonschema:"New job title"`
}

// UpdatePerson patches the supplied fields and leaves the rest alone.
func (h *PeopleHandlers) UpdatePerson(ctx context.Context, request *mcp.CallToolRequest, input UpdatePersonInput) (*mcp.CallToolResult, MutationOutput, error) {
	if err := folk.ValidateID(input.PersonID, "person_id"); err != nil {
		return nil, MutationOutput{}, err
	}
	if input.FirstName == "" && input.LastName == "" && input.Email == "" && input.Phone == "" && input.JobTitle == "" {
		return nil, MutationOutput{}, &folk.ValidationError{Message: "nothing to update: provide at least one field to change"}
	}

	req := folk.UpdatePersonRequest{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		JobTitle:  input.JobTitle,
	}
	if input.Email != "" {
		req.Emails = []string{input.Email}
	}
	if input.Phone != "" {
		req.Phones = []string{input.Phone}
	}

	person, err := h.client.UpdatePerson(ctx, input.PersonID, req)
	if err != nil {
		reportAPIError(h.logger, "update_person", err)
		return nil, MutationOutput{}, err
	}

	return nil, MutationOutput{ID: person.ID, Name: person.DisplayName(), Updated: true}, nil
}

type DeletePersonInput struct {
	PersonID string `json:"person_id" jsonschema:"Exact Folk ID from find_person results (prefix + UUID format)"`
}

// DeletePerson removes a person. This cannot be undone.
func (h *PeopleHandlers) DeletePerson(ctx context.Context, request *mcp.CallToolRequest, input DeletePersonInput) (*mcp.CallToolResult, MutationOutput, error) {
	if err := folk.ValidateID(input.PersonID, "person_id"); err != nil {
		return nil, MutationOutput{}, err
	}

	if err := h.client.DeletePerson(ctx, input.PersonID); err != nil {
		reportAPIError(h.logger, "delete_person", err)
		return nil, MutationOutput{}, err
	}

	return nil, MutationOutput{ID: input.PersonID, Deleted: true}, nil
}
