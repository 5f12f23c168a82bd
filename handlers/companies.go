// ABOUTME: Company MCP tool handlers
// ABOUTME: Implements find_company, get_company_details, browse_companies, and the company mutations
package handlers

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/harperreed/folk-mcp/folk"
)

type CompanyHandlers struct {
	client *folk.Client
	logger zerolog.Logger
}

func NewCompanyHandlers(client *folk.Client, logger zerolog.Logger) *CompanyHandlers {
	return &CompanyHandlers{client: client, logger: logger}
}

type FindCompanyInput struct {
	Name string `json:"name" jsonschema:"Company name to search for (partial matches work)"`
}

type CompanyMatch struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Industry string `json:"industry,omitempty"`
}

type FindCompanyOutput struct {
	Found   bool           `json:"found"`
	Matches []CompanyMatch `json:"matches"`
	Total   int            `json:"total"`
}

// FindCompany searches companies by name.
func (h *CompanyHandlers) FindCompany(ctx context.Context, request *mcp.CallToolRequest, input FindCompanyInput) (*mcp.CallToolResult, FindCompanyOutput, error) {
	page, err := h.client.ListCompanies(ctx, folk.ListOptions{
		Limit:   defaultSearchLimit,
		Filters: folk.Filters{"name": folk.Op("like", input.Name)},
	})
	if err != nil {
		reportAPIError(h.logger, "find_company", err)
		return nil, FindCompanyOutput{}, err
	}

	matches := make([]CompanyMatch, 0, len(page.Items))
	for i := range page.Items {
		c := &page.Items[i]
		matches = append(matches, CompanyMatch{
			ID:       c.ID,
			Name:     c.DisplayName(),
			Industry: c.Industry,
		})
	}

	return nil, FindCompanyOutput{
		Found:   len(matches) > 0,
		Matches: matches,
		Total:   len(matches),
	}, nil
}

type GetCompanyDetailsInput struct {
	CompanyID string `json:"company_id" jsonschema:"Exact Folk ID from find_company results (prefix + UUID format)"`
}

type CompanyDetailsOutput struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Emails         []string       `json:"emails"`
	Phones         []string       `json:"phones"`
	URLs           []string       `json:"urls"`
	Industry       string         `json:"industry,omitempty"`
	Description    string         `json:"description,omitempty"`
	EmployeeRange  string         `json:"employee_range,omitempty"`
	FoundationYear int            `json:"foundation_year,omitempty"`
	Groups         []GroupSummary `json:"groups"`
	CreatedAt      string         `json:"created_at,omitempty"`
}

// GetCompanyDetails returns the full projection for one company.
func (h *CompanyHandlers) GetCompanyDetails(ctx context.Context, request *mcp.CallToolRequest, input GetCompanyDetailsInput) (*mcp.CallToolResult, CompanyDetailsOutput, error) {
	if err := folk.ValidateID(input.CompanyID, "company_id"); err != nil {
		return nil, CompanyDetailsOutput{}, err
	}

	company, err := h.client.GetCompany(ctx, input.CompanyID)
	if err != nil {
		reportAPIError(h.logger, "get_company_details", err)
		return nil, CompanyDetailsOutput{}, err
	}

	out := CompanyDetailsOutput{
		ID:             company.ID,
		Name:           company.DisplayName(),
		Emails:         company.Emails,
		Phones:         company.Phones,
		URLs:           company.URLs,
		Industry:       company.Industry,
		Description:    company.Description,
		EmployeeRange:  company.EmployeeRange,
		FoundationYear: company.FoundationYear,
		Groups:         make([]GroupSummary, 0, len(company.Groups)),
		CreatedAt:      company.CreatedAt,
	}
	for _, g := range company.Groups {
		out.Groups = append(out.Groups, GroupSummary{ID: g.ID, Name: g.Name})
	}

	return nil, out, nil
}

type BrowseCompaniesInput struct {
	Page    int `json:"page,omitempty" jsonschema:"Page number (starts at 1)"`
	PerPage int `json:"per_page,omitempty" jsonschema:"Results per page (default 20, max 50)"`
}

type CompanyRow struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Industry string `json:"industry,omitempty"`
	Email    string `json:"email,omitempty"`
}

type BrowseCompaniesOutput struct {
	Companies []CompanyRow `json:"companies"`
	Page      int          `json:"page"`
	PerPage   int          `json:"per_page"`
	HasMore   bool         `json:"has_more"`
}

// BrowseCompanies pages through the workspace companies.
func (h *CompanyHandlers) BrowseCompanies(ctx context.Context, request *mcp.CallToolRequest, input BrowseCompaniesInput) (*mcp.CallToolResult, BrowseCompaniesOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	perPage := clampLimit(input.PerPage, defaultPageSize, maxPageSize)

	result, err := h.client.ListCompanies(ctx, folk.ListOptions{Limit: perPage})
	if err != nil {
		reportAPIError(h.logger, "browse_companies", err)
		return nil, BrowseCompaniesOutput{}, err
	}

	rows := make([]CompanyRow, 0, len(result.Items))
	for i := range result.Items {
		c := &result.Items[i]
		rows = append(rows, CompanyRow{
			ID:       c.ID,
			Name:     c.DisplayName(),
			Industry: c.Industry,
			Email:    c.PrimaryEmail(),
		})
	}

	return nil, BrowseCompaniesOutput{
		Companies: rows,
		Page:      page,
		PerPage:   perPage,
		HasMore:   result.HasMore(),
	}, nil
}

type AddCompanyInput struct {
	Name     string   `json:"name" jsonschema:"Company name (required)"`
	Email    string   `json:"email,omitempty" jsonschema:"Email address"`
	Phone    string   `json:"phone,omitempty" jsonschema:"Phone number"`
	URL      string   `json:"url,omitempty" jsonschema:"Website URL"`
	Industry string   `json:"industry,omitempty" jsonschema:"Industry sector"`
	Notes    string   `json:"notes,omitempty" jsonschema:"Initial notes about this company"`
	GroupIDs []string `json:"group_ids,omitempty" jsonschema:"Folk group IDs to add the company to"`
}

// AddCompany creates a company.
func (h *CompanyHandlers) AddCompany(ctx context.Context, request *mcp.CallToolRequest, input AddCompanyInput) (*mcp.CallToolResult, MutationOutput, error) {
	if input.Name == "" {
		return nil, MutationOutput{}, &folk.ValidationError{Message: "name is required"}
	}
	for _, gid := range input.GroupIDs {
		if err := folk.ValidateID(gid, "group_id"); err != nil {
			return nil, MutationOutput{}, err
		}
	}

	req := folk.CreateCompanyRequest{
		Name:        input.Name,
		Industry:    input.Industry,
		Description: input.Notes,
		GroupIDs:    input.GroupIDs,
	}
	if input.Email != "" {
		req.Emails = []string{input.Email}
	}
	if input.Phone != "" {
		req.Phones = []string{input.Phone}
	}
	if input.URL != "" {
		req.URLs = []string{input.URL}
	}

	company, err := h.client.CreateCompany(ctx, req)
	if err != nil {
		reportAPIError(h.logger, "add_company", err)
		return nil, MutationOutput{}, err
	}

	return nil, MutationOutput{ID: company.ID, Name: company.DisplayName(), Created: true}, nil
}

type UpdateCompanyInput struct {
	CompanyID string `json:"company_id" jsonschema:"Exact Folk ID from find_company results (prefix + UUID format)"`
	Name      string `json:"name,omitempty" jsonschema:"New company name (omit to keep existing)"`
	Email     string `json:"email,omitempty" jsonschema:"New email (replaces existing)"`
	Phone     string `json:"phone,omitempty" jsonschema:"New phone (replaces existing)"`
	URL       string `json:"url,omitempty" jsonschema:"New website URL (replaces existing)"`
	Industry  string `json:"industry,omitempty" jsonschema:"New industry sector"`
}

// UpdateCompany patches the supplied fields and leaves the rest alone.
func (h *CompanyHandlers) UpdateCompany(ctx context.Context, request *mcp.CallToolRequest, input UpdateCompanyInput) (*mcp.CallToolResult, MutationOutput, error) {
	if err := folk.ValidateID(input.CompanyID, "company_id"); err != nil {
		return nil, MutationOutput{}, err
	}
	if input.Name == "" && input.Email == "" && input.Phone == "" && input.URL == "" && input.Industry == "" {
		return nil, MutationOutput{}, &folk.ValidationError{Message: "nothing to update: provide at least one field to change"}
	}

	req := folk.UpdateCompanyRequest{
		Name:     input.Name,
		Industry: input.Industry,
	}
	if input.Email != "" {
		req.Emails = []string{input.Email}
	}
	if input.Phone != "" {
		req.Phones = []string{input.Phone}
	}
	if input.URL != "" {
		req.URLs = []string{input.URL}
	}

	company, err := h.client.UpdateCompany(ctx, input.CompanyID, req)
	if err != nil {
		reportAPIError(h.logger, "update_company", err)
		return nil, MutationOutput{}, err
	}

	return nil, MutationOutput{ID: company.ID, Name: company.DisplayName(), Updated: true}, nil
}

type DeleteCompanyInput struct {
	CompanyID string `json:"company_id" jsonschema:"Exact Folk ID from find_company results (prefix + UUID format)"`
}

// DeleteCompany removes a company. This cannot be undone.
func (h *CompanyHandlers) DeleteCompany(ctx context.Context, request *mcp.CallToolRequest, input DeleteCompanyInput) (*mcp.CallToolResult, MutationOutput, error) {
	if err := folk.ValidateID(input.CompanyID, "company_id"); err != nil {
		return nil, MutationOutput{}, err
	}

	if err := h.client.DeleteCompany(ctx, input.CompanyID); err != nil {
		reportAPIError(h.logger, "delete_company", err)
		return nil, MutationOutput{}, err
	}

	return nil, MutationOutput{ID: input.CompanyID, Deleted: true}, nil
}
