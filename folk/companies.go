// ABOUTME: Company endpoints: list, get, create, update, delete
package folk

import "context"

// CreateCompanyRequest is the write shape for a new company. Name is the
// only required field.
type CreateCompanyRequest struct {
	Name              string         `json:"name"`
	Emails            []string       `json:"emails,omitempty"`
	Phones            []string       `json:"phones,omitempty"`
	URLs              []string       `json:"urls,omitempty"`
	Industry          string         `json:"industry,omitempty"`
	Description       string         `json:"description,omitempty"`
	GroupIDs          []string       `json:"groupIds,omitempty"`
	CustomFieldValues map[string]any `json:"customFieldValues,omitempty"`
}

// UpdateCompanyRequest carries the fields to change.
type UpdateCompanyRequest struct {
	Name              string         `json:"name,omitempty"`
	Emails            []string       `json:"emails,omitempty"`
	Phones            []string       `json:"phones,omitempty"`
	URLs              []string       `json:"urls,omitempty"`
	Industry          string         `json:"industry,omitempty"`
	Description       string         `json:"description,omitempty"`
	GroupIDs          []string       `json:"groupIds,omitempty"`
	CustomFieldValues map[string]any `json:"customFieldValues,omitempty"`
}

// ListCompanies returns one page of companies.
func (c *Client) ListCompanies(ctx context.Context, opts ListOptions) (*Page[Company], error) {
	return listPage[Company](ctx, c, "/companies", opts)
}

// GetCompany fetches a single company by ID.
func (c *Client) GetCompany(ctx context.Context, id string) (*Company, error) {
	if err := ValidateID(id, "company_id"); err != nil {
		return nil, err
	}
	return getItem[Company](ctx, c, "/companies/"+id)
}

// CreateCompany creates a company.
func (c *Client) CreateCompany(ctx context.Context, req CreateCompanyRequest) (*Company, error) {
	if req.Name == "" {
		return nil, validationf("company name is required")
	}
	return createItem[Company](ctx, c, "/companies", req)
}

// UpdateCompany patches a company.
func (c *Client) UpdateCompany(ctx context.Context, id string, req UpdateCompanyRequest) (*Company, error) {
	if err := ValidateID(id, "company_id"); err != nil {
		return nil, err
	}
	return updateItem[Company](ctx, c, "/companies/"+id, req)
}

// DeleteCompany removes a company.
func (c *Client) DeleteCompany(ctx context.Context, id string) error {
	if err := ValidateID(id, "company_id"); err != nil {
		return err
	}
	return c.deleteNoBody(ctx, "/companies/"+id)
}
