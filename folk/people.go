// ABOUTME: People endpoints: list, get, create, update, delete
// ABOUTME: Write shapes omit empty fields so partial updates stay partial
package folk

import "context"

// CreatePersonRequest is the write shape for a new person.
type CreatePersonRequest struct {
	FirstName         string         `json:"firstName,omitempty"`
	LastName          string         `json:"lastName,omitempty"`
	Emails            []string       `json:"emails,omitempty"`
	Phones            []string       `json:"phones,omitempty"`
	JobTitle          string         `json:"jobTitle,omitempty"`
	Description       string         `json:"description,omitempty"`
	GroupIDs          []string       `json:"groupIds,omitempty"`
	CompanyIDs        []string       `json:"companyIds,omitempty"`
	CustomFieldValues map[string]any `json:"customFieldValues,omitempty"`
}

// UpdatePersonRequest carries the fields to change; everything left empty
// stays untouched upstream.
type UpdatePersonRequest struct {
	FirstName         string         `json:"firstName,omitempty"`
	LastName          string         `json:"lastName,omitempty"`
	Emails            []string       `json:"emails,omitempty"`
	Phones            []string       `json:"phones,omitempty"`
	JobTitle          string         `json:"jobTitle,omitempty"`
	Description       string         `json:"description,omitempty"`
	GroupIDs          []string       `json:"groupIds,omitempty"`
	CompanyIDs        []string       `json:"companyIds,omitempty"`
	CustomFieldValues map[string]any `json:"customFieldValues,omitempty"`
}

// ListPeople returns one page of people.
func (c *Client) ListPeople(ctx context.Context, opts ListOptions) (*Page[Person], error) {
	return listPage[Person](ctx, c, "/people", opts)
}

// GetPerson fetches a single person by ID.
func (c *Client) GetPerson(ctx context.Context, id string) (*Person, error) {
	if err := ValidateID(id, "person_id"); err != nil {
		return nil, err
	}
	return getItem[Person](ctx, c, "/people/"+id)
}

// CreatePerson creates a person.
func (c *Client) CreatePerson(ctx context.Context, req CreatePersonRequest) (*Person, error) {
	return createItem[Person](ctx, c, "/people", req)
}

// UpdatePerson patches a person.
func (c *Client) UpdatePerson(ctx context.Context, id string, req UpdatePersonRequest) (*Person, error) {
	if err := ValidateID(id, "person_id"); err != nil {
		return nil, err
	}
	return updateItem[Person](ctx, c, "/people/"+id, req)
}

// DeletePerson removes a person.
func (c *Client) DeletePerson(ctx context.Context, id string) error {
	if err := ValidateID(id, "person_id"); err != nil {
		return err
	}
	return c.deleteNoBody(ctx, "/people/"+id)
}
