// ABOUTME: Folk API entity types mirroring the upstream camelCase JSON
// ABOUTME: Includes display-name fallbacks and empty-list normalization
package folk

import "strings"

// EntityType identifies what kind of record an ID points at.
type EntityType string

const (
	EntityPerson  EntityType = "person"
	EntityCompany EntityType = "company"
	EntityObject  EntityType = "object"
)

// Visibility controls who can see a note or reminder.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// UserRef is a compact reference to a workspace user.
type UserRef struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// GroupRef is a compact reference to a group.
type GroupRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CompanyRef is a compact reference to a company.
type CompanyRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PersonRef is a compact reference to a person.
type PersonRef struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
}

// EntityRef is a reference to a person, company, or custom object.
type EntityRef struct {
	ID         string     `json:"id"`
	EntityType EntityType `json:"entityType"`
	FullName   string     `json:"fullName"`
}

// entityIDRef is the write shape for pointing a note, reminder, or
// interaction at an entity.
type entityIDRef struct {
	ID string `json:"id"`
}

// userIDRef is the write shape for assigning users.
type userIDRef struct {
	ID string `json:"id"`
}

// UserInteraction summarizes the calling user's interactions with an entity.
type UserInteraction struct {
	ApproximateCount int    `json:"approximateCount"`
	LastInteractedAt string `json:"lastInteractedAt,omitempty"`
}

// WorkspaceInteraction summarizes workspace-wide interactions with an entity.
type WorkspaceInteraction struct {
	ApproximateCount int       `json:"approximateCount"`
	LastInteractedAt string    `json:"lastInteractedAt,omitempty"`
	LastInteractedBy []UserRef `json:"lastInteractedBy,omitempty"`
}

// InteractionMetadata carries interaction summaries attached to people and companies.
type InteractionMetadata struct {
	User      *UserInteraction      `json:"user,omitempty"`
	Workspace *WorkspaceInteraction `json:"workspace,omitempty"`
}

// Pagination carries the opaque cursor for the next page, when there is one.
type Pagination struct {
	NextLink string `json:"nextLink,omitempty"`
}

// Person is a person record.
type Person struct {
	ID                  string               `json:"id"`
	FirstName           string               `json:"firstName,omitempty"`
	LastName            string               `json:"lastName,omitempty"`
	FullName            string               `json:"fullName,omitempty"`
	Description         string               `json:"description,omitempty"`
	Birthday            string               `json:"birthday,omitempty"`
	JobTitle            string               `json:"jobTitle,omitempty"`
	CreatedAt           string               `json:"createdAt,omitempty"`
	CreatedBy           *UserRef             `json:"createdBy,omitempty"`
	Groups              []GroupRef           `json:"groups"`
	Companies           []CompanyRef         `json:"companies"`
	Addresses           []string             `json:"addresses"`
	Emails              []string             `json:"emails"`
	Phones              []string             `json:"phones"`
	URLs                []string             `json:"urls"`
	CustomFieldValues   map[string]any       `json:"customFieldValues,omitempty"`
	InteractionMetadata *InteractionMetadata `json:"interactionMetadata,omitempty"`
}

// DisplayName builds a readable name: first and last name joined, falling
// back to the full name, falling back to "Unknown".
func (p *Person) DisplayName() string {
	parts := make([]string, 0, 2)
	if p.FirstName != "" {
		parts = append(parts, p.FirstName)
	}
	if p.LastName != "" {
		parts = append(parts, p.LastName)
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	if p.FullName != "" {
		return p.FullName
	}
	return "Unknown"
}

// PrimaryEmail returns the first email address, or "" when there is none.
func (p *Person) PrimaryEmail() string {
	if len(p.Emails) > 0 {
		return p.Emails[0]
	}
	return ""
}

func (p *Person) normalize() {
	p.Groups = ensure(p.Groups)
	p.Companies = ensure(p.Companies)
	p.Addresses = ensure(p.Addresses)
	p.Emails = ensure(p.Emails)
	p.Phones = ensure(p.Phones)
	p.URLs = ensure(p.URLs)
	if p.CustomFieldValues == nil {
		p.CustomFieldValues = map[string]any{}
	}
}

// Company is a company record.
type Company struct {
	ID                string         `json:"id"`
	Name              string         `json:"name,omitempty"`
	Description       string         `json:"description,omitempty"`
	FundingRaised     string         `json:"fundingRaised,omitempty"`
	LastFundingDate   string         `json:"lastFundingDate,omitempty"`
	Industry          string         `json:"industry,omitempty"`
	FoundationYear    int            `json:"foundationYear,omitempty"`
	EmployeeRange     string         `json:"employeeRange,omitempty"`
	CreatedAt         string         `json:"createdAt,omitempty"`
	CreatedBy         *UserRef       `json:"createdBy,omitempty"`
	Groups            []GroupRef     `json:"groups"`
	Addresses         []string       `json:"addresses"`
	Emails            []string       `json:"emails"`
	Phones            []string       `json:"phones"`
	URLs              []string       `json:"urls"`
	CustomFieldValues map[string]any `json:"customFieldValues,omitempty"`
}

// DisplayName returns the company name, or "Unknown" when it is blank.
func (c *Company) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return "Unknown"
}

// PrimaryEmail returns the first email address, or "" when there is none.
func (c *Company) PrimaryEmail() string {
	if len(c.Emails) > 0 {
		return c.Emails[0]
	}
	return ""
}

func (c *Company) normalize() {
	c.Groups = ensure(c.Groups)
	c.Addresses = ensure(c.Addresses)
	c.Emails = ensure(c.Emails)
	c.Phones = ensure(c.Phones)
	c.URLs = ensure(c.URLs)
	if c.CustomFieldValues == nil {
		c.CustomFieldValues = map[string]any{}
	}
}

// NoteAuthor identifies who wrote a note; assistant-authored notes may lack an ID.
type NoteAuthor struct {
	ID       string `json:"id,omitempty"`
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Note is a note attached to an entity.
type Note struct {
	ID         string         `json:"id"`
	Entity     *EntityRef     `json:"entity,omitempty"`
	Content    string         `json:"content"`
	Visibility Visibility     `json:"visibility,omitempty"`
	Author     *NoteAuthor    `json:"author,omitempty"`
	CreatedAt  string         `json:"createdAt,omitempty"`
	ParentNote map[string]any `json:"parentNote,omitempty"`
}

// Reminder is a scheduled reminder attached to an entity.
type Reminder struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Entity          *EntityRef `json:"entity,omitempty"`
	RecurrenceRule  string     `json:"recurrenceRule,omitempty"`
	Visibility      Visibility `json:"visibility,omitempty"`
	AssignedUsers   []UserRef  `json:"assignedUsers"`
	NextTriggerTime string     `json:"nextTriggerTime,omitempty"`
	LastTriggerTime string     `json:"lastTriggerTime,omitempty"`
	CreatedBy       *UserRef   `json:"createdBy,omitempty"`
	CreatedAt       string     `json:"createdAt,omitempty"`
}

func (r *Reminder) normalize() {
	r.AssignedUsers = ensure(r.AssignedUsers)
}

// Group is a Folk group (a named collection of people and companies).
type Group struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// User is a workspace user.
type User struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// Deal is a custom object row in a group, most commonly a deal.
type Deal struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Companies         []CompanyRef   `json:"companies"`
	People            []PersonRef    `json:"people"`
	CreatedAt         string         `json:"createdAt,omitempty"`
	CreatedBy         *UserRef       `json:"createdBy,omitempty"`
	CustomFieldValues map[string]any `json:"customFieldValues,omitempty"`
}

func (d *Deal) normalize() {
	d.Companies = ensure(d.Companies)
	d.People = ensure(d.People)
	if d.CustomFieldValues == nil {
		d.CustomFieldValues = map[string]any{}
	}
}

// Interaction is a logged touchpoint (call, email, meeting) with an entity.
type Interaction struct {
	ID              string `json:"id"`
	EntityID        string `json:"entityId"`
	InteractionType string `json:"interactionType"`
	OccurredAt      string `json:"occurredAt"`
}

// Page is one page of list results plus the opaque cursor for the next one.
// Deprecations is only populated by the custom-object endpoints.
type Page[T any] struct {
	Items        []T
	NextLink     string
	Deprecations []string
}

// HasMore reports whether the upstream indicated another page.
func (p *Page[T]) HasMore() bool {
	return p.NextLink != ""
}

func ensure[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
