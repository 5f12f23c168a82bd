// ABOUTME: Note endpoints: list (optionally scoped to one entity), get, create, update, delete
package folk

import "context"

// NoteListOptions control /notes pagination and entity scoping.
type NoteListOptions struct {
	Limit  int
	Cursor string
	// EntityID limits the listing to notes attached to one entity.
	EntityID string
}

// CreateNoteRequest is the write shape for a new note.
type CreateNoteRequest struct {
	EntityID   string
	Content    string
	Visibility Visibility
}

// UpdateNoteRequest carries the note fields to change.
type UpdateNoteRequest struct {
	Content    string     `json:"content,omitempty"`
	Visibility Visibility `json:"visibility,omitempty"`
}

type noteBody struct {
	Entity     entityIDRef `json:"entity"`
	Content    string      `json:"content"`
	Visibility Visibility  `json:"visibility"`
}

// ListNotes returns one page of notes, scoped to an entity when
// opts.EntityID is set.
func (c *Client) ListNotes(ctx context.Context, opts NoteListOptions) (*Page[Note], error) {
	q, err := ListOptions{Limit: opts.Limit, Cursor: opts.Cursor}.query()
	if err != nil {
		return nil, err
	}
	if opts.EntityID != "" {
		if err := ValidateID(opts.EntityID, "entity_id"); err != nil {
			return nil, err
		}
		q.Set("entity.id", opts.EntityID)
	}

	var envelope listEnvelope[Note]
	if err := c.request(ctx, "GET", "/notes", q, nil, &envelope); err != nil {
		return nil, err
	}
	return &Page[Note]{
		Items:    ensure(envelope.Data.Items),
		NextLink: envelope.Data.Pagination.NextLink,
	}, nil
}

// GetNote fetches a single note by ID.
func (c *Client) GetNote(ctx context.Context, id string) (*Note, error) {
	if err := ValidateID(id, "note_id"); err != nil {
		return nil, err
	}
	return getItem[Note](ctx, c, "/notes/"+id)
}

// CreateNote attaches a note to an entity. Visibility defaults to public,
// matching the upstream default.
func (c *Client) CreateNote(ctx context.Context, req CreateNoteRequest) (*Note, error) {
	if err := ValidateID(req.EntityID, "entity_id"); err != nil {
		return nil, err
	}
	visibility := req.Visibility
	if visibility == "" {
		visibility = VisibilityPublic
	}
	body := noteBody{
		Entity:     entityIDRef{ID: req.EntityID},
		Content:    req.Content,
		Visibility: visibility,
	}
	return createItem[Note](ctx, c, "/notes", body)
}

// UpdateNote patches a note.
func (c *Client) UpdateNote(ctx context.Context, id string, req UpdateNoteRequest) (*Note, error) {
	if err := ValidateID(id, "note_id"); err != nil {
		return nil, err
	}
	return updateItem[Note](ctx, c, "/notes/"+id, req)
}

// DeleteNote removes a note.
func (c *Client) DeleteNote(ctx context.Context, id string) error {
	if err := ValidateID(id, "note_id"); err != nil {
		return err
	}
	return c.deleteNoBody(ctx, "/notes/"+id)
}
