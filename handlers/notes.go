// ABOUTME: Note MCP tool handlers
// ABOUTME: Notes attach to any entity: people, companies, or custom objects
package handlers

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/harperreed/folk-mcp/folk"
)

type NoteHandlers struct {
	client *folk.Client
	logger zerolog.Logger
}

func NewNoteHandlers(client *folk.Client, logger zerolog.Logger) *NoteHandlers {
	return &NoteHandlers{client: client, logger: logger}
}

type AddNoteInput struct {
	EntityID   string `json:"entity_id" jsonschema:"Folk ID of the person or company to attach the note to"`
	Content    string `json:"content" jsonschema:"Note content"`
	Visibility string `json:"visibility,omitempty" jsonschema:"'public' (default, visible to the workspace) or 'private'"`
}

type AddNoteOutput struct {
	ID    string `json:"id"`
	Added bool   `json:"added"`
}

// AddNote attaches a note to an entity. Notes default to public so the
// whole workspace sees them.
func (h *NoteHandlers) AddNote(ctx context.Context, request *mcp.CallToolRequest, input AddNoteInput) (*mcp.CallToolResult, AddNoteOutput, error) {
	if err := folk.ValidateID(input.EntityID, "entity_id"); err != nil {
		return nil, AddNoteOutput{}, err
	}
	if input.Content == "" {
		return nil, AddNoteOutput{}, &folk.ValidationError{Message: "content is required"}
	}

	note, err := h.client.CreateNote(ctx, folk.CreateNoteRequest{
		EntityID:   input.EntityID,
		Content:    input.Content,
		Visibility: folk.Visibility(input.Visibility),
	})
	if err != nil {
		reportAPIError(h.logger, "add_note", err)
		return nil, AddNoteOutput{}, err
	}

	return nil, AddNoteOutput{ID: note.ID, Added: true}, nil
}

type GetNotesInput struct {
	EntityID string `json:"entity_id" jsonschema:"Folk ID of the person or company whose notes to fetch"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Maximum notes to return (default 10, max 50)"`
}

type NoteRow struct {
	ID         string `json:"id"`
	Content    string `json:"content"`
	Visibility string `json:"visibility,omitempty"`
	Author     string `json:"author,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
}

type GetNotesOutput struct {
	Notes []NoteRow `json:"notes"`
	Total int       `json:"total"`
}

// GetNotes lists the notes attached to one entity, newest first per the
// upstream ordering.
func (h *NoteHandlers) GetNotes(ctx context.Context, request *mcp.CallToolRequest, input GetNotesInput) (*mcp.CallToolResult, GetNotesOutput, error) {
	if err := folk.ValidateID(input.EntityID, "entity_id"); err != nil {
		return nil, GetNotesOutput{}, err
	}
	limit := clampLimit(input.Limit, defaultSearchLimit, maxPageSize)

	page, err := h.client.ListNotes(ctx, folk.NoteListOptions{
		Limit:    limit,
		EntityID: input.EntityID,
	})
	if err != nil {
		reportAPIError(h.logger, "get_notes", err)
		return nil, GetNotesOutput{}, err
	}

	rows := make([]NoteRow, 0, len(page.Items))
	for i := range page.Items {
		n := &page.Items[i]
		row := NoteRow{
			ID:         n.ID,
			Content:    n.Content,
			Visibility: string(n.Visibility),
			CreatedAt:  n.CreatedAt,
		}
		if n.Author != nil {
			row.Author = n.Author.FullName
		}
		rows = append(rows, row)
	}

	return nil, GetNotesOutput{Notes: rows, Total: len(rows)}, nil
}

type UpdateNoteInput struct {
	NoteID     string `json:"note_id" jsonschema:"Folk ID of the note to update"`
	Content    string `json:"content,omitempty" jsonschema:"New note content (omit to keep existing)"`
	Visibility string `json:"visibility,omitempty" jsonschema:"'public' or 'private'"`
}

// UpdateNote patches a note's content or visibility.
func (h *NoteHandlers) UpdateNote(ctx context.Context, request *mcp.CallToolRequest, input UpdateNoteInput) (*mcp.CallToolResult, MutationOutput, error) {
	if err := folk.ValidateID(input.NoteID, "note_id"); err != nil {
		return nil, MutationOutput{}, err
	}
	if input.Content == "" && input.Visibility == "" {
		return nil, MutationOutput{}, &folk.ValidationError{Message: "nothing to update: provide content or visibility"}
	}

	note, err := h.client.UpdateNote(ctx, input.NoteID, folk.UpdateNoteRequest{
		Content:    input.Content,
		Visibility: folk.Visibility(input.Visibility),
	})
	if err != nil {
		reportAPIError(h.logger, "update_note", err)
		return nil, MutationOutput{}, err
	}

	return nil, MutationOutput{ID: note.ID, Updated: true}, nil
}

type DeleteNoteInput struct {
	NoteID string `json:"note_id" jsonschema:"Folk ID of the note to delete"`
}

// DeleteNote removes a note. This cannot be undone.
func (h *NoteHandlers) DeleteNote(ctx context.Context, request *mcp.CallToolRequest, input DeleteNoteInput) (*mcp.CallToolResult, MutationOutput, error) {
	if err := folk.ValidateID(input.NoteID, "note_id"); err != nil {
		return nil, MutationOutput{}, err
	}

	if err := h.client.DeleteNote(ctx, input.NoteID); err != nil {
		reportAPIError(h.logger, "delete_note", err)
		return nil, MutationOutput{}, err
	}

	return nil, MutationOutput{ID: input.NoteID, Deleted: true}, nil
}
