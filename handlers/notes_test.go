// ABOUTME: Note handler tests: attach/list/update guards and author flattening
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/folk-mcp/folk"
)

func TestAddNoteValidatesBeforeNetwork(t *testing.T) {
	h := NewNoteHandlers(noNetworkClient(t), zerolog.Nop())

	_, _, err := h.AddNote(context.Background(), nil, AddNoteInput{EntityID: "not-an-id", Content: "hi"})
	var verr *folk.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "entity_id")

	_, _, err = h.AddNote(context.Background(), nil, AddNoteInput{EntityID: personID})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "content is required", verr.Message)
}

func TestAddNotePointsAtEntity(t *testing.T) {
	var body map[string]any
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/notes", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeItem(t, w, map[string]any{"id": noteID, "content": "met at the meetup"})
	}))
	h := NewNoteHandlers(client, zerolog.Nop())

	_, out, err := h.AddNote(context.Background(), nil, AddNoteInput{
		EntityID: personID,
		Content:  "met at the meetup",
	})
	require.NoError(t, err)

	entity, ok := body["entity"].(map[string]any)
	require.True(t, ok, "note payload carries an entity reference")
	assert.Equal(t, personID, entity["id"])

	assert.Equal(t, AddNoteOutput{ID: noteID, Added: true}, out)
}

func TestGetNotesFlattensAuthor(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeList(t, w, []map[string]any{
			{
				"id":        noteID,
				"content":   "intro call went well",
				"author":    map[string]any{"fullName": "Grace Hopper"},
				"createdAt": "2025-03-01T10:00:00Z",
			},
			{"id": "not_1db2d6f4-6d53-4fcb-8be1-5161f6e15cd7", "content": "assistant note"},
		})
	}))
	h := NewNoteHandlers(client, zerolog.Nop())

	_, out, err := h.GetNotes(context.Background(), nil, GetNotesInput{EntityID: personID})
	require.NoError(t, err)

	assert.Equal(t, 2, out.Total)
	require.Len(t, out.Notes, 2)
	assert.Equal(t, "Grace Hopper", out.Notes[0].Author)
	assert.Empty(t, out.Notes[1].Author, "authorless notes stay blank instead of panicking")
}

func TestUpdateNoteRejectsEmptyUpdate(t *testing.T) {
	h := NewNoteHandlers(noNetworkClient(t), zerolog.Nop())

	_, _, err := h.UpdateNote(context.Background(), nil, UpdateNoteInput{NoteID: noteID})

	var verr *folk.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "nothing to update")
}
