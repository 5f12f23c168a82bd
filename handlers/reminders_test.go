// ABOUTME: Reminder handler tests: recurrence derivation on the wire,
// ABOUTME: auto-assignment of the caller, and list projection
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

const (
	reminderID = "rem_3c1f2b8a-91d2-4f6e-b7a4-0d9e8c7b6a5f"
	userID     = "usr_5a4b3c2d-1e0f-4a9b-8c7d-6e5f4a3b2c1d"
)

func TestSetReminderDerivesRuleAndAssignsCaller(t *testing.T) {
	var body map[string]any
	meCalls := 0
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/users/me":
			meCalls++
			writeItem(t, w, map[string]any{"id": userID, "fullName": "Grace Hopper", "email": "grace@example.com"})
		case r.Method == http.MethodPost && r.URL.Path == "/reminders":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			writeItem(t, w, map[string]any{"id": reminderID, "name": "Follow up"})
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	h := NewReminderHandlers(client, zerolog.Nop())

	_, out, err := h.SetReminder(context.Background(), nil, SetReminderInput{
		EntityID: personID,
		Reminder: "Follow up",
		When:     "2026-01-28T09:00:00Z",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, meCalls, "public reminder with no assignees looks up the caller once")
	assert.Equal(t, "DTSTART;TZID=UTC:20260128T090000\nRRULE:FREQ=DAILY;COUNT=1", body["recurrenceRule"])
	assert.Equal(t, []any{map[string]any{"id": userID}}, body["assignedUsers"])
	assert.Equal(t, "public", body["visibility"])

	assert.Equal(t, SetReminderOutput{ID: reminderID, Set: true}, out)
}

func TestSetReminderExplicitAssigneesSkipLookup(t *testing.T) {
	var body map[string]any
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/reminders":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			writeItem(t, w, map[string]any{"id": reminderID, "name": "Intro"})
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	h := NewReminderHandlers(client, zerolog.Nop())

	_, _, err := h.SetReminder(context.Background(), nil, SetReminderInput{
		EntityID:        personID,
		Reminder:        "Intro",
		When:            "2026-01-28T09:00:00Z",
		AssignedUserIDs: []string{userID},
	})
	require.NoError(t, err)

	assert.Equal(t, []any{map[string]any{"id": userID}}, body["assignedUsers"])
}

func TestSetReminderValidatesBeforeNetwork(t *testing.T) {
	h := NewReminderHandlers(noNetworkClient(t), zerolog.Nop())

	var verr *folk.ValidationError

	_, _, err := h.SetReminder(context.Background(), nil, SetReminderInput{EntityID: "soon", Reminder: "x"})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "entity_id")

	_, _, err = h.SetReminder(context.Background(), nil, SetReminderInput{EntityID: personID})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "reminder is required", verr.Message)

	_, _, err = h.SetReminder(context.Background(), nil, SetReminderInput{
		EntityID:        personID,
		Reminder:        "Follow up",
		AssignedUserIDs: []string{"grace"},
	})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "assigned_user_id")
}

func TestListRemindersProjection(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/reminders", r.URL.Path)
		require.Equal(t, personID, r.URL.Query().Get("entity.id"))
		writeList(t, w, []map[string]any{
			{
				"id":              reminderID,
				"name":            "Follow up",
				"entity":          map[string]any{"id": personID, "entityType": "person", "fullName": "Ada Lovelace"},
				"nextTriggerTime": "2026-01-28T09:00:00Z",
				"visibility":      "public",
				"assignedUsers":   []map[string]any{{"id": userID, "fullName": "Grace Hopper"}},
			},
			{"id": "rem_1db2d6f4-6d53-4fcb-8be1-5161f6e15cd7", "name": "Quarterly check-in"},
		})
	}))
	h := NewReminderHandlers(client, zerolog.Nop())

	_, out, err := h.ListReminders(context.Background(), nil, ListRemindersInput{EntityID: personID})
	require.NoError(t, err)

	assert.Equal(t, 2, out.Total)
	require.Len(t, out.Reminders, 2)

	first := out.Reminders[0]
	assert.Equal(t, "Ada Lovelace", first.Entity)
	assert.Equal(t, []string{"Grace Hopper"}, first.AssignedTo)

	second := out.Reminders[1]
	assert.Empty(t, second.Entity)
	assert.NotNil(t, second.AssignedTo, "assigned_to must encode as [] rather than null")
	assert.Empty(t, second.AssignedTo)
}
