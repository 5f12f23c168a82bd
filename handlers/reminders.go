// ABOUTME: Reminder MCP tool handlers
// ABOUTME: set_reminder derives a one-shot recurrence rule from the trigger time
package handlers

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/harperreed/folk-mcp/folk"
)

type ReminderHandlers struct {
	client *folk.Client
	logger zerolog.Logger
}

func NewReminderHandlers(client *folk.Client, logger zerolog.Logger) *ReminderHandlers {
	return &ReminderHandlers{client: client, logger: logger}
}

type SetReminderInput struct {
	EntityID        string   `json:"entity_id" jsonschema:"Folk ID of the person or company the reminder is about"`
	Reminder        string   `json:"reminder" jsonschema:"What to be reminded about"`
	When            string   `json:"when" jsonschema:"When to trigger (ISO 8601 datetime, e.g. '2026-01-28T09:00:00Z')"`
	Visibility      string   `json:"visibility,omitempty" jsonschema:"'public' (default) or 'private'"`
	AssignedUserIDs []string `json:"assigned_user_ids,omitempty" jsonschema:"Folk user IDs to assign; defaults to the current user for public reminders"`
}

type SetReminderOutput struct {
	ID  string `json:"id"`
	Set bool   `json:"set"`
}

// SetReminder schedules a one-shot reminder. Public reminders with no
// explicit assignees go to the calling user.
func (h *ReminderHandlers) SetReminder(ctx context.Context, request *mcp.CallToolRequest, input SetReminderInput) (*mcp.CallToolResult, SetReminderOutput, error) {
	if err := folk.ValidateID(input.EntityID, "entity_id"); err != nil {
		return nil, SetReminderOutput{}, err
	}
	if input.Reminder == "" {
		return nil, SetReminderOutput{}, &folk.ValidationError{Message: "reminder is required"}
	}
	for _, uid := range input.AssignedUserIDs {
		if err := folk.ValidateID(uid, "assigned_user_id"); err != nil {
			return nil, SetReminderOutput{}, err
		}
	}

	reminder, err := h.client.CreateReminder(ctx, folk.CreateReminderRequest{
		EntityID:        input.EntityID,
		Name:            input.Reminder,
		TriggerTime:     input.When,
		Visibility:      folk.Visibility(input.Visibility),
		AssignedUserIDs: input.AssignedUserIDs,
	})
	if err != nil {
		reportAPIError(h.logger, "set_reminder", err)
		return nil, SetReminderOutput{}, err
	}

	return nil, SetReminderOutput{ID: reminder.ID, Set: true}, nil
}

type ListRemindersInput struct {
	EntityID string `json:"entity_id,omitempty" jsonschema:"Folk ID to scope to one person or company (omit for all reminders)"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Maximum reminders to return (default 20, max 50)"`
}

type ReminderRow struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Entity          string   `json:"entity,omitempty"`
	NextTriggerTime string   `json:"next_trigger_time,omitempty"`
	Visibility      string   `json:"visibility,omitempty"`
	AssignedTo      []string `json:"assigned_to"`
}

type ListRemindersOutput struct {
	Reminders []ReminderRow `json:"reminders"`
	Total     int           `json:"total"`
}

// ListReminders lists reminders, scoped to one entity when entity_id is set.
func (h *ReminderHandlers) ListReminders(ctx context.Context, request *mcp.CallToolRequest, input ListRemindersInput) (*mcp.CallToolResult, ListRemindersOutput, error) {
	if input.EntityID != "" {
		if err := folk.ValidateID(input.EntityID, "entity_id"); err != nil {
			return nil, ListRemindersOutput{}, err
		}
	}
	limit := clampLimit(input.Limit, defaultPageSize, maxPageSize)

	page, err := h.client.ListReminders(ctx, folk.ReminderListOptions{
		Limit:    limit,
		EntityID: input.EntityID,
	})
	if err != nil {
		reportAPIError(h.logger, "list_reminders", err)
		return nil, ListRemindersOutput{}, err
	}

	rows := make([]ReminderRow, 0, len(page.Items))
	for i := range page.Items {
		r := &page.Items[i]
		row := ReminderRow{
			ID:              r.ID,
			Name:            r.Name,
			NextTriggerTime: r.NextTriggerTime,
			Visibility:      string(r.Visibility),
			AssignedTo:      make([]string, 0, len(r.AssignedUsers)),
		}
		if r.Entity != nil {
			row.Entity = r.Entity.FullName
		}
		for _, u := range r.AssignedUsers {
			row.AssignedTo = append(row.AssignedTo, u.FullName)
		}
		rows = append(rows, row)
	}

	return nil, ListRemindersOutput{Reminders: rows, Total: len(rows)}, nil
}

type DeleteReminderInput struct {
	ReminderID string `json:"reminder_id" jsonschema:"Folk ID of the reminder to delete"`
}

// DeleteReminder removes a reminder. This cannot be undone.
func (h *ReminderHandlers) DeleteReminder(ctx context.Context, request *mcp.CallToolRequest, input DeleteReminderInput) (*mcp.CallToolResult, MutationOutput, error) {
	if err := folk.ValidateID(input.ReminderID, "reminder_id"); err != nil {
		return nil, MutationOutput{}, err
	}

	if err := h.client.DeleteReminder(ctx, input.ReminderID); err != nil {
		reportAPIError(h.logger, "delete_reminder", err)
		return nil, MutationOutput{}, err
	}

	return nil, MutationOutput{ID: input.ReminderID, Deleted: true}, nil
}
