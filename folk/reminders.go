// ABOUTME: Reminder endpoints, including recurrence derivation and the
// ABOUTME: public-reminder auto-assign of the calling user
package folk

import "context"

// ReminderListOptions control /reminders pagination and entity scoping.
type ReminderListOptions struct {
	Limit    int
	Cursor   string
	EntityID string
}

// CreateReminderRequest is the write shape for a new reminder. TriggerTime
// is an ISO-8601 timestamp; it is turned into a one-shot recurrence rule
// unless RecurrenceRule supplies one verbatim.
type CreateReminderRequest struct {
	EntityID        string
	Name            string
	TriggerTime     string
	RecurrenceRule  string
	Visibility      Visibility
	AssignedUserIDs []string
}

// UpdateReminderRequest carries the reminder fields to change. TriggerTime
// and RecurrenceRule pass through unmodified.
type UpdateReminderRequest struct {
	Name            string     `json:"name,omitempty"`
	TriggerTime     string     `json:"triggerTime,omitempty"`
	Visibility      Visibility `json:"visibility,omitempty"`
	RecurrenceRule  string     `json:"recurrenceRule,omitempty"`
	AssignedUserIDs []string   `json:"assignedUserIds,omitempty"`
}

type reminderBody struct {
	Entity         entityIDRef `json:"entity"`
	Name           string      `json:"name"`
	RecurrenceRule string      `json:"recurrenceRule"`
	Visibility     Visibility  `json:"visibility"`
	AssignedUsers  []userIDRef `json:"assignedUsers,omitempty"`
}

// ListReminders returns one page of reminders, scoped to an entity when
// opts.EntityID is set.
func (c *Client) ListReminders(ctx context.Context, opts ReminderListOptions) (*Page[Reminder], error) {
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

	var envelope listEnvelope[Reminder]
	if err := c.request(ctx, "GET", "/reminders", q, nil, &envelope); err != nil {
		return nil, err
	}
	items := ensure(envelope.Data.Items)
	for i := range items {
		items[i].normalize()
	}
	return &Page[Reminder]{
		Items:    items,
		NextLink: envelope.Data.Pagination.NextLink,
	}, nil
}

// GetReminder fetches a single reminder by ID.
func (c *Client) GetReminder(ctx context.Context, id string) (*Reminder, error) {
	if err := ValidateID(id, "reminder_id"); err != nil {
		return nil, err
	}
	return getItem[Reminder](ctx, c, "/reminders/"+id)
}

// CreateReminder creates a reminder. Visibility defaults to public. The
// upstream requires assignees on public reminders, so a public reminder
// with none assigns the calling user, found with one /users/me lookup.
func (c *Client) CreateReminder(ctx context.Context, req CreateReminderRequest) (*Reminder, error) {
	if err := ValidateID(req.EntityID, "entity_id"); err != nil {
		return nil, err
	}

	rule := req.RecurrenceRule
	if rule == "" {
		var err error
		rule, err = BuildRecurrenceRule(req.TriggerTime)
		if err != nil {
			return nil, err
		}
	}

	visibility := req.Visibility
	if visibility == "" {
		visibility = VisibilityPublic
	}

	body := reminderBody{
		Entity:         entityIDRef{ID: req.EntityID},
		Name:           req.Name,
		RecurrenceRule: rule,
		Visibility:     visibility,
	}
	if len(req.AssignedUserIDs) > 0 {
		body.AssignedUsers = make([]userIDRef, 0, len(req.AssignedUserIDs))
		for _, uid := range req.AssignedUserIDs {
			if err := ValidateID(uid, "assigned_user_id"); err != nil {
				return nil, err
			}
			body.AssignedUsers = append(body.AssignedUsers, userIDRef{ID: uid})
		}
	} else if visibility == VisibilityPublic {
		me, err := c.CurrentUser(ctx)
		if err != nil {
			return nil, err
		}
		body.AssignedUsers = []userIDRef{{ID: me.ID}}
	}

	return createItem[Reminder](ctx, c, "/reminders", body)
}

// UpdateReminder patches a reminder.
func (c *Client) UpdateReminder(ctx context.Context, id string, req UpdateReminderRequest) (*Reminder, error) {
	if err := ValidateID(id, "reminder_id"); err != nil {
		return nil, err
	}
	return updateItem[Reminder](ctx, c, "/reminders/"+id, req)
}

// DeleteReminder removes a reminder.
func (c *Client) DeleteReminder(ctx context.Context, id string) error {
	if err := ValidateID(id, "reminder_id"); err != nil {
		return err
	}
	return c.deleteNoBody(ctx, "/reminders/"+id)
}
