// ABOUTME: Interaction logging (calls, emails, meetings) against entities
package folk

import "context"

// CreateInteractionRequest records a touchpoint with an entity. OccurredAt
// is an ISO-8601 timestamp passed through unparsed; InteractionType uses the
// upstream vocabulary (call, email, meeting, ...).
type CreateInteractionRequest struct {
	EntityID        string
	InteractionType string
	OccurredAt      string
}

type interactionBody struct {
	Entity          entityIDRef `json:"entity"`
	InteractionType string      `json:"interactionType"`
	OccurredAt      string      `json:"occurredAt"`
}

// CreateInteraction logs an interaction.
func (c *Client) CreateInteraction(ctx context.Context, req CreateInteractionRequest) (*Interaction, error) {
	if err := ValidateID(req.EntityID, "entity_id"); err != nil {
		return nil, err
	}
	body := interactionBody{
		Entity:          entityIDRef{ID: req.EntityID},
		InteractionType: req.InteractionType,
		OccurredAt:      req.OccurredAt,
	}
	return createItem[Interaction](ctx, c, "/interactions", body)
}
