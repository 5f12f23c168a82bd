// ABOUTME: Interaction logging MCP tool handler
package handlers

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/harperreed/folk-mcp/folk"
)

type InteractionHandlers struct {
	client *folk.Client
	logger zerolog.Logger
}

func NewInteractionHandlers(client *folk.Client, logger zerolog.Logger) *InteractionHandlers {
	return &InteractionHandlers{client: client, logger: logger}
}

type LogInteractionInput struct {
	EntityID        string `json:"entity_id" jsonschema:"Folk ID of the person or company the interaction was with"`
	InteractionType string `json:"interaction_type" jsonschema:"Type of interaction, e.g. 'email', 'meeting', 'call'"`
	When            string `json:"when" jsonschema:"When it occurred (ISO 8601 datetime)"`
}

type LogInteractionOutput struct {
	ID     string `json:"id"`
	Logged bool   `json:"logged"`
}

// LogInteraction records a touchpoint with an entity.
func (h *InteractionHandlers) LogInteraction(ctx context.Context, request *mcp.CallToolRequest, input LogInteractionInput) (*mcp.CallToolResult, LogInteractionOutput, error) {
	if err := folk.ValidateID(input.EntityID, "entity_id"); err != nil {
		return nil, LogInteractionOutput{}, err
	}
	if input.InteractionType == "" {
		return nil, LogInteractionOutput{}, &folk.ValidationError{Message: "interaction_type is required"}
	}

	interaction, err := h.client.CreateInteraction(ctx, folk.CreateInteractionRequest{
		EntityID:        input.EntityID,
		InteractionType: input.InteractionType,
		OccurredAt:      input.When,
	})
	if err != nil {
		reportAPIError(h.logger, "log_interaction", err)
		return nil, LogInteractionOutput{}, err
	}

	return nil, LogInteractionOutput{ID: interaction.ID, Logged: true}, nil
}
