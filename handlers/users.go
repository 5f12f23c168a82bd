// ABOUTME: Workspace user MCP tool handlers: whoami and list_users
package handlers

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/harperreed/folk-mcp/folk"
)

type UserHandlers struct {
	client *folk.Client
	logger zerolog.Logger
}

func NewUserHandlers(client *folk.Client, logger zerolog.Logger) *UserHandlers {
	return &UserHandlers{client: client, logger: logger}
}

type WhoamiInput struct{}

type WhoamiOutput struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Whoami identifies the user who owns the API key.
func (h *UserHandlers) Whoami(ctx context.Context, request *mcp.CallToolRequest, input WhoamiInput) (*mcp.CallToolResult, WhoamiOutput, error) {
	user, err := h.client.CurrentUser(ctx)
	if err != nil {
		reportAPIError(h.logger, "whoami", err)
		return nil, WhoamiOutput{}, err
	}

	return nil, WhoamiOutput{ID: user.ID, Name: user.FullName, Email: user.Email}, nil
}

type ListUsersInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Maximum users to return (default 50)"`
}

type UserRow struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

type ListUsersOutput struct {
	Users []UserRow `json:"users"`
	Total int       `json:"total"`
}

// ListUsers lists the workspace users, mainly so reminders can be assigned
// to someone other than the caller.
func (h *UserHandlers) ListUsers(ctx context.Context, request *mcp.CallToolRequest, input ListUsersInput) (*mcp.CallToolResult, ListUsersOutput, error) {
	limit := clampLimit(input.Limit, maxPageSize, maxPageSize)

	page, err := h.client.ListUsers(ctx, folk.ListOptions{Limit: limit})
	if err != nil {
		reportAPIError(h.logger, "list_users", err)
		return nil, ListUsersOutput{}, err
	}

	rows := make([]UserRow, 0, len(page.Items))
	for _, u := range page.Items {
		rows = append(rows, UserRow{ID: u.ID, Name: u.FullName, Email: u.Email})
	}

	return nil, ListUsersOutput{Users: rows, Total: len(rows)}, nil
}
