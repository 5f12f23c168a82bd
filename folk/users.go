// ABOUTME: User endpoints, including the current-user lookup behind
// ABOUTME: reminder auto-assignment
package folk

import "context"

// ListUsers returns one page of workspace users.
func (c *Client) ListUsers(ctx context.Context, opts ListOptions) (*Page[User], error) {
	return listPage[User](ctx, c, "/users", opts)
}

// GetUser fetches a single user by ID.
func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	if err := ValidateID(id, "user_id"); err != nil {
		return nil, err
	}
	return getItem[User](ctx, c, "/users/"+id)
}

// CurrentUser fetches the user who owns the API key.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	return getItem[User](ctx, c, "/users/me")
}
