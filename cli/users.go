// ABOUTME: Identity CLI command
package cli

import (
	"context"
	"fmt"

	"github.com/harperreed/folk-mcp/folk"
)

// WhoamiCommand prints the user who owns the API key.
func WhoamiCommand(client *folk.Client, args []string) error {
	user, err := client.CurrentUser(context.Background())
	if err != nil {
		return fmt.Errorf("failed to look up current user: %w", err)
	}

	fmt.Printf("Name:  %s\n", user.FullName)
	fmt.Printf("Email: %s\n", user.Email)
	fmt.Printf("ID:    %s\n", user.ID)
	return nil
}
