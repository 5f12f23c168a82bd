// ABOUTME: Group CLI commands
// ABOUTME: Lists groups and prints the members of one group by name
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/harperreed/folk-mcp/folk"
)

// ListGroupsCommand lists the workspace groups.
func ListGroupsCommand(client *folk.Client, args []string) error {
	fs := flag.NewFlagSet("groups", flag.ExitOnError)
	_ = fs.Parse(args)

	page, err := client.ListGroups(context.Background(), folk.ListOptions{Limit: 100})
	if err != nil {
		return fmt.Errorf("failed to list groups: %w", err)
	}

	if len(page.Items) == 0 {
		fmt.Println("No groups found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tID")
	_, _ = fmt.Fprintln(w, "----\t--")
	for _, g := range page.Items {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", g.Name, g.ID)
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d group(s)\n", len(page.Items))
	return nil
}

// GroupMembersCommand prints the people in one group.
func GroupMembersCommand(client *folk.Client, args []string) error {
	fs := flag.NewFlagSet("group-members", flag.ExitOnError)
	group := fs.String("group", "", "Group name (required)")
	limit := fs.Int("limit", 50, "Maximum results")
	_ = fs.Parse(args)

	if *group == "" {
		return fmt.Errorf("--group is required")
	}

	ctx := context.Background()
	res, err := client.ResolveGroup(ctx, *group)
	if err != nil {
		return fmt.Errorf("failed to resolve group: %w", err)
	}
	if !res.Found() {
		if len(res.Suggestions) > 0 {
			fmt.Println("Available groups:")
			for _, name := range res.Suggestions {
				fmt.Printf("  - %s\n", name)
			}
		}
		return fmt.Errorf("group not found: %s", *group)
	}

	page, err := client.ListPeople(ctx, folk.ListOptions{
		Limit:   *limit,
		Filters: folk.GroupFilter(res.Group.ID),
	})
	if err != nil {
		return fmt.Errorf("failed to list group members: %w", err)
	}

	fmt.Printf("Members of %s:\n\n", res.Group.Name)
	printPeople(page.Items)
	return nil
}
