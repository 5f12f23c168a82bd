// ABOUTME: People CLI commands
// ABOUTME: Human-friendly commands for searching and adding people
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/harperreed/folk-mcp/folk"
)

// FindPersonCommand searches people by name.
func FindPersonCommand(client *folk.Client, args []string) error {
	fs := flag.NewFlagSet("find-person", flag.ExitOnError)
	name := fs.String("name", "", "Name to search for (required)")
	limit := fs.Int("limit", 10, "Maximum results")
	_ = fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}

	page, err := client.ListPeople(context.Background(), folk.ListOptions{
		Limit:   *limit,
		Filters: folk.Filters{"fullName": folk.Op("like", *name)},
	})
	if err != nil {
		return fmt.Errorf("failed to find people: %w", err)
	}

	printPeople(page.Items)
	return nil
}

// ListPeopleCommand lists people in the workspace.
func ListPeopleCommand(client *folk.Client, args []string) error {
	fs := flag.NewFlagSet("list-people", flag.ExitOnError)
	limit := fs.Int("limit", 50, "Maximum results")
	_ = fs.Parse(args)

	page, err := client.ListPeople(context.Background(), folk.ListOptions{Limit: *limit})
	if err != nil {
		return fmt.Errorf("failed to list people: %w", err)
	}

	printPeople(page.Items)
	if page.HasMore() {
		fmt.Println("More available; raise --limit to see them")
	}
	return nil
}

func printPeople(people []folk.Person) {
	if len(people) == 0 {
		fmt.Println("No people found")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tEMAIL\tJOB TITLE\tID")
	_, _ = fmt.Fprintln(w, "----\t-----\t---------\t--")

	for i := range people {
		p := &people[i]
		email := p.PrimaryEmail()
		if email == "" {
			email = "-"
		}
		title := p.JobTitle
		if title == "" {
			title = "-"
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.DisplayName(), email, title, p.ID)
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d person(s)\n", len(people))
}

// AddPersonCommand adds a new person.
func AddPersonCommand(client *folk.Client, args []string) error {
	fs := flag.NewFlagSet("add-person", flag.ExitOnError)
	first := fs.String("first", "", "First name (required)")
	last := fs.String("last", "", "Last name")
	email := fs.String("email", "", "Email address")
	phone := fs.String("phone", "", "Phone number")
	title := fs.String("title", "", "Job title")
	notes := fs.String("notes", "", "Notes about the person")
	_ = fs.Parse(args)

	if *first == "" {
		return fmt.Errorf("--first is required")
	}

	req := folk.CreatePersonRequest{
		FirstName:   *first,
		LastName:    *last,
		JobTitle:    *title,
		Description: *notes,
	}
	if *email != "" {
		req.Emails = []string{*email}
	}
	if *phone != "" {
		req.Phones = []string{*phone}
	}

	person, err := client.CreatePerson(context.Background(), req)
	if err != nil {
		return fmt.Errorf("failed to create person: %w", err)
	}

	fmt.Printf("✓ Person created: %s (ID: %s)\n", person.DisplayName(), person.ID)
	if *email != "" {
		fmt.Printf("  Email: %s\n", *email)
	}
	if *phone != "" {
		fmt.Printf("  Phone: %s\n", *phone)
	}
	return nil
}
