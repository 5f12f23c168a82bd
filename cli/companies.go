// ABOUTME: Company CLI commands
// ABOUTME: Human-friendly commands for searching and adding companies
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/harperreed/folk-mcp/folk"
)

// FindCompanyCommand searches companies by name.
func FindCompanyCommand(client *folk.Client, args []string) error {
	fs := flag.NewFlagSet("find-company", flag.ExitOnError)
	name := fs.String("name", "", "Company name to search for (required)")
	limit := fs.Int("limit", 10, "Maximum results")
	_ = fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}

	page, err := client.ListCompanies(context.Background(), folk.ListOptions{
		Limit:   *limit,
		Filters: folk.Filters{"name": folk.Op("like", *name)},
	})
	if err != nil {
		return fmt.Errorf("failed to find companies: %w", err)
	}

	printCompanies(page.Items)
	return nil
}

// ListCompaniesCommand lists companies in the workspace.
func ListCompaniesCommand(client *folk.Client, args []string) error {
	fs := flag.NewFlagSet("list-companies", flag.ExitOnError)
	limit := fs.Int("limit", 50, "Maximum results")
	_ = fs.Parse(args)

	page, err := client.ListCompanies(context.Background(), folk.ListOptions{Limit: *limit})
	if err != nil {
		return fmt.Errorf("failed to list companies: %w", err)
	}

	printCompanies(page.Items)
	if page.HasMore() {
		fmt.Println("More available; raise --limit to see them")
	}
	return nil
}

func printCompanies(companies []folk.Company) {
	if len(companies) == 0 {
		fmt.Println("No companies found")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tINDUSTRY\tEMAIL\tID")
	_, _ = fmt.Fprintln(w, "----\t--------\t-----\t--")

	for i := range companies {
		c := &companies[i]
		industry := c.Industry
		if industry == "" {
			industry = "-"
		}
		email := c.PrimaryEmail()
		if email == "" {
			email = "-"
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.DisplayName(), industry, email, c.ID)
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d company(ies)\n", len(companies))
}

// AddCompanyCommand adds a new company.
func AddCompanyCommand(client *folk.Client, args []string) error {
	fs := flag.NewFlagSet("add-company", flag.ExitOnError)
	name := fs.String("name", "", "Company name (required)")
	email := fs.String("email", "", "Email address")
	url := fs.String("url", "", "Website URL")
	industry := fs.String("industry", "", "Industry sector")
	notes := fs.String("notes", "", "Notes about the company")
	_ = fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}

	req := folk.CreateCompanyRequest{
		Name:        *name,
		Industry:    *industry,
		Description: *notes,
	}
	if *email != "" {
		req.Emails = []string{*email}
	}
	if *url != "" {
		req.URLs = []string{*url}
	}

	company, err := client.CreateCompany(context.Background(), req)
	if err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}

	fmt.Printf("✓ Company created: %s (ID: %s)\n", company.DisplayName(), company.ID)
	if *url != "" {
		fmt.Printf("  URL: %s\n", *url)
	}
	return nil
}
