// ABOUTME: MCP server subcommand and tool registration
// ABOUTME: Starts the MCP server for Claude Desktop integration
package cli

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/harperreed/folk-mcp/folk"
	"github.com/harperreed/folk-mcp/handlers"
)

const serverVersion = "0.1.0"

// NewServer builds the MCP server with every Folk tool registered. The
// stdio and HTTP transports both serve this same server.
func NewServer(client *folk.Client, logger zerolog.Logger) *mcp.Server {
	peopleHandlers := handlers.NewPeopleHandlers(client, logger)
	companyHandlers := handlers.NewCompanyHandlers(client, logger)
	groupHandlers := handlers.NewGroupHandlers(client, logger)
	noteHandlers := handlers.NewNoteHandlers(client, logger)
	reminderHandlers := handlers.NewReminderHandlers(client, logger)
	interactionHandlers := handlers.NewInteractionHandlers(client, logger)
	userHandlers := handlers.NewUserHandlers(client, logger)
	dealHandlers := handlers.NewDealHandlers(client, logger)
	vizHandlers := handlers.NewVizHandlers(client, logger)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "folk",
		Version: serverVersion,
	}, nil)

	// Search tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_person",
		Description: "Search for people by name (first name, last name, or full name)",
	}, peopleHandlers.FindPerson)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_company",
		Description: "Search for companies by name",
	}, companyHandlers.FindCompany)

	// Detail tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_person_details",
		Description: "Get full details for a person. Call find_person first to get the person_id",
	}, peopleHandlers.GetPersonDetails)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_company_details",
		Description: "Get full details for a company. Call find_company first to get the company_id",
	}, companyHandlers.GetCompanyDetails)

	// Browse tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "browse_people",
		Description: "Page through all people when you don't have a name to search for",
	}, peopleHandlers.BrowsePeople)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "browse_companies",
		Description: "Page through all companies in the workspace",
	}, companyHandlers.BrowseCompanies)

	// Group tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_groups",
		Description: "List all groups in the Folk workspace",
	}, groupHandlers.ListGroups)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_people_in_group",
		Description: "Find people in a group, optionally filtered by custom fields like Status",
	}, groupHandlers.FindPeopleInGroup)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_companies_in_group",
		Description: "Find companies in a group, optionally filtered by custom fields like Status",
	}, groupHandlers.FindCompaniesInGroup)

	// Person mutations
	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_person",
		Description: "Add a new person to the CRM",
	}, peopleHandlers.AddPerson)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_person",
		Description: "Update an existing person's information",
	}, peopleHandlers.UpdatePerson)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_person",
		Description: "Delete a person from the CRM. This action cannot be undone",
	}, peopleHandlers.DeletePerson)

	// Company mutations
	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_company",
		Description: "Add a new company to the CRM",
	}, companyHandlers.AddCompany)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_company",
		Description: "Update an existing company's information",
	}, companyHandlers.UpdateCompany)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_company",
		Description: "Delete a company from the CRM. This action cannot be undone",
	}, companyHandlers.DeleteCompany)

	// Notes
	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_note",
		Description: "Add a note to a person or company",
	}, noteHandlers.AddNote)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_notes",
		Description: "Get the notes attached to a person or company",
	}, noteHandlers.GetNotes)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_note",
		Description: "Update a note's content or visibility",
	}, noteHandlers.UpdateNote)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_note",
		Description: "Delete a note. This action cannot be undone",
	}, noteHandlers.DeleteNote)

	// Reminders
	mcp.AddTool(server, &mcp.Tool{
		Name:        "set_reminder",
		Description: "Set a reminder about a person or company",
	}, reminderHandlers.SetReminder)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_reminders",
		Description: "List reminders, optionally scoped to one person or company",
	}, reminderHandlers.ListReminders)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_reminder",
		Description: "Delete a reminder. This action cannot be undone",
	}, reminderHandlers.DeleteReminder)

	// Interactions
	mcp.AddTool(server, &mcp.Tool{
		Name:        "log_interaction",
		Description: "Log an interaction (call, email, meeting) with a person or company",
	}, interactionHandlers.LogInteraction)

	// Deals
	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_deals",
		Description: "List the deals in a group's pipeline",
	}, dealHandlers.FindDeals)

	// Identity
	mcp.AddTool(server, &mcp.Tool{
		Name:        "whoami",
		Description: "Get information about the current authenticated user",
	}, userHandlers.Whoami)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_users",
		Description: "List the users in the Folk workspace",
	}, userHandlers.ListUsers)

	// Visualization
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_graph",
		Description: "Generate a GraphViz graph of groups and their members",
	}, vizHandlers.GenerateGraph)

	return server
}

// MCPCommand starts the MCP server on stdio
func MCPCommand(client *folk.Client, logger zerolog.Logger) error {
	logger.Info().Msg("starting folk mcp server on stdio")

	server := NewServer(client, logger)
	return server.Run(context.Background(), &mcp.StdioTransport{})
}
