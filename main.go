// ABOUTME: Entry point for the Folk MCP server and CLI
// ABOUTME: Routes to MCP server, HTTP serve mode, CRM commands, browse TUI, or viz
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/harperreed/folk-mcp/cli"
	"github.com/harperreed/folk-mcp/config"
	"github.com/harperreed/folk-mcp/folk"
	"github.com/harperreed/folk-mcp/tui"
)

const version = "0.1.0"

func main() {
	// Global flags
	showVersion := flag.Bool("version", false, "Show version and exit")
	debug := flag.Bool("debug", false, "Enable debug logging")

	// Parse global flags but don't fail on unknown (for subcommands)
	_ = flag.CommandLine.Parse(os.Args[1:])

	// Handle version flag
	if *showVersion {
		fmt.Printf("folk-mcp version %s\n", version)
		os.Exit(0)
	}

	// Get remaining args after flags
	args := flag.Args()

	// If no command specified, show usage
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	// .env is optional; real config lives in the XDG file and environment
	_ = godotenv.Load()

	logger := newLogger(*debug)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// A missing API key is not fatal here: the client reports ErrNoAPIKey
	// on first use so the MCP server can still start and list tools.
	client := folk.New(folk.Options{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout(),
		Logger:  logger,
	})

	// Route to top-level command
	command := args[0]
	commandArgs := args[1:]

	switch command {
	case "mcp":
		if err := cli.MCPCommand(client, logger); err != nil {
			log.Fatalf("MCP server failed: %v", err)
		}

	case "serve":
		if err := cli.ServeCommand(client, logger, cfg.HTTP); err != nil {
			log.Fatalf("HTTP server failed: %v", err)
		}

	case "crm":
		if len(commandArgs) == 0 {
			fmt.Println("Error: crm requires a subcommand")
			printUsage()
			os.Exit(1)
		}

		crmCommand := commandArgs[0]
		crmArgs := commandArgs[1:]

		switch crmCommand {
		// People commands
		case "find-person":
			if err := cli.FindPersonCommand(client, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "list-people":
			if err := cli.ListPeopleCommand(client, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "add-person":
			if err := cli.AddPersonCommand(client, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}

		// Company commands
		case "find-company":
			if err := cli.FindCompanyCommand(client, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "list-companies":
			if err := cli.ListCompaniesCommand(client, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "add-company":
			if err := cli.AddCompanyCommand(client, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}

		// Group commands
		case "groups":
			if err := cli.ListGroupsCommand(client, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "group-members":
			if err := cli.GroupMembersCommand(client, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}

		// Identity
		case "whoami":
			if err := cli.WhoamiCommand(client, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}

		default:
			fmt.Printf("Unknown crm command: %s\n\n", crmCommand)
			printUsage()
			os.Exit(1)
		}

	case "browse":
		if err := tui.Run(client); err != nil {
			log.Fatalf("Browse failed: %v", err)
		}

	case "viz":
		if len(commandArgs) == 0 {
			fmt.Println("Error: viz requires a subcommand")
			printUsage()
			os.Exit(1)
		}

		vizCommand := commandArgs[0]
		vizArgs := commandArgs[1:]

		switch vizCommand {
		case "graph":
			if err := cli.VizGraphCommand(client, vizArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "dashboard":
			if err := cli.VizDashboardCommand(client, vizArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		default:
			fmt.Printf("Unknown viz command: %s\n\n", vizCommand)
			printUsage()
			os.Exit(1)
		}

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

// newLogger builds the root logger. Logs go to stderr; stdout carries MCP
// stdio framing and CLI output.
func newLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}

func printUsage() {
	fmt.Printf(`folk-mcp v%s - Folk CRM tools over MCP

USAGE:
  folk-mcp [global flags] <command> [subcommand] [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --debug                Enable debug logging (stderr)

COMMANDS:
  mcp                    Start MCP server on stdio
  serve                  Start MCP server over streamable HTTP
  crm                    CRM commands against the Folk API
  browse                 Interactive workspace browser
  viz                    Visualization commands

MCP SERVER:
  folk-mcp mcp           Start MCP server (for Claude Desktop integration)
  folk-mcp serve         Serve MCP over HTTP on MCP_HTTP_ADDR (default :8000)

CRM COMMANDS:
  folk-mcp crm find-person     Search people by name
    --name <name>                Name to search for (required)
    --limit <n>                  Max results (default: 10)

  folk-mcp crm list-people     List people
    --limit <n>                  Max results (default: 50)

  folk-mcp crm add-person      Add a new person
    --first <name>               First name (required)
    --last <name>                Last name
    --email <email>              Email address
    --phone <phone>              Phone number
    --title <title>              Job title
    --notes <notes>              Notes about the person

  folk-mcp crm find-company    Search companies by name
    --name <name>                Name to search for (required)
    --limit <n>                  Max results (default: 10)

  folk-mcp crm list-companies  List companies
    --limit <n>                  Max results (default: 50)

  folk-mcp crm add-company     Add a new company
    --name <name>                Company name (required)
    --email <email>              Email address
    --url <url>                  Website URL
    --industry <industry>        Industry sector
    --notes <notes>              Notes about the company

  folk-mcp crm groups          List groups

  folk-mcp crm group-members   List people in a group
    --group <name>               Group name (required)
    --limit <n>                  Max results (default: 50)

  folk-mcp crm whoami          Show the authenticated user

BROWSE:
  folk-mcp browse              Full-screen browser for people, companies, and groups

VIZ COMMANDS:
  folk-mcp viz graph           Export group membership as Graphviz
    --group <name>               Graph a single group (default: all groups)
    --format <fmt>               Output format: dot or svg (default: dot)
    -o <file>                    Output file (default: stdout)

  folk-mcp viz dashboard       Print a workspace overview

ENVIRONMENT:
  FOLK_API_KEY                 Folk API key (required for all API calls)
  FOLK_API_URL                 API root override
  FOLK_TIMEOUT_SECS            Request timeout in seconds (default: 30)
  MCP_HTTP_ADDR                serve listen address (default: :8000)
  MCP_HTTP_REQUIRE_AUTH        serve bearer auth toggle
  MCP_HTTP_AUTH_TOKEN          serve bearer token
  MCP_HTTP_RATE_LIMIT_PER_MIN  serve rate limit (default: 120, 0 disables)

EXAMPLES:
  # Start MCP server for Claude Desktop
  folk-mcp mcp

  # Find a person
  folk-mcp crm find-person --name "Ada"

  # Add a company
  folk-mcp crm add-company --name "Acme Corp" --url "https://acme.com"

  # Everyone in the Investors group
  folk-mcp crm group-members --group "Investors"

  # Export the workspace graph
  folk-mcp viz graph -o workspace.dot

`, version)
}
