// ABOUTME: Visualization CLI commands
// ABOUTME: Handles viz dashboard and graph generation commands
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/harperreed/folk-mcp/folk"
	"github.com/harperreed/folk-mcp/viz"
)

// VizGraphCommand generates the group membership graph.
func VizGraphCommand(client *folk.Client, args []string) error {
	fs := flag.NewFlagSet("viz graph", flag.ExitOnError)
	group := fs.String("group", "", "Graph a single group (default: all groups)")
	output := fs.String("o", "", "Output file (default: stdout)")
	format := fs.String("format", "dot", "Output format: dot or svg")
	_ = fs.Parse(args)

	generator := viz.NewGraphGenerator(client)
	rendered, err := generator.GenerateGroupGraph(context.Background(), *group, viz.Format(*format))
	if err != nil {
		return err
	}

	if *output != "" {
		return os.WriteFile(*output, []byte(rendered), 0644)
	}

	fmt.Println(rendered)
	return nil
}

// VizDashboardCommand prints the workspace overview dashboard.
func VizDashboardCommand(client *folk.Client, args []string) error {
	stats, err := viz.GenerateDashboardStats(context.Background(), client)
	if err != nil {
		return fmt.Errorf("failed to generate dashboard stats: %w", err)
	}

	fmt.Print(viz.RenderDashboard(stats))
	return nil
}
