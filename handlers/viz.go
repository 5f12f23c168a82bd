// ABOUTME: GraphViz visualization MCP handler
// ABOUTME: Provides generate_graph tool for agents
package handlers

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/harperreed/folk-mcp/folk"
	"github.com/harperreed/folk-mcp/viz"
)

type VizHandlers struct {
	client *folk.Client
	logger zerolog.Logger
}

func NewVizHandlers(client *folk.Client, logger zerolog.Logger) *VizHandlers {
	return &VizHandlers{client: client, logger: logger}
}

type GenerateGraphInput struct {
	GroupName string `json:"group_name,omitempty" jsonschema:"Group to graph (omit for the whole workspace)"`
}

type GenerateGraphOutput struct {
	DOTSource string `json:"dot_source"`
	NodeCount int    `json:"node_count"`
	EdgeCount int    `json:"edge_count"`
}

// GenerateGraph renders the group membership graph as DOT source the agent
// can hand to graphviz or a diagram tool.
func (h *VizHandlers) GenerateGraph(ctx context.Context, request *mcp.CallToolRequest, input GenerateGraphInput) (*mcp.CallToolResult, GenerateGraphOutput, error) {
	generator := viz.NewGraphGenerator(h.client)
	dot, err := generator.GenerateGroupGraph(ctx, input.GroupName, viz.FormatDOT)
	if err != nil {
		reportAPIError(h.logger, "generate_graph", err)
		return nil, GenerateGraphOutput{}, err
	}

	// Count nodes and edges for stats
	nodeCount := strings.Count(dot, "[label=")
	edgeCount := strings.Count(dot, "->")

	return nil, GenerateGraphOutput{
		DOTSource: dot,
		NodeCount: nodeCount,
		EdgeCount: edgeCount,
	}, nil
}
