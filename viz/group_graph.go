// ABOUTME: Group membership graph generation over live workspace data
// ABOUTME: Groups render as boxes, people as ellipses, edges run group to member
package viz

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/harperreed/folk-mcp/folk"
)

// memberFetchLimit bounds how many members one group contributes.
const memberFetchLimit = 100

// Format selects the graph rendering output.
type Format string

const (
	FormatDOT Format = "dot"
	FormatSVG Format = "svg"
)

func (f Format) graphvizFormat() (graphviz.Format, error) {
	switch f {
	case FormatDOT, "":
		return graphviz.XDOT, nil
	case FormatSVG:
		return graphviz.SVG, nil
	default:
		return "", fmt.Errorf("unknown format: %s (valid formats: dot, svg)", f)
	}
}

type GraphGenerator struct {
	client *folk.Client
}

func NewGraphGenerator(client *folk.Client) *GraphGenerator {
	return &GraphGenerator{client: client}
}

// GenerateGroupGraph renders the membership graph for one group, or for
// every group when groupName is empty. People in several groups appear
// once with an edge from each group.
func (g *GraphGenerator) GenerateGroupGraph(ctx context.Context, groupName string, format Format) (string, error) {
	gvFormat, err := format.graphvizFormat()
	if err != nil {
		return "", err
	}

	groups, err := g.selectGroups(ctx, groupName)
	if err != nil {
		return "", err
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create graphviz instance: %w", err)
	}
	defer gv.Close()

	graph, err := gv.Graph()
	if err != nil {
		return "", fmt.Errorf("failed to create graph: %w", err)
	}
	defer graph.Close()

	graph.SetLayout("neato")
	graph.SetLabel("Folk Workspace")

	personNodes := make(map[string]*cgraph.Node)
	for _, grp := range groups {
		groupNode, err := graph.CreateNodeByName("group_" + grp.ID)
		if err != nil {
			return "", fmt.Errorf("failed to create group node: %w", err)
		}
		groupNode.SetLabel(grp.Name)
		groupNode.SetShape("box")
		groupNode.SetStyle("filled")
		groupNode.SetFillColor("lightblue")

		page, err := g.client.ListPeople(ctx, folk.ListOptions{
			Limit:   memberFetchLimit,
			Filters: folk.GroupFilter(grp.ID),
		})
		if err != nil {
			return "", fmt.Errorf("failed to fetch members of %s: %w", grp.Name, err)
		}

		for i := range page.Items {
			p := &page.Items[i]
			node, ok := personNodes[p.ID]
			if !ok {
				node, err = graph.CreateNodeByName("person_" + p.ID)
				if err != nil {
					return "", fmt.Errorf("failed to create person node: %w", err)
				}
				node.SetLabel(p.DisplayName())
				node.SetShape("ellipse")
				node.SetStyle("filled")
				node.SetFillColor("lightgreen")
				personNodes[p.ID] = node
			}
			if _, err := graph.CreateEdgeByName("member", groupNode, node); err != nil {
				return "", fmt.Errorf("failed to create edge: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, gvFormat, &buf); err != nil {
		return "", fmt.Errorf("failed to render graph: %w", err)
	}

	return buf.String(), nil
}

func (g *GraphGenerator) selectGroups(ctx context.Context, groupName string) ([]folk.Group, error) {
	if groupName == "" {
		page, err := g.client.ListGroups(ctx, folk.ListOptions{Limit: 100})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch groups: %w", err)
		}
		return page.Items, nil
	}

	res, err := g.client.ResolveGroup(ctx, groupName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve group: %w", err)
	}
	if !res.Found() {
		return nil, fmt.Errorf("group %q not found", groupName)
	}
	return []folk.Group{*res.Group}, nil
}
