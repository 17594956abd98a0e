package report

import (
	"fmt"

	"github.com/matsen/gexfviz/internal/attr"
	"github.com/matsen/gexfviz/internal/graph"
	"github.com/matsen/gexfviz/internal/layout"
	"github.com/matsen/gexfviz/internal/palette"
	"github.com/matsen/gexfviz/internal/table"
)

// DefaultLinkColor is used for edges without a colour attribute.
const DefaultLinkColor = "#aaa"

// DefaultTitle heads the page when none is configured.
const DefaultTitle = "Co-authorship network"

// BuildOptions controls how the report data is derived from the graph.
type BuildOptions struct {
	Title      string
	NodeRadius float64
	Palette    palette.Palette
	Fields     attr.Fields
	NodeOrder  table.Order
}

// DefaultBuildOptions returns the options used when nothing is configured.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		Title:      DefaultTitle,
		NodeRadius: 8,
		Palette:    palette.Default,
		Fields:     attr.DefaultFields(),
		NodeOrder:  table.OrderConnectionsDesc,
	}
}

// Build derives the report from a loaded graph and its layout: attributes are
// normalized, nodes coloured by connectivity and both tables built.
// g is not modified.
func Build(g *graph.Graph, pos layout.Positions, opts BuildOptions) (*Report, error) {
	if err := opts.Palette.Validate(); err != nil {
		return nil, fmt.Errorf("invalid palette: %w", err)
	}
	for _, n := range g.Nodes() {
		if _, ok := pos[n.ID]; !ok {
			return nil, fmt.Errorf("no position for node %s", n.ID)
		}
	}

	mapping := opts.Palette.MapNodes(g, opts.Fields.Connections)

	rows, err := table.BuildNodeRows(g, mapping.Colors, opts.Fields, table.OrderInput)
	if err != nil {
		return nil, err
	}

	nodes := make([]Node, 0, len(rows))
	for _, row := range rows {
		p := pos[row.ID]
		nodes = append(nodes, Node{
			ID:                     row.ID,
			Label:                  row.Name,
			X:                      p.X,
			Y:                      p.Y,
			R:                      opts.NodeRadius,
			Color:                  row.Color,
			TotalPublications:      row.TotalPublications,
			CoauthoredPublications: row.CoauthoredPublications,
			Connections:            row.Connections,
			CoauthorshipRatio:      row.CoauthorshipRatio,
		})
	}

	edges := g.Edges()
	links := make([]Link, 0, len(edges))
	for i := range edges {
		e := &edges[i]
		color := DefaultLinkColor
		if v, ok := e.Attr(opts.Fields.EdgeColor...); ok {
			if s, ok := v.(string); ok && s != "" {
				color = s
			}
		}
		links = append(links, Link{
			Source: e.Source,
			Target: e.Target,
			Weight: attr.EdgeWeight(e, opts.Fields.EdgeWeight),
			Color:  color,
		})
	}

	vertexTable, err := table.BuildNodeRows(g, mapping.Colors, opts.Fields, opts.NodeOrder)
	if err != nil {
		return nil, err
	}

	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}

	return &Report{
		Title:       title,
		Graph:       GraphData{Nodes: nodes, Links: links},
		VertexTable: vertexTable,
		EdgeTable:   table.BuildEdgeRows(g, opts.Fields),
		Palette:     opts.Palette,
		Legend:      opts.Palette.Legend(mapping.Lo, mapping.Hi),
	}, nil
}
