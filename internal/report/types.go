// Package report assembles the co-authorship report and renders it as a
// self-contained HTML page, a JSON document or an ECharts page.
package report

import (
	"github.com/matsen/gexfviz/internal/attr"
	"github.com/matsen/gexfviz/internal/palette"
	"github.com/matsen/gexfviz/internal/table"
)

// Report contains all data needed to render the page.
type Report struct {
	Title       string                `json:"title"`
	Graph       GraphData             `json:"graph"`
	VertexTable []table.NodeRow       `json:"vertex_table"`
	EdgeTable   []table.EdgeRow       `json:"edge_table"`
	Palette     palette.Palette       `json:"palette"`
	Legend      []palette.LegendEntry `json:"legend"`
}

// GraphData is the drawable graph: positioned nodes and every input edge.
type GraphData struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// Node is a positioned, coloured vertex.
type Node struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`

	// Pinned position used by the viewer while dragging; always null on output.
	FX *float64 `json:"fx"`
	FY *float64 `json:"fy"`

	R     float64 `json:"r"`
	Color string  `json:"color"`

	TotalPublications      int64         `json:"total_publications"`
	CoauthoredPublications int64         `json:"coauthored_publications"`
	Connections            int64         `json:"connections"`
	CoauthorshipRatio      attr.Optional `json:"coauthorship_ratio"`
}

// Link is one input edge. Parallel edges each produce a link.
type Link struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"`
	Color  string  `json:"color"`
}

// IsEmpty returns true if the graph has no nodes.
func (g *GraphData) IsEmpty() bool {
	return len(g.Nodes) == 0
}
