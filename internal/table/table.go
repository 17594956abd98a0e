// Package table derives the vertex and edge tables shown in the report.
package table

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/matsen/gexfviz/internal/attr"
	"github.com/matsen/gexfviz/internal/graph"
)

// Order selects how vertex rows are arranged.
type Order string

const (
	OrderInput           Order = "input"
	OrderConnectionsDesc Order = "connections"
)

// NodeRow is one line of the vertex table.
type NodeRow struct {
	ID                     string        `json:"id"`
	Name                   string        `json:"name"`
	TotalPublications      int64         `json:"total_publications"`
	CoauthoredPublications int64         `json:"coauthored_publications"`
	Connections            int64         `json:"connections"`
	CoauthorshipRatio      attr.Optional `json:"coauthorship_ratio"`
	Color                  string        `json:"color"`
}

// EdgeRow is one line of the edge table: a distinct undirected pair.
type EdgeRow struct {
	Edge            string  `json:"edge"`
	Weight          float64 `json:"weight"`
	SharedNeighbors int     `json:"shared_neighbors"`
}

// EdgeSeparator joins the two endpoint labels of an edge row.
const EdgeSeparator = ", "

// BuildNodeRows returns one row per node. colors maps node ids to their
// palette colour; nodes absent from it get an empty colour.
func BuildNodeRows(g *graph.Graph, colors map[string]string, fields attr.Fields, order Order) ([]NodeRow, error) {
	rows := make([]NodeRow, 0, g.Len())
	for _, n := range g.Nodes() {
		rows = append(rows, NodeRow{
			ID:                     n.ID,
			Name:                   n.DisplayLabel(),
			TotalPublications:      attr.NodeInt(n, fields.TotalPublications, 0),
			CoauthoredPublications: attr.NodeInt(n, fields.CoauthoredPublications, 0),
			Connections:            attr.Connectivity(g, n, fields.Connections),
			CoauthorshipRatio:      attr.NodeFloat(n, fields.CoauthorshipRatio),
			Color:                  colors[n.ID],
		})
	}

	switch order {
	case "", OrderInput:
	case OrderConnectionsDesc:
		slices.SortStableFunc(rows, func(a, b NodeRow) int {
			return cmp.Compare(b.Connections, a.Connections)
		})
	default:
		return nil, fmt.Errorf("unknown node order %q", order)
	}
	return rows, nil
}

// BuildEdgeRows returns one row per distinct undirected pair, sorted with
// SortEdgeRows. Parallel and reversed edges collapse onto the first one seen.
func BuildEdgeRows(g *graph.Graph, fields attr.Fields) []EdgeRow {
	pairs := g.UniquePairs()
	rows := make([]EdgeRow, 0, len(pairs))
	for _, p := range pairs {
		e := p.Edge
		rows = append(rows, EdgeRow{
			Edge:            display(g, p.Pair),
			Weight:          attr.EdgeWeight(&e, fields.EdgeWeight),
			SharedNeighbors: g.SharedNeighbors(p.Pair),
		})
	}
	SortEdgeRows(rows)
	return rows
}

// SortEdgeRows orders rows by weight descending, then shared neighbours
// descending, then display string ascending. Equal rows keep their order.
func SortEdgeRows(rows []EdgeRow) {
	slices.SortStableFunc(rows, func(a, b EdgeRow) int {
		if c := cmp.Compare(b.Weight, a.Weight); c != 0 {
			return c
		}
		if c := cmp.Compare(b.SharedNeighbors, a.SharedNeighbors); c != 0 {
			return c
		}
		return strings.Compare(a.Edge, b.Edge)
	})
}

func display(g *graph.Graph, p graph.Pair) string {
	labels := []string{label(g, p.A), label(g, p.B)}
	slices.Sort(labels)
	return strings.Join(labels, EdgeSeparator)
}

func label(g *graph.Graph, id string) string {
	if n, ok := g.Node(id); ok {
		return n.DisplayLabel()
	}
	return id
}
