package table

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matsen/gexfviz/internal/attr"
	"github.com/matsen/gexfviz/internal/graph"
)

type testEdge struct {
	u, v   string
	weight graph.Value
}

func build(t testing.TB, nodes map[string]string, ids []string, edges []testEdge) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, id := range ids {
		require.NoError(t, g.AddNode(graph.Node{ID: id, Label: nodes[id]}))
	}
	for _, e := range edges {
		attrs := map[string]graph.Value{}
		if e.weight != nil {
			attrs["weight"] = e.weight
		}
		require.NoError(t, g.AddEdge(graph.Edge{Source: e.u, Target: e.v, Attrs: attrs}))
	}
	return g
}

func TestBuildEdgeRows_CollapsesPairs(t *testing.T) {
	g := build(t, nil, []string{"A", "B", "C"}, []testEdge{
		{"A", "B", "4"}, {"B", "A", "9"}, {"A", "C", nil},
	})

	rows := BuildEdgeRows(g, attr.DefaultFields())
	require.Len(t, rows, 2)
	assert.Equal(t, EdgeRow{Edge: "A, B", Weight: 4, SharedNeighbors: 0}, rows[0])
	assert.Equal(t, EdgeRow{Edge: "A, C", Weight: 1, SharedNeighbors: 0}, rows[1])
}

func TestBuildEdgeRows_Weights(t *testing.T) {
	tests := []struct {
		name   string
		weight graph.Value
		want   float64
	}{
		{"missing", nil, 1},
		{"zero", "0", 1},
		{"zero float", 0.0, 1},
		{"comma decimal", "3,5", 3.5},
		{"dot decimal", "3.5", 3.5},
		{"numeric", 2.25, 2.25},
		{"garbage", "heavy", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := build(t, nil, []string{"u", "v"}, []testEdge{{"u", "v", tt.weight}})
			rows := BuildEdgeRows(g, attr.DefaultFields())
			require.Len(t, rows, 1)
			if rows[0].Weight != tt.want {
				t.Errorf("Weight = %v, want %v", rows[0].Weight, tt.want)
			}
		})
	}
}

func TestBuildEdgeRows_DisplayUsesSortedLabels(t *testing.T) {
	labels := map[string]string{"1": "Zélia", "2": "Artur"}
	g := build(t, labels, []string{"1", "2", "3"}, []testEdge{{"1", "2", nil}, {"3", "1", nil}})

	rows := BuildEdgeRows(g, attr.DefaultFields())
	require.Len(t, rows, 2)
	// "3" has no label and falls back to its id.
	assert.Equal(t, "3, Zélia", rows[0].Edge)
	assert.Equal(t, "Artur, Zélia", rows[1].Edge)
}

func TestBuildEdgeRows_SharedNeighborsExcludeEndpoints(t *testing.T) {
	// Square a-b-c-d plus diagonal a-c and self-loop on a.
	g := build(t, nil, []string{"a", "b", "c", "d"}, []testEdge{
		{"a", "b", nil}, {"b", "c", nil}, {"c", "d", nil}, {"d", "a", nil}, {"a", "c", nil}, {"a", "a", nil},
	})
	rows := BuildEdgeRows(g, attr.DefaultFields())

	shared := map[string]int{}
	for _, r := range rows {
		shared[r.Edge] = r.SharedNeighbors
	}
	assert.Equal(t, 2, shared["a, c"])
	assert.Equal(t, 1, shared["a, b"])
	// The self-loop pair counts every other neighbour of a.
	assert.Equal(t, 3, shared["a, a"])
}

func TestSortEdgeRows(t *testing.T) {
	rows := []EdgeRow{
		{Edge: "A, B", Weight: 5, SharedNeighbors: 2},
		{Edge: "A, C", Weight: 5, SharedNeighbors: 3},
		{Edge: "B, C", Weight: 7, SharedNeighbors: 0},
		{Edge: "A, D", Weight: 5, SharedNeighbors: 2},
	}
	SortEdgeRows(rows)

	want := []string{"B, C", "A, C", "A, B", "A, D"}
	for i, r := range rows {
		if r.Edge != want[i] {
			t.Errorf("rows[%d].Edge = %q, want %q", i, r.Edge, want[i])
		}
	}
}

func TestBuildNodeRows(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode(graph.Node{ID: "a", Label: "Ana", Attrs: map[string]graph.Value{
		"Publicações_totais":             int64(12),
		"Publicações_em_coautoria":       "5",
		"Conexões":                       "abc",
		"Proporção_da_coautoria_Fiocruz": "41,5",
	}}))
	require.NoError(t, g.AddNode(graph.Node{ID: "b", Attrs: map[string]graph.Value{"connections": 10}}))
	require.NoError(t, g.AddNode(graph.Node{ID: "c"}))
	require.NoError(t, g.AddEdge(graph.Edge{Source: "a", Target: "c"}))

	colors := map[string]string{"a": "#5e4fa2", "b": "#9e0142"}
	rows, err := BuildNodeRows(g, colors, attr.DefaultFields(), OrderInput)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, NodeRow{
		ID:                     "a",
		Name:                   "Ana",
		TotalPublications:      12,
		CoauthoredPublications: 5,
		Connections:            1,
		CoauthorshipRatio:      attr.Some(41.5),
		Color:                  "#5e4fa2",
	}, rows[0])
	assert.Equal(t, int64(10), rows[1].Connections)
	assert.Equal(t, "c", rows[2].Name)
	assert.Equal(t, int64(0), rows[2].TotalPublications)
	assert.False(t, rows[2].CoauthorshipRatio.Valid)
	assert.Equal(t, "", rows[2].Color)
}

func TestBuildNodeRows_Order(t *testing.T) {
	g := build(t, nil, []string{"x", "y", "z", "w"}, []testEdge{{"y", "z", nil}, {"y", "w", nil}})

	rows, err := BuildNodeRows(g, nil, attr.DefaultFields(), OrderConnectionsDesc)
	require.NoError(t, err)
	var ids []string
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	// Ties keep input order.
	assert.Equal(t, []string{"y", "z", "w", "x"}, ids)

	_, err = BuildNodeRows(g, nil, attr.DefaultFields(), Order("random"))
	assert.Error(t, err)
}

func TestEdgeRowProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(42)
	properties := gopter.NewProperties(parameters)

	graphFrom := func(raw []int) *graph.Graph {
		g := graph.New()
		for i := 0; i < 6; i++ {
			_ = g.AddNode(graph.Node{ID: fmt.Sprintf("n%d", i)})
		}
		for i := 0; i+2 < len(raw); i += 3 {
			_ = g.AddEdge(graph.Edge{
				Source: fmt.Sprintf("n%d", raw[i]%6),
				Target: fmt.Sprintf("n%d", raw[i+1]%6),
				Attrs:  map[string]graph.Value{"weight": int64(raw[i+2] % 4)},
			})
		}
		return g
	}

	properties.Property("one row per unordered pair", prop.ForAll(
		func(raw []int) bool {
			g := graphFrom(raw)
			pairs := map[graph.Pair]bool{}
			for _, e := range g.Edges() {
				pairs[graph.PairKey(e.Source, e.Target)] = true
			}
			return len(BuildEdgeRows(g, attr.DefaultFields())) == len(pairs)
		},
		gen.SliceOf(gen.IntRange(0, 50)),
	))

	properties.Property("rows are sorted and weights are positive", prop.ForAll(
		func(raw []int) bool {
			rows := BuildEdgeRows(graphFrom(raw), attr.DefaultFields())
			for i, r := range rows {
				if r.Weight <= 0 {
					return false
				}
				if i == 0 {
					continue
				}
				prev := rows[i-1]
				switch {
				case prev.Weight != r.Weight:
					if prev.Weight < r.Weight {
						return false
					}
				case prev.SharedNeighbors != r.SharedNeighbors:
					if prev.SharedNeighbors < r.SharedNeighbors {
						return false
					}
				case prev.Edge > r.Edge:
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 50)),
	))

	properties.TestingRun(t)
}
