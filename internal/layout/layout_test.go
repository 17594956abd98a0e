package layout

import (
	"fmt"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/matsen/gexfviz/internal/graph"
)

func newGraph(t testing.TB, n int, edges [][2]int) *graph.Graph {
	t.Helper()
	g := graph.New()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddNode(graph.Node{ID: fmt.Sprintf("n%d", i)}))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(graph.Edge{
			Source: fmt.Sprintf("n%d", e[0]),
			Target: fmt.Sprintf("n%d", e[1]),
		}))
	}
	return g
}

func maxAbs(pos Positions) float64 {
	m := 0.0
	for _, p := range pos {
		m = math.Max(m, math.Max(math.Abs(p.X), math.Abs(p.Y)))
	}
	return m
}

func TestCompute_EmptyAndSingleton(t *testing.T) {
	for _, algo := range ValidAlgorithms {
		t.Run(algo, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Algorithm = algo

			pos, err := Compute(graph.New(), opts)
			require.NoError(t, err)
			assert.Empty(t, pos)

			pos, err = Compute(newGraph(t, 1, nil), opts)
			require.NoError(t, err)
			assert.Equal(t, Positions{"n0": r2.Vec{}}, pos)
		})
	}
}

func TestCompute_UnknownAlgorithm(t *testing.T) {
	opts := DefaultOptions()
	opts.Algorithm = "hyperbolic"
	_, err := Compute(newGraph(t, 3, [][2]int{{0, 1}}), opts)
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestCompute_CoversEveryNodeWithFiniteScaledCoordinates(t *testing.T) {
	// Two triangles, an isolated node and a self-loop.
	g := newGraph(t, 7, [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}, {6, 6}})

	for _, algo := range ValidAlgorithms {
		t.Run(algo, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Algorithm = algo
			opts.Scale = 0.7

			pos, err := Compute(g, opts)
			require.NoError(t, err)
			require.Len(t, pos, g.Len())
			for _, n := range g.Nodes() {
				p, ok := pos[n.ID]
				require.True(t, ok, "missing position for %s", n.ID)
				assert.False(t, math.IsNaN(p.X) || math.IsInf(p.X, 0), "x of %s", n.ID)
				assert.False(t, math.IsNaN(p.Y) || math.IsInf(p.Y, 0), "y of %s", n.ID)
			}
			assert.InDelta(t, 0.7, maxAbs(pos), 1e-9)
		})
	}
}

func TestCompute_Deterministic(t *testing.T) {
	g := newGraph(t, 8, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}, {4, 5}, {5, 6}, {6, 7}})

	for _, algo := range ValidAlgorithms {
		t.Run(algo, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Algorithm = algo
			first, err := Compute(g, opts)
			require.NoError(t, err)
			second, err := Compute(g, opts)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestKamadaKawai_PathKeepsEndpointsApart(t *testing.T) {
	g := newGraph(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	pos, err := Compute(g, DefaultOptions())
	require.NoError(t, err)

	ends := r2.Norm(r2.Sub(pos["n0"], pos["n4"]))
	for _, pair := range [][2]string{{"n0", "n1"}, {"n1", "n2"}, {"n2", "n3"}, {"n3", "n4"}} {
		step := r2.Norm(r2.Sub(pos[pair[0]], pos[pair[1]]))
		assert.Less(t, step, ends, "neighbours %v should be closer than the path ends", pair)
	}
}

func TestKamadaKawai_SeparatesComponents(t *testing.T) {
	// Two dense clusters with no edge between them.
	g := newGraph(t, 6, [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}})
	pos, err := Compute(g, DefaultOptions())
	require.NoError(t, err)

	within := r2.Norm(r2.Sub(pos["n0"], pos["n1"]))
	across := r2.Norm(r2.Sub(pos["n0"], pos["n3"]))
	assert.Greater(t, across, within)
}

func TestComponents(t *testing.T) {
	assert.Equal(t, 0, Components(graph.New()))
	assert.Equal(t, 3, Components(newGraph(t, 6, [][2]int{{0, 1}, {2, 3}, {3, 4}})))
}

func TestRescale(t *testing.T) {
	coords := []r2.Vec{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 2, Y: 4}}
	rescale(coords, 2)
	assert.InDelta(t, 2.0, math.Max(math.Abs(coords[2].Y), math.Abs(coords[0].X)), 1e-12)

	same := []r2.Vec{{X: 5, Y: 5}, {X: 5, Y: 5}}
	rescale(same, 1)
	assert.Equal(t, []r2.Vec{{}, {}}, same)
}

func TestLayoutProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 25
	parameters.Rng.Seed(7)
	properties := gopter.NewProperties(parameters)

	edgesFor := func(n int, raw []int) [][2]int {
		var edges [][2]int
		for i := 0; i+1 < len(raw); i += 2 {
			edges = append(edges, [2]int{raw[i] % n, raw[i+1] % n})
		}
		return edges
	}

	properties.Property("every node gets a finite position, reproducibly", prop.ForAll(
		func(n int, raw []int, spring bool) bool {
			g := newGraph(t, n, edgesFor(n, raw))
			opts := DefaultOptions()
			opts.Iterations = 60
			if spring {
				opts.Algorithm = Spring
			}
			first, err := Compute(g, opts)
			if err != nil || len(first) != n {
				return false
			}
			for _, p := range first {
				if !finite(p.X) || !finite(p.Y) {
					return false
				}
			}
			second, err := Compute(g, opts)
			if err != nil {
				return false
			}
			for id, p := range first {
				if second[id] != p {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 12),
		gen.SliceOf(gen.IntRange(0, 100)),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
