// Package layout computes deterministic 2D positions for graph nodes.
package layout

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/matsen/gexfviz/internal/graph"
)

// Algorithm names.
const (
	KamadaKawai = "kamada-kawai"
	Spring      = "spring"
	Circular    = "circular"
)

// ValidAlgorithms lists the supported algorithm names.
var ValidAlgorithms = []string{KamadaKawai, Spring, Circular}

// Errors.
var (
	ErrUnknownAlgorithm = errors.New("unknown layout algorithm")
	ErrNonFinite        = errors.New("layout produced a non-finite coordinate")
)

// Options configures a layout run.
type Options struct {
	Algorithm  string  `yaml:"algorithm" json:"algorithm" validate:"omitempty,oneof=kamada-kawai spring circular"`
	Seed       int64   `yaml:"seed" json:"seed"`
	K          float64 `yaml:"k" json:"k" validate:"gte=0"`                   // spring optimal distance, 0 = 1/sqrt(n)
	Iterations int     `yaml:"iterations" json:"iterations" validate:"gte=0"` // upper bound for iterative algorithms
	Scale      float64 `yaml:"scale" json:"scale" validate:"gt=0"`            // largest absolute coordinate after rescaling
	Tolerance  float64 `yaml:"tolerance" json:"tolerance" validate:"gte=0"`   // relative stress change that stops kamada-kawai
}

// DefaultOptions returns the defaults used by the report.
func DefaultOptions() Options {
	return Options{
		Algorithm:  KamadaKawai,
		Seed:       42,
		K:          0.5,
		Iterations: 400,
		Scale:      1.0,
		Tolerance:  1e-4,
	}
}

// Positions maps node ids to coordinates.
type Positions map[string]r2.Vec

// Compute lays out every node of g. Edge weights are ignored.
func Compute(g *graph.Graph, opts Options) (Positions, error) {
	ids := make([]string, 0, g.Len())
	for _, n := range g.Nodes() {
		ids = append(ids, n.ID)
	}

	var coords []r2.Vec
	switch n := len(ids); {
	case n == 0:
		return Positions{}, nil
	case n == 1:
		coords = []r2.Vec{{}}
	default:
		switch opts.Algorithm {
		case "", KamadaKawai:
			coords = stressMajorization(toSimple(g, ids), opts)
		case Spring:
			coords = fruchtermanReingold(toSimple(g, ids), opts)
		case Circular:
			coords = circle(n)
		default:
			return nil, fmt.Errorf("%w: %q (valid: %v)", ErrUnknownAlgorithm, opts.Algorithm, ValidAlgorithms)
		}
	}

	rescale(coords, opts.Scale)

	pos := make(Positions, len(ids))
	for i, id := range ids {
		c := coords[i]
		if !finite(c.X) || !finite(c.Y) {
			return nil, fmt.Errorf("%w: node %s", ErrNonFinite, id)
		}
		pos[id] = c
	}
	return pos, nil
}

// Components returns the number of connected components of g.
func Components(g *graph.Graph) int {
	ids := make([]string, 0, g.Len())
	for _, n := range g.Nodes() {
		ids = append(ids, n.ID)
	}
	return len(topo.ConnectedComponents(toSimple(g, ids)))
}

// toSimple builds the gonum view of g: node i of ids becomes gonum node i.
// Self-loops and parallel edges are dropped; they carry no layout information.
func toSimple(g *graph.Graph, ids []string) *simple.UndirectedGraph {
	index := make(map[string]int64, len(ids))
	sg := simple.NewUndirectedGraph()
	for i, id := range ids {
		index[id] = int64(i)
		sg.AddNode(simple.Node(i))
	}
	for _, p := range g.UniquePairs() {
		if p.A == p.B {
			continue
		}
		sg.SetEdge(simple.Edge{F: simple.Node(index[p.A]), T: simple.Node(index[p.B])})
	}
	return sg
}

// rescale centres coords on the origin and scales them so the largest
// absolute coordinate equals scale.
func rescale(coords []r2.Vec, scale float64) {
	if len(coords) == 0 {
		return
	}
	var mean r2.Vec
	for _, c := range coords {
		mean = r2.Add(mean, c)
	}
	mean = r2.Scale(1/float64(len(coords)), mean)

	lim := 0.0
	for i := range coords {
		coords[i] = r2.Sub(coords[i], mean)
		lim = math.Max(lim, math.Max(math.Abs(coords[i].X), math.Abs(coords[i].Y)))
	}
	if lim == 0 {
		return
	}
	for i := range coords {
		coords[i] = r2.Scale(scale/lim, coords[i])
	}
}

// circle places n points evenly on the unit circle, starting at angle 0.
func circle(n int) []r2.Vec {
	coords := make([]r2.Vec, n)
	for i := range coords {
		theta := 2 * math.Pi * float64(i) / float64(n)
		coords[i] = r2.Vec{X: math.Cos(theta), Y: math.Sin(theta)}
	}
	return coords
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
