// Package palette maps numeric node values onto a fixed, ordered colour scale.
package palette

import (
	"errors"
	"fmt"
	"math"
	"regexp"

	"github.com/matsen/gexfviz/internal/attr"
	"github.com/matsen/gexfviz/internal/graph"
)

// Palette is an ordered list of colours, lowest value first.
type Palette []string

// Default is the 10-step spectral scale used by the report.
var Default = Palette{
	"#5e4fa2", "#3288bd", "#66c2a5", "#abdda4", "#e6f598",
	"#fee08b", "#fdae61", "#f46d43", "#d53e4f", "#9e0142",
}

// DefaultSize is the number of colours in Default.
const DefaultSize = 10

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validation errors.
var (
	ErrEmpty          = errors.New("palette is empty")
	ErrInvalidColor   = errors.New("palette colour must be #rrggbb")
	ErrDuplicateColor = errors.New("palette colours must be distinct")
)

// Validate checks that p is non-empty and holds distinct #rrggbb colours.
func (p Palette) Validate() error {
	if len(p) == 0 {
		return ErrEmpty
	}
	seen := make(map[string]bool, len(p))
	for i, c := range p {
		if !hexColorRe.MatchString(c) {
			return fmt.Errorf("%w: entry %d is %q", ErrInvalidColor, i+1, c)
		}
		if seen[c] {
			return fmt.Errorf("%w: %q repeats", ErrDuplicateColor, c)
		}
		seen[c] = true
	}
	return nil
}

// Index returns the palette position for v within [lo, hi].
//
// Missing values and degenerate ranges (hi <= lo) map to 0. Otherwise v is
// normalised linearly, clamped to [0, 1], scaled to the palette length and
// rounded to the nearest index.
func (p Palette) Index(v attr.Optional, lo, hi float64) int {
	if len(p) == 0 || !v.Valid || math.IsNaN(v.Value) || !(hi > lo) {
		return 0
	}
	t := (v.Value - lo) / (hi - lo)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	idx := int(math.RoundToEven(t * float64(len(p)-1)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(p) {
		idx = len(p) - 1
	}
	return idx
}

// Color returns the colour for v within [lo, hi], see Index.
func (p Palette) Color(v attr.Optional, lo, hi float64) string {
	if len(p) == 0 {
		return ""
	}
	return p[p.Index(v, lo, hi)]
}

// Range returns the smallest and largest of values. An empty input yields (0, 1).
func Range(values []float64) (lo, hi float64) {
	if len(values) == 0 {
		return 0, 1
	}
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// LegendEntry is one colour band of the report legend.
type LegendEntry struct {
	Color string `json:"color"`
	Range string `json:"range"`
}

// Legend splits [lo, hi] into len(p) equal bands, one per colour.
func (p Palette) Legend(lo, hi float64) []LegendEntry {
	steps := float64(len(p))
	entries := make([]LegendEntry, 0, len(p))
	for i, c := range p {
		a := lo + (float64(i)/steps)*(hi-lo)
		b := lo + (float64(i+1)/steps)*(hi-lo)
		entries = append(entries, LegendEntry{
			Color: c,
			Range: fmt.Sprintf("%s – %s", formatBound(a), formatBound(b)),
		})
	}
	return entries
}

func formatBound(v float64) string {
	r := math.Round(v*100) / 100
	return fmt.Sprintf("%g", r)
}

// Mapping is the colour assigned to every node together with the
// connectivity range the colours were scaled to.
type Mapping struct {
	Colors map[string]string
	Lo, Hi float64
}

// MapNodes colours every node of g by its connectivity (see attr.Connectivity).
func (p Palette) MapNodes(g *graph.Graph, connectionKeys []string) Mapping {
	nodes := g.Nodes()
	values := make([]float64, len(nodes))
	for i, n := range nodes {
		values[i] = float64(attr.Connectivity(g, n, connectionKeys))
	}
	lo, hi := Range(values)

	m := Mapping{Colors: make(map[string]string, len(nodes)), Lo: lo, Hi: hi}
	for i, n := range nodes {
		m.Colors[n.ID] = p.Color(attr.Some(values[i]), lo, hi)
	}
	return m
}
