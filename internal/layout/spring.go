package layout

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/spatial/r2"
)

// minDistance keeps coincident nodes from producing infinite forces.
const minDistance = 0.01

// fruchtermanReingold is the spring-embedder variant: all pairs repel with
// k²/d, adjacent pairs attract with d²/k, and the maximum step cools linearly
// to zero. Initial positions come from a generator seeded with opts.Seed.
func fruchtermanReingold(g *simple.UndirectedGraph, opts Options) []r2.Vec {
	n := g.Nodes().Len()
	rng := rand.New(rand.NewSource(opts.Seed))
	coords := make([]r2.Vec, n)
	for i := range coords {
		coords[i] = r2.Vec{X: rng.Float64(), Y: rng.Float64()}
	}

	k := opts.K
	if k <= 0 {
		k = math.Sqrt(1 / float64(n))
	}

	// Initial temperature is a tenth of the domain width.
	temperature := 0.1 * math.Max(spread(coords, func(v r2.Vec) float64 { return v.X }),
		spread(coords, func(v r2.Vec) float64 { return v.Y }))
	cooling := temperature / float64(opts.Iterations+1)

	disp := make([]r2.Vec, n)
	for iter := 0; iter < opts.Iterations; iter++ {
		for i := range disp {
			disp[i] = r2.Vec{}
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				delta := r2.Sub(coords[i], coords[j])
				d := math.Max(r2.Norm(delta), minDistance)
				force := k * k / (d * d)
				if g.HasEdgeBetween(int64(i), int64(j)) {
					force -= d / k
				}
				disp[i] = r2.Add(disp[i], r2.Scale(force, delta))
			}
		}

		moved := 0.0
		for i := range coords {
			length := math.Max(r2.Norm(disp[i]), minDistance)
			step := r2.Scale(temperature/length, disp[i])
			coords[i] = r2.Add(coords[i], step)
			moved += r2.Norm(step)
		}

		temperature -= cooling
		if moved/float64(n) < 1e-4 {
			break
		}
	}
	return coords
}

func spread(coords []r2.Vec, axis func(r2.Vec) float64) float64 {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, c := range coords {
		lo = math.Min(lo, axis(c))
		hi = math.Max(hi, axis(c))
	}
	return hi - lo
}
