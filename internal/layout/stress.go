package layout

import (
	"math"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/stat/mds"
)

// stressMajorization is the Kamada-Kawai energy model solved by weighted
// stress majorization: target distances are shortest-path lengths and each
// pair is weighted by d^-2. Nodes in different components are held apart at
// one more than the largest finite distance.
func stressMajorization(g *simple.UndirectedGraph, opts Options) []r2.Vec {
	n := g.Nodes().Len()
	dist := distanceMatrix(g, n)
	coords := classicalScaling(dist, n)

	weight := func(d float64) float64 { return 1 / (d * d) }
	prev := stress(coords, dist, weight)
	for iter := 0; iter < opts.Iterations; iter++ {
		for i := 0; i < n; i++ {
			var num r2.Vec
			den := 0.0
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				d := dist.At(i, j)
				w := weight(d)
				delta := r2.Sub(coords[i], coords[j])
				target := coords[j]
				if l := r2.Norm(delta); l > 0 {
					target = r2.Add(target, r2.Scale(d/l, delta))
				}
				num = r2.Add(num, r2.Scale(w, target))
				den += w
			}
			coords[i] = r2.Scale(1/den, num)
		}

		cur := stress(coords, dist, weight)
		if prev == 0 || (prev-cur)/prev < opts.Tolerance {
			break
		}
		prev = cur
	}
	return coords
}

// distanceMatrix returns hop distances between every pair of nodes.
func distanceMatrix(g *simple.UndirectedGraph, n int) *mat.SymDense {
	paths := path.DijkstraAllPaths(g)
	dist := mat.NewSymDense(n, nil)

	maxFinite := 0.0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := paths.Weight(int64(i), int64(j))
			if !math.IsInf(d, 0) && d > maxFinite {
				maxFinite = d
			}
			dist.SetSym(i, j, d)
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.IsInf(dist.At(i, j), 0) {
				dist.SetSym(i, j, maxFinite+1)
			}
		}
	}
	return dist
}

// classicalScaling seeds the layout with Torgerson MDS coordinates, which are
// deterministic for a given distance matrix. When MDS does not yield two
// usable dimensions the missing axis comes from a circle.
func classicalScaling(dist *mat.SymDense, n int) []r2.Vec {
	var embedding mat.Dense
	k, _ := mds.TorgersonScaling(&embedding, nil, dist)

	coords := circle(n)
	if k == 0 || embedding.IsEmpty() {
		return coords
	}
	_, cols := embedding.Dims()
	for i := range coords {
		if cols > 0 {
			coords[i].X = embedding.At(i, 0)
		}
		if k > 1 && cols > 1 {
			coords[i].Y = embedding.At(i, 1)
		} else {
			coords[i].Y *= 1e-3
		}
	}
	return coords
}

func stress(coords []r2.Vec, dist *mat.SymDense, weight func(float64) float64) float64 {
	s := 0.0
	for i := range coords {
		for j := i + 1; j < len(coords); j++ {
			d := dist.At(i, j)
			diff := r2.Norm(r2.Sub(coords[i], coords[j])) - d
			s += weight(d) * diff * diff
		}
	}
	return s
}
