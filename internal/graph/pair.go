package graph

// Pair is an unordered pair of node ids, stored with A <= B.
type Pair struct {
	A string
	B string
}

// PairKey returns the unordered pair for u and v, ids sorted lexicographically.
func PairKey(u, v string) Pair {
	if v < u {
		u, v = v, u
	}
	return Pair{A: u, B: v}
}

// UniquePair is a distinct undirected pair together with the first edge that produced it.
type UniquePair struct {
	Pair
	Edge Edge
}

// UniquePairs collapses the edge list to distinct undirected pairs.
// Pairs appear in the order their first edge was added; later parallel or
// reversed edges are dropped.
func (g *Graph) UniquePairs() []UniquePair {
	seen := make(map[Pair]bool, len(g.edges))
	pairs := make([]UniquePair, 0, len(g.edges))
	for _, e := range g.edges {
		key := e.Pair()
		if seen[key] {
			continue
		}
		seen[key] = true
		pairs = append(pairs, UniquePair{Pair: key, Edge: e})
	}
	return pairs
}

// SharedNeighbors counts the nodes adjacent to both endpoints of p,
// never counting the endpoints themselves.
func (g *Graph) SharedNeighbors(p Pair) int {
	na, nb := g.adj[p.A], g.adj[p.B]
	if len(nb) < len(na) {
		na, nb = nb, na
	}
	count := 0
	for id := range na {
		if id == p.A || id == p.B {
			continue
		}
		if _, ok := nb[id]; ok {
			count++
		}
	}
	return count
}

// FindDuplicatePairs returns the pairs that occur more than once in the edge
// list, with their occurrence counts.
func (g *Graph) FindDuplicatePairs() map[Pair]int {
	counts := make(map[Pair]int)
	for _, e := range g.edges {
		counts[e.Pair()]++
	}

	duplicates := make(map[Pair]int)
	for key, count := range counts {
		if count > 1 {
			duplicates[key] = count
		}
	}
	return duplicates
}
