package graph

import (
	"errors"
	"testing"
)

func buildGraph(t *testing.T, ids []string, edges [][2]string) *Graph {
	t.Helper()
	g := New()
	for _, id := range ids {
		if err := g.AddNode(Node{ID: id}); err != nil {
			t.Fatalf("AddNode(%q) error = %v", id, err)
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(Edge{Source: e[0], Target: e[1]}); err != nil {
			t.Fatalf("AddEdge(%v) error = %v", e, err)
		}
	}
	return g
}

func TestAddNode_Validation(t *testing.T) {
	g := New()
	if err := g.AddNode(Node{}); !errors.Is(err, ErrEmptyNodeID) {
		t.Errorf("AddNode(empty) error = %v, want %v", err, ErrEmptyNodeID)
	}
	if err := g.AddNode(Node{ID: "A"}); err != nil {
		t.Fatalf("AddNode(A) error = %v", err)
	}
	if err := g.AddNode(Node{ID: "A"}); !errors.Is(err, ErrDuplicateNode) {
		t.Errorf("AddNode(A) twice error = %v, want %v", err, ErrDuplicateNode)
	}
	if err := g.EnsureNode("A"); err != nil {
		t.Errorf("EnsureNode(existing) error = %v", err)
	}
	if g.Len() != 1 {
		t.Errorf("Len() = %d, want 1", g.Len())
	}
}

func TestAddEdge_UnknownEndpoint(t *testing.T) {
	g := buildGraph(t, []string{"A"}, nil)
	err := g.AddEdge(Edge{Source: "A", Target: "Z"})
	if !errors.Is(err, ErrUnknownEndpoint) {
		t.Errorf("AddEdge() error = %v, want %v", err, ErrUnknownEndpoint)
	}
}

func TestDegree(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C"}, [][2]string{
		{"A", "B"}, {"B", "A"}, {"A", "C"}, {"C", "C"},
	})

	tests := []struct {
		id   string
		want int
	}{
		{"A", 3},
		{"B", 2},
		{"C", 3},
	}
	for _, tt := range tests {
		if got := g.Degree(tt.id); got != tt.want {
			t.Errorf("Degree(%s) = %d, want %d", tt.id, got, tt.want)
		}
	}
}

func TestDisplayLabel(t *testing.T) {
	n := Node{ID: "n1"}
	if got := n.DisplayLabel(); got != "n1" {
		t.Errorf("DisplayLabel() = %q, want %q", got, "n1")
	}
	n.Label = "Biology"
	if got := n.DisplayLabel(); got != "Biology" {
		t.Errorf("DisplayLabel() = %q, want %q", got, "Biology")
	}
}

func TestNodeAttr_FirstKeyWins(t *testing.T) {
	n := Node{ID: "n", Attrs: map[string]Value{"b": "2", "c": "3"}}
	v, ok := n.Attr("a", "b", "c")
	if !ok || v != "2" {
		t.Errorf("Attr() = %v, %v; want 2, true", v, ok)
	}
	if _, ok := n.Attr("x"); ok {
		t.Error("Attr(x) should be absent")
	}
}

func TestPairKey(t *testing.T) {
	if got := PairKey("B", "A"); got != (Pair{A: "A", B: "B"}) {
		t.Errorf("PairKey(B, A) = %v", got)
	}
	if PairKey("A", "B") != PairKey("B", "A") {
		t.Error("PairKey should be symmetric")
	}
}

func TestUniquePairs_CollapsesParallelAndReversed(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C"}, [][2]string{
		{"A", "B"}, {"B", "A"}, {"A", "C"}, {"A", "B"},
	})

	pairs := g.UniquePairs()
	if len(pairs) != 2 {
		t.Fatalf("UniquePairs() returned %d pairs, want 2", len(pairs))
	}
	if pairs[0].Pair != (Pair{"A", "B"}) || pairs[1].Pair != (Pair{"A", "C"}) {
		t.Errorf("UniquePairs() = %v, want [(A,B) (A,C)]", pairs)
	}

	dups := g.FindDuplicatePairs()
	if dups[Pair{"A", "B"}] != 3 {
		t.Errorf("FindDuplicatePairs()[(A,B)] = %d, want 3", dups[Pair{"A", "B"}])
	}
	if _, ok := dups[Pair{"A", "C"}]; ok {
		t.Error("(A,C) is not duplicated")
	}
}

func TestSharedNeighbors(t *testing.T) {
	tests := []struct {
		name  string
		ids   []string
		edges [][2]string
		pair  Pair
		want  int
	}{
		{
			name:  "triangle shares one",
			ids:   []string{"A", "B", "C"},
			edges: [][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}},
			pair:  Pair{"A", "B"},
			want:  1,
		},
		{
			name:  "endpoints never count",
			ids:   []string{"A", "B"},
			edges: [][2]string{{"A", "B"}, {"A", "A"}, {"B", "B"}},
			pair:  Pair{"A", "B"},
			want:  0,
		},
		{
			name:  "square with diagonal",
			ids:   []string{"A", "B", "C", "D"},
			edges: [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}, {"A", "C"}},
			pair:  Pair{"A", "C"},
			want:  2,
		},
		{
			name:  "no common neighbours",
			ids:   []string{"A", "B", "C", "D"},
			edges: [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}},
			pair:  Pair{"A", "B"},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := buildGraph(t, tt.ids, tt.edges)
			if got := g.SharedNeighbors(tt.pair); got != tt.want {
				t.Errorf("SharedNeighbors(%v) = %d, want %d", tt.pair, got, tt.want)
			}
		})
	}
}
