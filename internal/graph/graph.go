// Package graph defines the attributed, undirected graph the report is built from.
package graph

import (
	"errors"
	"fmt"
)

// Value is an attribute value as decoded by a loader: string, int64, float64 or bool.
type Value = any

// Node is a vertex with an opaque id, an optional label and free-form attributes.
type Node struct {
	ID    string
	Label string
	Attrs map[string]Value
}

// DisplayLabel returns the label, or the id when no label was given.
func (n *Node) DisplayLabel() string {
	if n.Label == "" {
		return n.ID
	}
	return n.Label
}

// Attr returns the attribute stored under the first of keys that is present.
func (n *Node) Attr(keys ...string) (Value, bool) {
	return lookup(n.Attrs, keys)
}

// Edge is an undirected connection between two nodes.
// (Source, Target) and (Target, Source) describe the same pair.
type Edge struct {
	Source string
	Target string
	Attrs  map[string]Value
}

// Attr returns the attribute stored under the first of keys that is present.
func (e *Edge) Attr(keys ...string) (Value, bool) {
	return lookup(e.Attrs, keys)
}

// Pair returns the unordered endpoint pair of the edge.
func (e *Edge) Pair() Pair {
	return PairKey(e.Source, e.Target)
}

func lookup(attrs map[string]Value, keys []string) (Value, bool) {
	for _, k := range keys {
		if v, ok := attrs[k]; ok {
			return v, true
		}
	}
	return nil, false
}

// Validation errors.
var (
	ErrEmptyNodeID     = errors.New("node id is required")
	ErrDuplicateNode   = errors.New("duplicate node id")
	ErrUnknownEndpoint = errors.New("edge endpoint is not a node")
)

// Graph holds nodes and edges in insertion order.
type Graph struct {
	nodes []*Node
	index map[string]*Node
	edges []Edge
	adj   map[string]map[string]struct{}
	deg   map[string]int
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		index: make(map[string]*Node),
		adj:   make(map[string]map[string]struct{}),
		deg:   make(map[string]int),
	}
}

// AddNode appends a node. Ids must be non-empty and unique.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrEmptyNodeID
	}
	if _, ok := g.index[n.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateNode, n.ID)
	}
	if n.Attrs == nil {
		n.Attrs = make(map[string]Value)
	}
	node := &n
	g.nodes = append(g.nodes, node)
	g.index[n.ID] = node
	g.adj[n.ID] = make(map[string]struct{})
	return nil
}

// EnsureNode adds a bare node with the given id if it does not exist yet.
func (g *Graph) EnsureNode(id string) error {
	if _, ok := g.index[id]; ok {
		return nil
	}
	return g.AddNode(Node{ID: id})
}

// AddEdge appends an edge between two existing nodes.
// Parallel edges and self-loops are kept as given.
func (g *Graph) AddEdge(e Edge) error {
	for _, id := range []string{e.Source, e.Target} {
		if _, ok := g.index[id]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownEndpoint, id)
		}
	}
	if e.Attrs == nil {
		e.Attrs = make(map[string]Value)
	}
	g.edges = append(g.edges, e)
	g.adj[e.Source][e.Target] = struct{}{}
	g.adj[e.Target][e.Source] = struct{}{}
	g.deg[e.Source]++
	g.deg[e.Target]++
	return nil
}

// Nodes returns the nodes in insertion order. Callers must not append to it.
func (g *Graph) Nodes() []*Node {
	return g.nodes
}

// Edges returns the edges in insertion order. Callers must not append to it.
func (g *Graph) Edges() []Edge {
	return g.edges
}

// Node returns the node with the given id.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.index[id]
	return n, ok
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Degree returns the number of incident edge endpoints of id.
// A self-loop counts twice and every parallel edge counts.
func (g *Graph) Degree(id string) int {
	return g.deg[id]
}

// Neighbors returns the set of ids adjacent to id. The set is shared; do not modify it.
func (g *Graph) Neighbors(id string) map[string]struct{} {
	return g.adj[id]
}
