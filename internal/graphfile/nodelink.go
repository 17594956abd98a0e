package graphfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/matsen/gexfviz/internal/graph"
)

type nodeLinkDoc struct {
	Nodes []map[string]any `json:"nodes"`
	Links []map[string]any `json:"links"`
	Edges []map[string]any `json:"edges"`
}

// ParseNodeLink reads a node-link JSON document:
//
//	{"nodes": [{"id": "a", "label": "A", ...}], "links": [{"source": "a", "target": "b", ...}]}
//
// "edges" is accepted in place of "links". Integral numbers decode to int64,
// other numbers to float64.
func ParseNodeLink(r io.Reader) (*graph.Graph, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc nodeLinkDoc
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, fmt.Errorf("decoding node-link JSON: %w", err)
	}

	g := graph.New()
	for i, raw := range doc.Nodes {
		id, ok := idString(raw["id"])
		if !ok {
			return nil, fmt.Errorf("node %d: missing id", i)
		}
		node := graph.Node{ID: id, Attrs: make(map[string]graph.Value, len(raw))}
		for k, v := range raw {
			switch k {
			case "id":
			case "label":
				node.Label = fmt.Sprint(v)
			default:
				node.Attrs[k] = jsonValue(v)
			}
		}
		if err := g.AddNode(node); err != nil {
			return nil, err
		}
	}

	links := doc.Links
	if links == nil {
		links = doc.Edges
	}
	for i, raw := range links {
		src, okS := idString(raw["source"])
		dst, okT := idString(raw["target"])
		if !okS || !okT {
			return nil, fmt.Errorf("link %d: source and target are required", i)
		}
		for _, id := range []string{src, dst} {
			if err := g.EnsureNode(id); err != nil {
				return nil, err
			}
		}
		edge := graph.Edge{Source: src, Target: dst, Attrs: make(map[string]graph.Value, len(raw))}
		for k, v := range raw {
			if k == "source" || k == "target" {
				continue
			}
			edge.Attrs[k] = jsonValue(v)
		}
		if err := g.AddEdge(edge); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func idString(v any) (string, bool) {
	switch id := v.(type) {
	case string:
		return id, id != ""
	case json.Number:
		return id.String(), true
	case bool:
		return strconv.FormatBool(id), true
	}
	return "", false
}

func jsonValue(v any) graph.Value {
	n, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}
