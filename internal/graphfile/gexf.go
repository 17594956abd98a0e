package graphfile

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/ianaindex"

	"github.com/matsen/gexfviz/internal/graph"
)

type gexfDoc struct {
	XMLName xml.Name  `xml:"gexf"`
	Graph   gexfGraph `xml:"graph"`
}

type gexfGraph struct {
	DefaultEdgeType string          `xml:"defaultedgetype,attr"`
	Attributes      []gexfAttrBlock `xml:"attributes"`
	Nodes           []gexfNode      `xml:"nodes>node"`
	Edges           []gexfEdge      `xml:"edges>edge"`
}

type gexfAttrBlock struct {
	Class string        `xml:"class,attr"`
	Attrs []gexfAttrDef `xml:"attribute"`
}

type gexfAttrDef struct {
	ID      string  `xml:"id,attr"`
	Title   string  `xml:"title,attr"`
	Type    string  `xml:"type,attr"`
	Default *string `xml:"default"`
}

type gexfAttValue struct {
	For   string `xml:"for,attr"`
	ID    string `xml:"id,attr"` // GEXF 1.1 spelling of "for"
	Value string `xml:"value,attr"`
}

type gexfNode struct {
	ID        string         `xml:"id,attr"`
	Label     string         `xml:"label,attr"`
	AttValues []gexfAttValue `xml:"attvalues>attvalue"`
}

type gexfEdge struct {
	ID        string         `xml:"id,attr"`
	Source    string         `xml:"source,attr"`
	Target    string         `xml:"target,attr"`
	Weight    *string        `xml:"weight,attr"`
	Label     string         `xml:"label,attr"`
	AttValues []gexfAttValue `xml:"attvalues>attvalue"`
}

// attrSchema is the attribute declarations of one class (node or edge).
type attrSchema struct {
	byID  map[string]gexfAttrDef
	order []gexfAttrDef
}

func newSchema(blocks []gexfAttrBlock, class string) attrSchema {
	s := attrSchema{byID: make(map[string]gexfAttrDef)}
	for _, b := range blocks {
		if !strings.EqualFold(b.Class, class) {
			continue
		}
		for _, def := range b.Attrs {
			s.byID[def.ID] = def
			s.order = append(s.order, def)
		}
	}
	return s
}

func (d gexfAttrDef) key() string {
	if d.Title != "" {
		return d.Title
	}
	return d.ID
}

// decode converts raw attribute text to the Go kind matching the declared type.
// Values that fail typed decoding are kept as the raw string.
func (s attrSchema) decode(avs []gexfAttValue) map[string]graph.Value {
	out := make(map[string]graph.Value, len(s.order))
	for _, av := range avs {
		ref := av.For
		if ref == "" {
			ref = av.ID
		}
		def, ok := s.byID[ref]
		if !ok {
			def = gexfAttrDef{ID: ref}
		}
		out[def.key()] = typedValue(def.Type, av.Value)
	}
	for _, def := range s.order {
		if def.Default == nil {
			continue
		}
		if _, ok := out[def.key()]; !ok {
			out[def.key()] = typedValue(def.Type, strings.TrimSpace(*def.Default))
		}
	}
	return out
}

func typedValue(typ, raw string) graph.Value {
	switch strings.ToLower(typ) {
	case "integer", "long", "short", "byte":
		if i, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64); err == nil {
			return i
		}
	case "float", "double":
		if f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			return f
		}
	case "boolean":
		switch strings.TrimSpace(raw) {
		case "true", "True", "1":
			return true
		case "false", "False", "0":
			return false
		}
	}
	return raw
}

// ParseGEXF reads a GEXF 1.1-1.3 document. Directed edges are read as
// undirected; edges naming undeclared nodes create those nodes.
func ParseGEXF(r io.Reader) (*graph.Graph, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader

	var doc gexfDoc
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, fmt.Errorf("decoding GEXF: %w", err)
	}

	nodeSchema := newSchema(doc.Graph.Attributes, "node")
	edgeSchema := newSchema(doc.Graph.Attributes, "edge")

	g := graph.New()
	for _, n := range doc.Graph.Nodes {
		node := graph.Node{
			ID:    n.ID,
			Label: n.Label,
			Attrs: nodeSchema.decode(n.AttValues),
		}
		if err := g.AddNode(node); err != nil {
			return nil, err
		}
	}

	for i, e := range doc.Graph.Edges {
		if e.Source == "" || e.Target == "" {
			return nil, fmt.Errorf("edge %d: source and target are required", i)
		}
		for _, id := range []string{e.Source, e.Target} {
			if err := g.EnsureNode(id); err != nil {
				return nil, err
			}
		}
		attrs := edgeSchema.decode(e.AttValues)
		if e.Weight != nil {
			attrs["weight"] = *e.Weight
		}
		if e.Label != "" {
			attrs["label"] = e.Label
		}
		if err := g.AddEdge(graph.Edge{Source: e.Source, Target: e.Target, Attrs: attrs}); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// charsetReader lets the XML decoder accept any IANA-registered encoding
// declared in the prolog.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}
