package attr

import "github.com/matsen/gexfviz/internal/graph"

// Fields lists, for each quantity shown in the report, the attribute keys it
// may be stored under. The first key present on a node wins.
type Fields struct {
	TotalPublications      []string `yaml:"total_publications" json:"total_publications" validate:"min=1,dive,required"`
	CoauthoredPublications []string `yaml:"coauthored_publications" json:"coauthored_publications" validate:"min=1,dive,required"`
	Connections            []string `yaml:"connections" json:"connections" validate:"min=1,dive,required"`
	CoauthorshipRatio      []string `yaml:"coauthorship_ratio" json:"coauthorship_ratio" validate:"min=1,dive,required"`
	EdgeWeight             []string `yaml:"edge_weight" json:"edge_weight" validate:"min=1,dive,required"`
	EdgeColor              []string `yaml:"edge_color" json:"edge_color" validate:"min=1,dive,required"`
}

// DefaultFields accepts both the English keys and the Portuguese titles used by
// the Fiocruz co-authorship exports.
func DefaultFields() Fields {
	return Fields{
		TotalPublications:      []string{"total_publications", "Publicações_totais"},
		CoauthoredPublications: []string{"coauthored_publications", "Publicações_em_coautoria"},
		Connections:            []string{"connections", "Conexões"},
		CoauthorshipRatio:      []string{"coauthorship_ratio", "Proporção_da_coautoria_Fiocruz"},
		EdgeWeight:             []string{"weight"},
		EdgeColor:              []string{"color"},
	}
}

// Connectivity returns the node's connection count: the stored attribute when
// it coerces to an integer, otherwise the node's degree in g.
func Connectivity(g *graph.Graph, n *graph.Node, keys []string) int64 {
	if v, ok := n.Attr(keys...); ok {
		if c, ok := IntOK(v); ok {
			return c
		}
	}
	return int64(g.Degree(n.ID))
}

// NodeInt coerces the first present attribute in keys, or returns fallback.
func NodeInt(n *graph.Node, keys []string, fallback int64) int64 {
	v, _ := n.Attr(keys...)
	return Int(v, fallback)
}

// NodeFloat coerces the first present attribute in keys.
func NodeFloat(n *graph.Node, keys []string) Optional {
	v, _ := n.Attr(keys...)
	return Float(v)
}

// EdgeWeight returns the weight of e, see Weight.
func EdgeWeight(e *graph.Edge, keys []string) float64 {
	v, _ := e.Attr(keys...)
	return Weight(v)
}
