package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// echartsExtent maps layout coordinates onto the chart's coordinate space.
const echartsExtent = 500

// WriteECharts renders the graph as an ECharts page with the computed
// positions fixed in place.
func WriteECharts(w io.Writer, r *Report) error {
	nodes := make([]opts.GraphNode, 0, len(r.Graph.Nodes))
	for _, n := range r.Graph.Nodes {
		nodes = append(nodes, opts.GraphNode{
			Name:       n.ID,
			X:          float32(n.X * echartsExtent),
			Y:          float32(n.Y * echartsExtent),
			Value:      float32(n.Connections),
			SymbolSize: 2 * n.R,
			ItemStyle:  &opts.ItemStyle{Color: n.Color},
		})
	}

	links := make([]opts.GraphLink, 0, len(r.Graph.Links))
	for _, l := range r.Graph.Links {
		links = append(links, opts.GraphLink{
			Source:    l.Source,
			Target:    l.Target,
			Value:     float32(l.Weight),
			LineStyle: &opts.LineStyle{Color: l.Color, Width: float32(l.Weight)},
		})
	}

	page := components.NewPage()
	page.PageTitle = r.Title
	page.AddCharts(graphBase(r.Title, nodes, links))
	if err := page.Render(w); err != nil {
		return fmt.Errorf("rendering echarts page: %w", err)
	}
	return nil
}

func graphBase(title string, nodes []opts.GraphNode, links []opts.GraphLink) *charts.Graph {
	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Height:    "100vh",
			Width:     "100vw",
			ChartID:   "gexfviz",
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
	)
	graph.AddSeries(
		"graph",
		nodes,
		links,
		charts.WithGraphChartOpts(
			opts.GraphChart{
				Layout:    "none",
				Draggable: opts.Bool(true),
				Roam:      opts.Bool(true),
			},
		),
		charts.WithLabelOpts(opts.Label{
			Show:     opts.Bool(true),
			Color:    "black",
			Position: "top",
		}),
	)
	return graph
}
