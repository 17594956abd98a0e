package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/matsen/gexfviz/internal/graphfile"
	"github.com/matsen/gexfviz/internal/table"
)

// TablesResponse is the JSON output of the tables command.
type TablesResponse struct {
	Vertices []table.NodeRow `json:"vertices,omitempty"`
	Edges    []table.EdgeRow `json:"edges,omitempty"`
}

func newTablesCmd(opts *rootOptions) *cobra.Command {
	var which string

	cmd := &cobra.Command{
		Use:   "tables <graph-file>",
		Short: "Print the vertex and edge tables without rendering a report",
		Long: `Print the tables shown in the report.

The vertex table has one row per node with its publication counts, number of
connections, co-authorship ratio and colour. The edge table has one row per
pair of connected nodes, sorted by weight and then by shared neighbours.

Examples:
  gexfviz tables rede.gexf
  gexfviz tables rede.gexf --table edges --human`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if which != "all" && which != "vertices" && which != "edges" {
				return fmt.Errorf("invalid --table %q: must be all, vertices, or edges", which)
			}
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			g, err := graphfile.Load(args[0])
			if err != nil {
				return err
			}

			var resp TablesResponse
			if which != "edges" {
				colors := cfg.Palette.MapNodes(g, cfg.Fields.Connections).Colors
				resp.Vertices, err = table.BuildNodeRows(g, colors, cfg.Fields, cfg.NodeOrder)
				if err != nil {
					return err
				}
			}
			if which != "vertices" {
				resp.Edges = table.BuildEdgeRows(g, cfg.Fields)
			}

			w := cmd.OutOrStdout()
			if !opts.human {
				return outputJSON(w, resp)
			}
			if resp.Vertices != nil {
				printVertices(w, resp.Vertices)
			}
			if resp.Vertices != nil && resp.Edges != nil {
				fmt.Fprintln(w)
			}
			if resp.Edges != nil {
				printEdges(w, resp.Edges)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&which, "table", "all", "Which table to print: all, vertices, or edges")
	return cmd
}

func printVertices(w io.Writer, rows []table.NodeRow) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "ID\tName\tTotal\tCo-authored\tConnections\tRatio (%)\tColour\t")
	for _, r := range rows {
		ratio := "-"
		if r.CoauthorshipRatio.Valid {
			ratio = fmt.Sprintf("%g", r.CoauthorshipRatio.Value)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\t%s\t\n",
			r.ID, r.Name, r.TotalPublications, r.CoauthoredPublications, r.Connections, ratio, r.Color)
	}
	tw.Flush()
}

func printEdges(w io.Writer, rows []table.EdgeRow) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Edge\tWeight\tShared neighbours")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%g\t%d\n", r.Edge, r.Weight, r.SharedNeighbors)
	}
	tw.Flush()
}
