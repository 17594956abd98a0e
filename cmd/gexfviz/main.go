// Package main provides the gexfviz CLI entry point.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"fortio.org/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/matsen/gexfviz/internal/config"
	"github.com/matsen/gexfviz/internal/report"
)

// Version is set at build time via ldflags
var Version = "dev"

func init() {
	// A .env file may set GEXFVIZ_CONFIG; a missing file is fine.
	_ = godotenv.Load()
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	opts := &rootOptions{}
	cmd := newRootCmd(opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		reportError(stderr, opts.human, err)
		return exitCode(err)
	}
	return ExitSuccess
}

// rootOptions holds the flags shared by every command.
type rootOptions struct {
	configPath string
	human      bool
	verbose    bool
	layout     layoutFlags
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	var (
		output     string
		format     string
		title      string
		nodeRadius float64
	)

	cmd := &cobra.Command{
		Use:   "gexfviz <graph-file>",
		Short: "Render a co-authorship graph as an interactive HTML report",
		Long: `gexfviz reads a GEXF (or node-link JSON) graph, lays it out, colours nodes
by their number of connections and writes a self-contained HTML page with an
interactive graph and two tables: one row per vertex and one row per pair of
connected vertices.

The report is written next to the input with the same base name:
  gexfviz data/rede.gexf          # writes data/rede.html

Settings come from ~/.config/gexfviz/config.yml (or --config, or
$GEXFVIZ_CONFIG); flags override the file.

Output is JSON by default; use --human for a one-line summary.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				log.SetLogLevel(log.Verbose)
			} else {
				log.SetLogLevel(log.Warning)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("format") {
				cfg.Format = report.Format(format)
			}
			if flags.Changed("title") {
				cfg.Title = title
			}
			if flags.Changed("node-radius") {
				cfg.NodeRadius = nodeRadius
			}
			if err := cfg.Validate(); err != nil {
				return &configError{err: err}
			}

			ropts := cfg.ReportOptions()
			ropts.Output = output

			res, err := report.Pipeline{}.Run(cmd.Context(), args[0], ropts)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), opts.human, res)
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolVar(&opts.human, "human", false, "Use human-readable output instead of JSON")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Log progress to stderr")
	pf.StringVar(&opts.configPath, "config", "", "Config file (default $GEXFVIZ_CONFIG or ~/.config/gexfviz/config.yml)")

	f := cmd.Flags()
	opts.layout.register(f)
	f.StringVarP(&output, "output", "o", "", "Output file path (default: input path with the format's extension)")
	f.StringVar(&format, "format", string(report.FormatHTML), "Output format: html, json, or echarts")
	f.StringVar(&title, "title", report.DefaultTitle, "Page title")
	f.Float64Var(&nodeRadius, "node-radius", 8, "Node radius in pixels")

	cmd.AddCommand(newTablesCmd(opts), newConfigCmd(opts), completionCmd(cmd))
	return cmd
}

// loadConfig reads the config file and applies the layout flags.
// The returned config is a copy and may be modified.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	loaded, path, err := config.Load(opts.configPath)
	if err != nil {
		return nil, &configError{err: err}
	}
	if path != "" {
		log.LogVf("Using config %s", path)
	}

	cfg := *loaded
	opts.layout.apply(cmd.Flags(), &cfg.Layout)
	return &cfg, nil
}

// configError marks failures to read or validate configuration.
type configError struct {
	err error
}

func (e *configError) Error() string {
	return fmt.Sprintf("loading config: %v", e.err)
}

func (e *configError) Unwrap() error {
	return e.err
}
