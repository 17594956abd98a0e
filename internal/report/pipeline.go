package report

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fortio.org/log"

	"github.com/matsen/gexfviz/internal/graph"
	"github.com/matsen/gexfviz/internal/graphfile"
	"github.com/matsen/gexfviz/internal/layout"
)

// Options configures one pipeline run.
type Options struct {
	Layout layout.Options
	Build  BuildOptions
	Format Format
	Assets Assets
	// Output overrides the default output path (input base name plus the
	// format's extension, next to the input).
	Output string
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Layout: layout.DefaultOptions(),
		Build:  DefaultBuildOptions(),
		Format: FormatHTML,
		Assets: DefaultAssets(),
	}
}

// Result describes a written report.
type Result struct {
	Output string `json:"output"`
	Nodes  int    `json:"nodes"`
	Edges  int    `json:"edges"`
	Bytes  int64  `json:"bytes"`
}

// OutputPath returns where a report for inputPath is written in the given format.
func OutputPath(inputPath string, format Format) string {
	ext := filepath.Ext(inputPath)
	return inputPath[:len(inputPath)-len(ext)] + format.Extension()
}

// Pipeline runs load, layout, build and render in sequence. Any stage
// failure aborts the run before the output file is touched.
type Pipeline struct {
	// Load reads the input graph; graphfile.Load when nil.
	Load func(path string) (*graph.Graph, error)
}

// Run produces the report for inputPath and writes it to disk.
func (p Pipeline) Run(ctx context.Context, inputPath string, opts Options) (Result, error) {
	load := p.Load
	if load == nil {
		load = graphfile.Load
	}

	output := opts.Output
	if output == "" {
		output = OutputPath(inputPath, opts.Format)
	}
	if filepath.Clean(output) == filepath.Clean(inputPath) {
		return Result{}, fmt.Errorf("output path %s would overwrite the input", output)
	}

	g, err := load(inputPath)
	if err != nil {
		return Result{}, err
	}
	log.Infof("Loaded %s: %d nodes, %d edges", inputPath, g.Len(), len(g.Edges()))
	if dups := g.FindDuplicatePairs(); len(dups) > 0 {
		log.LogVf("%d node pairs have parallel edges; the edge table keeps the first of each", len(dups))
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	start := time.Now()
	pos, err := layout.Compute(g, opts.Layout)
	if err != nil {
		return Result{}, fmt.Errorf("computing layout: %w", err)
	}
	log.Infof("Layout %s finished in %v (%d components)", opts.Layout.Algorithm, time.Since(start), layout.Components(g))

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	r, err := Build(g, pos, opts.Build)
	if err != nil {
		return Result{}, fmt.Errorf("building report: %w", err)
	}
	log.LogVf("Report has %d vertex rows and %d edge rows", len(r.VertexTable), len(r.EdgeTable))

	var buf bytes.Buffer
	if err := Render(&buf, r, opts.Format, opts.Assets); err != nil {
		return Result{}, err
	}
	if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
		return Result{}, fmt.Errorf("writing report: %w", err)
	}
	log.Infof("Wrote %s (%d bytes)", output, buf.Len())

	return Result{
		Output: output,
		Nodes:  g.Len(),
		Edges:  len(g.Edges()),
		Bytes:  int64(buf.Len()),
	}, nil
}
