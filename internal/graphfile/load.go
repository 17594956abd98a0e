// Package graphfile reads graph description files into a graph.Graph.
package graphfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matsen/gexfviz/internal/graph"
)

// ErrUnsupportedFormat is returned when a file is neither GEXF nor node-link JSON.
var ErrUnsupportedFormat = errors.New("unsupported graph format")

// Format names a supported input format.
type Format string

const (
	FormatGEXF     Format = "gexf"
	FormatNodeLink Format = "node-link"
)

// ParseError reports a malformed graph document.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads the graph stored at path. The format is chosen by extension
// (.gexf, .json) and otherwise sniffed from the first non-blank byte.
// A missing file yields an error wrapping fs.ErrNotExist.
func Load(path string) (*graph.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading graph file: %w", err)
	}

	format, err := Detect(path, data)
	if err != nil {
		return nil, err
	}

	var g *graph.Graph
	switch format {
	case FormatGEXF:
		g, err = ParseGEXF(bytes.NewReader(data))
	case FormatNodeLink:
		g, err = ParseNodeLink(bytes.NewReader(data))
	}
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return g, nil
}

// Detect picks the reader for a file.
func Detect(path string, data []byte) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gexf":
		return FormatGEXF, nil
	case ".json":
		return FormatNodeLink, nil
	}

	trimmed := bytes.TrimLeft(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")), " \t\r\n")
	switch {
	case bytes.HasPrefix(trimmed, []byte("<")):
		return FormatGEXF, nil
	case bytes.HasPrefix(trimmed, []byte("{")):
		return FormatNodeLink, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}
