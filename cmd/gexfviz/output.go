package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/matsen/gexfviz/internal/report"
)

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// outputJSON writes a value as formatted JSON.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// reportError writes err to stderr in the appropriate format (human or JSON).
func reportError(stderr io.Writer, human bool, err error) {
	if human {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return
	}
	if encErr := outputJSON(stderr, ErrorResponse{Error: err.Error()}); encErr != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
	}
}

// writeResult reports a written report.
func writeResult(w io.Writer, human bool, res report.Result) error {
	if human {
		_, err := fmt.Fprintf(w, "Report written to %s (%s, %d nodes, %d edges)\n",
			res.Output, humanize.Bytes(uint64(res.Bytes)), res.Nodes, res.Edges)
		return err
	}
	return outputJSON(w, res)
}
