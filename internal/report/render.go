package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// Format names an output format.
type Format string

const (
	FormatHTML    Format = "html"
	FormatJSON    Format = "json"
	FormatECharts Format = "echarts"
)

// ValidFormats lists the supported output formats.
var ValidFormats = []Format{FormatHTML, FormatJSON, FormatECharts}

// Extension returns the file extension written for the format.
func (f Format) Extension() string {
	if f == FormatJSON {
		return ".json"
	}
	return ".html"
}

// Render writes r to w in the given format.
func Render(w io.Writer, r *Report, format Format, assets Assets) error {
	if r == nil {
		return fmt.Errorf("report cannot be nil")
	}
	switch format {
	case "", FormatHTML:
		return WriteHTML(w, r, assets)
	case FormatJSON:
		return WriteJSON(w, r)
	case FormatECharts:
		return WriteECharts(w, r)
	default:
		return fmt.Errorf("invalid format %q: must be html, json, or echarts", format)
	}
}

// WriteJSON writes the report data as indented JSON.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report JSON: %w", err)
	}
	return nil
}

// embeddedJSON marshals v compactly for inclusion in a script block.
// encoding/json escapes <, > and & so the result cannot close the script.
func embeddedJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
