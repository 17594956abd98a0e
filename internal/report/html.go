package report

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
)

// compiledTemplate is parsed at init time to fail fast on template errors.
var compiledTemplate *template.Template

func init() {
	compiledTemplate = template.Must(template.New("report").Parse(htmlTemplate))
}

// Assets holds the script and stylesheet URLs referenced by the HTML page.
type Assets struct {
	D3           string `yaml:"d3" json:"d3" validate:"required"`
	TabulatorJS  string `yaml:"tabulator_js" json:"tabulator_js" validate:"required"`
	TabulatorCSS string `yaml:"tabulator_css" json:"tabulator_css" validate:"required"`
	XLSX         string `yaml:"xlsx" json:"xlsx" validate:"required"`
}

// DefaultAssets returns CDN URLs for the viewer's libraries.
func DefaultAssets() Assets {
	return Assets{
		D3:           "https://unpkg.com/d3@7/dist/d3.min.js",
		TabulatorJS:  "https://unpkg.com/tabulator-tables@5/dist/js/tabulator.min.js",
		TabulatorCSS: "https://unpkg.com/tabulator-tables@5/dist/css/tabulator_site.min.css",
		XLSX:         "https://unpkg.com/xlsx@0.18.5/dist/xlsx.full.min.js",
	}
}

// templateData holds data for the HTML template.
type templateData struct {
	Title       string
	Assets      Assets
	GraphJSON   template.JS
	VertexJSON  template.JS
	EdgeJSON    template.JS
	PaletteJSON template.JS
	LegendJSON  template.JS
}

// WriteHTML renders r as a single HTML document.
func WriteHTML(w io.Writer, r *Report, assets Assets) error {
	data := templateData{Title: r.Title, Assets: assets}

	parts := []struct {
		dst *template.JS
		v   any
	}{
		{&data.GraphJSON, r.Graph},
		{&data.VertexJSON, r.VertexTable},
		{&data.EdgeJSON, r.EdgeTable},
		{&data.PaletteJSON, r.Palette},
		{&data.LegendJSON, r.Legend},
	}
	for _, p := range parts {
		s, err := embeddedJSON(p.v)
		if err != nil {
			return fmt.Errorf("marshaling report data: %w", err)
		}
		*p.dst = template.JS(s)
	}

	var buf bytes.Buffer
	if err := compiledTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("executing HTML template: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}
