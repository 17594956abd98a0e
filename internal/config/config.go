// Package config loads the report configuration from YAML.
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/matsen/gexfviz/internal/attr"
	"github.com/matsen/gexfviz/internal/layout"
	"github.com/matsen/gexfviz/internal/palette"
	"github.com/matsen/gexfviz/internal/report"
	"github.com/matsen/gexfviz/internal/table"
)

// ErrInvalid is returned for configuration that cannot be parsed or fails validation.
var ErrInvalid = errors.New("invalid configuration")

// validate is shared; validator.Validate caches struct metadata.
var validate = validator.New()

// Config is the full set of report settings. Every field has a default, so a
// config file only needs the keys it changes.
type Config struct {
	Layout     layout.Options  `yaml:"layout"`
	NodeRadius float64         `yaml:"node_radius" validate:"gt=0"`
	Palette    palette.Palette `yaml:"palette"`
	Title      string          `yaml:"title"`
	Format     report.Format   `yaml:"format" validate:"omitempty,oneof=html json echarts"`
	NodeOrder  table.Order     `yaml:"node_order" validate:"omitempty,oneof=input connections"`
	Fields     attr.Fields     `yaml:"fields"`
	Assets     report.Assets   `yaml:"assets"`
}

// Default returns the built-in configuration.
func Default() *Config {
	build := report.DefaultBuildOptions()
	return &Config{
		Layout:     layout.DefaultOptions(),
		NodeRadius: build.NodeRadius,
		Palette:    append(palette.Palette(nil), palette.Default...),
		Title:      build.Title,
		Format:     report.FormatHTML,
		NodeOrder:  build.NodeOrder,
		Fields:     build.Fields,
		Assets:     report.DefaultAssets(),
	}
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks struct constraints and the palette.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, formatValidationError(err))
	}
	if err := c.Palette.Validate(); err != nil {
		return fmt.Errorf("%w: palette: %v", ErrInvalid, err)
	}
	return nil
}

// YAML encodes the configuration.
func (c *Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return data, nil
}

// ReportOptions converts the configuration into pipeline options.
func (c *Config) ReportOptions() report.Options {
	return report.Options{
		Layout: c.Layout,
		Build: report.BuildOptions{
			Title:      c.Title,
			NodeRadius: c.NodeRadius,
			Palette:    c.Palette,
			Fields:     c.Fields,
			NodeOrder:  c.NodeOrder,
		},
		Format: c.Format,
		Assets: c.Assets,
	}
}

// formatValidationError reports the first failed constraint by its namespace,
// e.g. "Config.Layout.Scale: must be greater than 0".
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	for _, e := range validationErrs {
		field := e.Namespace()
		param := e.Param()

		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min":
			return fmt.Errorf("%s: must have at least %s entries", field, param)
		case "gt":
			return fmt.Errorf("%s: must be greater than %s", field, param)
		case "gte":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "oneof":
			return fmt.Errorf("%s: must be one of [%s]", field, param)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
		}
	}
	return err
}
