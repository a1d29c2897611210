// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OutputFormat selects how a report is rendered.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputYAML OutputFormat = "yaml"
	OutputJSON OutputFormat = "json"
)

// Config holds the settings for an extraction run. Values come from the
// config file, TRAVEL_CATALOG_* environment variables, and command flags.
type Config struct {
	// Document is the path of the catalogue to read (.docx, .txt, or .md).
	Document string `json:"document" yaml:"document" mapstructure:"document" validate:"required"`

	// Format selects the report rendering: text, yaml, or json.
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format" validate:"required,oneof=text yaml json"`

	// Output is an optional file path for the rendered report. Empty means stdout.
	Output string `json:"output,omitempty" yaml:"output,omitempty" mapstructure:"output"`

	// NoColor disables terminal styling in the text report.
	NoColor bool `json:"no_color" yaml:"no_color" mapstructure:"no_color"`

	// Verbose enables debug logging.
	Verbose bool `json:"verbose" yaml:"verbose" mapstructure:"verbose"`
}
