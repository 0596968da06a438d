package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format for command results.
type OutputFormat string

const (
	// FormatJSON is indented JSON output (default).
	FormatJSON OutputFormat = "json"
	// FormatYAML is YAML output.
	FormatYAML OutputFormat = "yaml"
)

// Formatter formats command output.
type Formatter interface {
	Format(data interface{}) ([]byte, error)
	FormatTo(w io.Writer, data interface{}) error
}

// JSONFormatter formats output as indented JSON.
type JSONFormatter struct{}

// Format converts data to JSON format.
func (f *JSONFormatter) Format(data interface{}) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}

// FormatTo writes data to writer in JSON format.
func (f *JSONFormatter) FormatTo(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// YAMLFormatter formats output as YAML.
type YAMLFormatter struct{}

// Format converts data to YAML format.
func (f *YAMLFormatter) Format(data interface{}) ([]byte, error) {
	return yaml.Marshal(data)
}

// FormatTo writes data to writer in YAML format.
func (f *YAMLFormatter) FormatTo(w io.Writer, data interface{}) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	encoder.SetIndent(2)
	return encoder.Encode(data)
}

// NewFormatter creates a new formatter for the specified format. Unknown
// formats fall back to JSON.
func NewFormatter(format OutputFormat) Formatter {
	switch format {
	case FormatYAML:
		return &YAMLFormatter{}
	default:
		return &JSONFormatter{}
	}
}

// ParseFormat converts a format name into an OutputFormat.
func ParseFormat(name string) (OutputFormat, error) {
	switch OutputFormat(name) {
	case FormatJSON, FormatYAML:
		return OutputFormat(name), nil
	default:
		return "", fmt.Errorf("unknown output format %q: expected json or yaml", name)
	}
}
