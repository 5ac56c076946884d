// Package export writes a fact table in machine- or human-readable formats,
// for `kifetch facts`.
package export

import (
	"strings"

	"github.com/arthur-debert/kifetch/pkg/errors"
)

// Format represents the output format type
type Format int

const (
	// FormatText renders aligned "key: value" lines
	FormatText Format = iota
	// FormatJSON renders a JSON object
	FormatJSON
	// FormatYAML renders a YAML mapping
	FormatYAML
	// FormatXML renders <facts><fact key="...">value</fact></facts>
	FormatXML
	// FormatMarkdown renders a two-column table, styled for terminals
	FormatMarkdown
	// FormatEnv renders shell-sourceable KIFETCH_* assignments
	FormatEnv
)

var formatNames = map[Format]string{
	FormatText:     "text",
	FormatJSON:     "json",
	FormatYAML:     "yaml",
	FormatXML:      "xml",
	FormatMarkdown: "markdown",
	FormatEnv:      "env",
}

// String returns the string representation of the format
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "plain", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "xml":
		return FormatXML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "env", "shell":
		return FormatEnv, nil
	default:
		return FormatText, errors.Newf(errors.ErrUnknownFormat, "unknown format: %s", s).
			WithDetail("format", s)
	}
}

// FormatNames lists the canonical format names, for flag help.
func FormatNames() []string {
	return []string{"text", "json", "yaml", "xml", "markdown", "env"}
}
