// Package ui decides how kifetch's output is colored.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorMode controls whether ANSI sequences are kept in the output
type ColorMode int

const (
	// ColorAlways keeps escape sequences regardless of the terminal
	ColorAlways ColorMode = iota
	// ColorAuto keeps them only on a color-capable terminal
	ColorAuto
	// ColorNever strips them
	ColorNever
)

// String returns the flag spelling of the mode
func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorAuto:
		return "auto"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseColorMode parses a --color value
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "always", "":
		return ColorAlways, nil
	case "auto":
		return ColorAuto, nil
	case "never", "none", "off":
		return ColorNever, nil
	default:
		return ColorAlways, fmt.Errorf("unknown color mode: %s", s)
	}
}

// UseColor resolves a mode against the output file.
func UseColor(mode ColorMode, output *os.File) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	return DetectColor(output)
}

// DetectColor reports whether output is a terminal that renders color.
// NO_COLOR disables color.
func DetectColor(output *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check if we're being piped or redirected
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return false
	}

	return termenv.NewOutput(output).ColorProfile() != termenv.Ascii
}
