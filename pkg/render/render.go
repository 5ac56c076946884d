// Package render expands layout templates against a fact table and lays the
// result out beside a logo.
package render

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/arthur-debert/kifetch/pkg/errors"
	"github.com/arthur-debert/kifetch/pkg/facts"
	"github.com/arthur-debert/kifetch/pkg/logo"
)

// SeparatorKey is the placeholder replaced by Options.Separator.
const SeparatorKey = "separator"

var placeholder = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)

// Options holds the rendering settings taken from configuration.
type Options struct {
	// Colors maps placeholder names (color_1, color_reset, ...) to color
	// keywords understood by ANSI.
	Colors map[string]string

	// Separator replaces {separator}
	Separator string

	// Padding is the number of spaces between the logo and the text
	Padding int
}

// Template expands every {identifier} in line in a single pass. An
// identifier resolves, in order, to the configured color, the fact of that
// name, or the separator. Anything else, including a color mapped to an
// unknown keyword, is left verbatim. Substituted text is never rescanned.
func Template(line string, opts Options, f facts.Reader) string {
	return placeholder.ReplaceAllStringFunc(line, func(token string) string {
		name := token[1 : len(token)-1]

		if keyword, ok := opts.Colors[name]; ok {
			if code, ok := ANSI(keyword); ok {
				return code
			}
		}
		if value, ok := f.Get(name); ok {
			return value
		}
		if name == SeparatorKey {
			return opts.Separator
		}
		return token
	})
}

// Lines pairs each layout line with the logo line at the same index. Layout
// lines past the end of the logo get blank filler of the logo's width, and
// logo lines past the end of the layout are emitted unchanged.
func Lines(logoLines, layout []string, opts Options, f facts.Reader) []string {
	padding := strings.Repeat(" ", max(opts.Padding, 0))
	filler := strings.Repeat(" ", firstWidth(logoLines))

	out := make([]string, 0, max(len(logoLines), len(layout)))
	for i, tmpl := range layout {
		left := filler
		if i < len(logoLines) {
			left = logoLines[i]
		}
		out = append(out, left+padding+Template(tmpl, opts, f))
	}
	if len(logoLines) > len(layout) {
		out = append(out, logoLines[len(layout):]...)
	}
	return out
}

// Write renders to w, one line per output row.
func Write(w io.Writer, logoLines, layout []string, opts Options, f facts.Reader) error {
	return WriteLines(w, Lines(logoLines, layout, opts, f))
}

// WriteLines writes already rendered rows to w.
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return errors.Wrap(err, errors.ErrRenderWrite, "failed to write output")
		}
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, errors.ErrRenderWrite, "failed to write output")
	}
	return nil
}

// StripANSI removes escape sequences, for output to non-color terminals.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// firstWidth is the filler width: the rune count of the first logo line,
// which after normalization equals every line's rune count.
func firstWidth(lines []string) int {
	if len(lines) == 0 {
		return 0
	}
	return logo.Width(lines[:1])
}
