package kifetch

import (
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/kifetch/pkg/ui"
	"github.com/arthur-debert/kifetch/pkg/ui/styles"
)

// isTerminal reports whether stdout is a terminal
func isTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// formatBold returns the string formatted as bold using pterm
func formatBold(s string) string {
	// Only apply formatting if output is a terminal
	if !isTerminal() {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// formatUpper returns the string in uppercase
func formatUpper(s string) string {
	return strings.ToUpper(s)
}

// formatBoldUpper returns the string in uppercase and bold
func formatBoldUpper(s string) string {
	return formatBold(strings.ToUpper(s))
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     formatUpper,
		"boldUpper": formatBoldUpper,
	})
}

// colorEnabled resolves the color mode against w. Writers that are not
// files (test buffers, pipes wrapped by callers) only get color when it is
// forced.
func colorEnabled(mode ui.ColorMode, w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return ui.UseColor(mode, f)
	}
	return mode == ui.ColorAlways
}

// styled renders s with a named style when w is a color terminal.
func styled(w io.Writer, name, s string) string {
	f, ok := w.(*os.File)
	if !ok || !ui.DetectColor(f) {
		return s
	}
	return styles.Render(name, s)
}
