package kifetch

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/arthur-debert/kifetch/pkg/config"
	"github.com/arthur-debert/kifetch/pkg/export"
	"github.com/arthur-debert/kifetch/pkg/ui"
)

// colorValue adapts ui.ColorMode to a flag
type colorValue struct {
	mode ui.ColorMode
}

var _ pflag.Value = (*colorValue)(nil)

func (c *colorValue) String() string { return c.mode.String() }
func (c *colorValue) Type() string   { return "mode" }

func (c *colorValue) Set(s string) error {
	mode, err := ui.ParseColorMode(s)
	if err != nil {
		return err
	}
	c.mode = mode
	return nil
}

// formatValue adapts export.Format to a flag
type formatValue struct {
	format export.Format
}

var _ pflag.Value = (*formatValue)(nil)

func (f *formatValue) String() string { return f.format.String() }
func (f *formatValue) Type() string   { return "format" }

func (f *formatValue) Set(s string) error {
	format, err := export.ParseFormat(s)
	if err != nil {
		return err
	}
	f.format = format
	return nil
}

// rootOptions holds the global flags shared by every command
type rootOptions struct {
	verbosity  int
	configPath string
	logo       string
	logoPath   string
	padding    int
	debug      bool
	color      colorValue
}

func (o *rootOptions) register(flags *pflag.FlagSet) {
	flags.CountVarP(&o.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVarP(&o.configPath, "config", "c", "", MsgFlagConfig)
	flags.StringVar(&o.logo, "logo", "", MsgFlagLogo)
	flags.StringVar(&o.logoPath, "logo-path", "", MsgFlagLogoPath)
	flags.IntVar(&o.padding, "padding", 0, MsgFlagPadding)
	flags.BoolVar(&o.debug, "debug", false, MsgFlagDebug)
	flags.Var(&o.color, "color", MsgFlagColor)
}

// apply lays explicitly set flags over the loaded configuration
func (o *rootOptions) apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("logo") {
		cfg.General.Logo = o.logo
	}
	if flags.Changed("logo-path") {
		cfg.General.LogoPath = o.logoPath
	}
	if flags.Changed("padding") {
		cfg.General.Padding = max(o.padding, 0)
	}
}

// debugEnabled combines the flag and the environment signal
func (o *rootOptions) debugEnabled() bool {
	return o.debug || config.DebugEnabled()
}

// splitList parses a comma separated flag value, dropping empty items
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// colorCompletion completes --color values
func colorCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{
		ui.ColorAlways.String(),
		ui.ColorAuto.String(),
		ui.ColorNever.String(),
	}, cobra.ShellCompDirectiveNoFileComp
}

// formatCompletion completes --format values
func formatCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return export.FormatNames(), cobra.ShellCompDirectiveNoFileComp
}
