package kifetch

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/kifetch/internal/version"
	"github.com/arthur-debert/kifetch/pkg/config"
	"github.com/arthur-debert/kifetch/pkg/dispatcher"
	"github.com/arthur-debert/kifetch/pkg/filesystem"
	"github.com/arthur-debert/kifetch/pkg/logging"
	"github.com/arthur-debert/kifetch/pkg/logo"
	"github.com/arthur-debert/kifetch/pkg/paths"
	"github.com/arthur-debert/kifetch/pkg/render"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "kifetch",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, opts)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	opts.register(rootCmd.PersistentFlags())
	_ = rootCmd.RegisterFlagCompletionFunc("color", colorCompletion)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newFactsCmd(opts))
	rootCmd.AddCommand(newModulesCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	// Initialize topic-based help system
	installTopics(rootCmd)

	return rootCmd
}

// session is the state every command starts from: resolved paths and the
// effective configuration with flag overrides applied.
type session struct {
	fs     filesystem.FS
	paths  paths.Paths
	config *config.Config
}

// loadSession resolves paths and loads the configuration. A configuration
// file that cannot be read or parsed is reported on stderr and the command
// continues with the defaults.
func loadSession(cmd *cobra.Command, opts *rootOptions) (*session, error) {
	fs := filesystem.NewOS()

	p, err := paths.New(fs, "", opts.configPath)
	if err != nil {
		return nil, fmt.Errorf(MsgErrInitPaths, err)
	}

	log.Debug().
		Str("config_file", p.ConfigFile()).
		Str("config_dir", p.ConfigDir()).
		Bool("local", p.UsingLocalConfig()).
		Msg("Resolved paths")

	cfg, err := config.Load(fs, p.ConfigFile())
	if err != nil {
		if cfg == nil {
			return nil, err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), MsgConfigFallback, err)
	}
	opts.apply(cmd, cfg)

	return &session{fs: fs, paths: p, config: cfg}, nil
}

// newDispatcher builds a dispatcher honouring --debug and KIFETCH_DEBUG
func newDispatcher(cmd *cobra.Command, opts *rootOptions) *dispatcher.Dispatcher {
	return dispatcher.New(dispatcher.Options{
		Debug:    opts.debugEnabled(),
		DebugOut: cmd.ErrOrStderr(),
	})
}

// runFetch is the default command: collect, load the logo, render.
func runFetch(cmd *cobra.Command, opts *rootOptions) error {
	s, err := loadSession(cmd, opts)
	if err != nil {
		return err
	}
	cfg := s.config

	table := newDispatcher(cmd, opts).Collect(cfg.Modules.Enabled, cfg.Modules.Custom)

	loader := logo.NewLoader(s.fs, s.paths.WorkDir(), s.paths.ConfigDir())
	logoLines := loader.Load(cfg.General.Logo, cfg.General.LogoPath)

	lines := render.Lines(logoLines, cfg.Layout.Lines, render.Options{
		Colors:    cfg.Colors,
		Separator: cfg.General.Separator,
		Padding:   cfg.General.Padding,
	}, table)

	out := cmd.OutOrStdout()
	if !colorEnabled(opts.color.mode, out) {
		for i, line := range lines {
			lines[i] = render.StripANSI(line)
		}
	}

	log.Debug().
		Int("facts", table.Len()).
		Int("lines", len(lines)).
		Msg("Rendered output")

	return render.WriteLines(out, lines)
}
