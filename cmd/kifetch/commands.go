package kifetch

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/kifetch/internal/version"
	"github.com/arthur-debert/kifetch/pkg/collectors"
	"github.com/arthur-debert/kifetch/pkg/config"
	"github.com/arthur-debert/kifetch/pkg/errors"
	"github.com/arthur-debert/kifetch/pkg/export"
	"github.com/arthur-debert/kifetch/pkg/filesystem"
)

func newFactsCmd(opts *rootOptions) *cobra.Command {
	var (
		format  = formatValue{format: export.FormatText}
		modules string
	)

	cmd := &cobra.Command{
		Use:     "facts",
		Short:   MsgFactsShort,
		Long:    MsgFactsLong,
		Example: MsgFactsExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd, opts)
			if err != nil {
				return err
			}

			enabled := s.config.Modules.Enabled
			if cmd.Flags().Changed("modules") {
				enabled = splitList(modules)
				if err := validateModules(enabled); err != nil {
					return err
				}
			}

			table := newDispatcher(cmd, opts).Collect(enabled, s.config.Modules.Custom)

			log.Info().
				Str("format", format.String()).
				Int("facts", table.Len()).
				Msg("Exporting facts")

			out := cmd.OutOrStdout()
			return export.Write(out, format.format, table, export.Options{
				Styled: colorEnabled(opts.color.mode, out) && isTerminal(),
			})
		},
	}

	cmd.Flags().VarP(&format, "format", "f", fmt.Sprintf(MsgFlagFormat, strings.Join(export.FormatNames(), ", ")))
	cmd.Flags().StringVarP(&modules, "modules", "m", "", MsgFlagModules)
	_ = cmd.RegisterFlagCompletionFunc("format", formatCompletion)
	_ = cmd.RegisterFlagCompletionFunc("modules", modulesCompletion)

	return cmd
}

// validateModules rejects names no collector is registered under
func validateModules(names []string) error {
	known := collectors.Registry()
	for _, name := range names {
		if !known.Has(name) {
			return errors.Newf(errors.ErrInvalidInput, MsgErrUnknownModule, name, strings.Join(known.List(), ", ")).
				WithDetail("module", name)
		}
	}
	return nil
}

// modulesCompletion completes comma separated module names
func modulesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	prefix := ""
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		prefix = toComplete[:i+1]
	}

	var out []string
	for _, name := range collectors.Names() {
		out = append(out, prefix+name)
	}
	return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}

func newModulesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "modules",
		Short:   MsgModulesShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd, opts)
			if err != nil {
				return err
			}
			cfg := s.config
			out := cmd.OutOrStdout()

			names := newDispatcher(cmd, opts).Known()
			width := 0
			for _, name := range names {
				width = max(width, len(name))
			}

			fmt.Fprintln(out, styled(out, "Header", MsgModulesHeader))
			for _, name := range names {
				state := styled(out, "Disabled", MsgModuleDisabled)
				if cfg.IsEnabled(name) {
					state = styled(out, "Enabled", MsgModuleEnabled)
				}
				fmt.Fprintf(out, MsgModuleItem, styled(out, "Module", fmt.Sprintf("%-*s", width, name)), state)
			}

			if len(cfg.Modules.Custom) == 0 {
				return nil
			}

			keys := make([]string, 0, len(cfg.Modules.Custom))
			width = 0
			for key := range cfg.Modules.Custom {
				keys = append(keys, key)
				width = max(width, len(key))
			}
			sort.Strings(keys)

			fmt.Fprintln(out)
			fmt.Fprintln(out, styled(out, "Header", MsgCustomHeader))
			for _, key := range keys {
				fmt.Fprintf(out, MsgCustomItem,
					styled(out, "Module", fmt.Sprintf("%-*s", width, key)),
					styled(out, "Muted", cfg.Modules.Custom[key]))
			}
			return nil
		},
	}
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "core",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: MsgConfigPathShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd, opts)
			if err != nil {
				return err
			}
			suffix := ""
			if s.paths.UsingLocalConfig() {
				suffix = MsgConfigLocal
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.paths.ConfigFile()+suffix)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd, opts)
			if err != nil {
				return err
			}
			data, err := s.config.TOML()
			if err != nil {
				return fmt.Errorf(MsgErrRenderConfig, err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	var force, current bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd, opts)
			if err != nil {
				return err
			}
			path := s.paths.ConfigFile()

			if current {
				if !force && filesystem.Exists(s.fs, path) {
					err = errors.Newf(errors.ErrAlreadyExists, "config file %s already exists", path)
				} else {
					err = config.Save(s.fs, s.config, path)
				}
			} else {
				err = config.WriteDefault(s.fs, path, force)
			}
			if err != nil {
				return fmt.Errorf(MsgErrWriteConfig, err)
			}

			log.Info().Str("path", path).Bool("force", force).Bool("current", current).Msg("Wrote config")
			fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	initCmd.Flags().BoolVar(&current, "current", false, MsgFlagCurrent)
	cmd.AddCommand(initCmd)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

// newManCmd prints a roff man page for the whole command tree
func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "man",
		Short:  MsgManShort,
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "KIFETCH",
				Section: "1",
				Source:  "kifetch " + version.Version,
				Manual:  "kifetch manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
