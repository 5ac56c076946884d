package kifetch

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Print system information next to an ASCII-art logo"
	MsgFactsShort      = "Print the collected facts instead of the logo layout"
	MsgModulesShort    = "List built-in modules and whether they are enabled"
	MsgConfigShort     = "Inspect or create the configuration file"
	MsgConfigPathShort = "Print the configuration file path"
	MsgConfigShowShort = "Print the effective configuration as TOML"
	MsgConfigInitShort = "Write the default configuration file"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate the man page"

	// Status messages
	MsgConfigFallback = "Failed to load config: %v; using defaults\n"
	MsgConfigWritten  = "Wrote configuration to %s\n"
	MsgVersionFormat  = "kifetch %s (commit %s, built %s)\n"
	MsgModuleEnabled  = "enabled"
	MsgModuleDisabled = "disabled"
	MsgModuleItem     = "  %s  %s\n"
	MsgModulesHeader  = "Built-in modules"
	MsgCustomHeader   = "Custom modules"
	MsgCustomItem     = "  %s  %s\n"
	MsgConfigLocal    = " (local)"

	// Error messages
	MsgErrInitPaths     = "failed to initialize paths: %w"
	MsgErrWriteConfig   = "failed to write config: %w"
	MsgErrRenderConfig  = "failed to render config: %w"
	MsgErrUnknownModule = "unknown module %q (known: %s)"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Configuration file (default ./kifetch.toml or $XDG_CONFIG_HOME/kifetch/config.toml)"
	MsgFlagLogo     = "Logo name, looked up as logos/<name>.txt"
	MsgFlagLogoPath = "Explicit logo file path"
	MsgFlagPadding  = "Spaces between the logo and the text"
	MsgFlagDebug    = "Print per-module timings on stderr (same as KIFETCH_DEBUG)"
	MsgFlagColor    = "Color output: always, auto or never"
	MsgFlagFormat   = "Output format: %s"
	MsgFlagModules  = "Comma separated built-in modules to run instead of the configured ones"
	MsgFlagForce    = "Overwrite an existing configuration file"
	MsgFlagCurrent  = "Write the effective configuration instead of the commented defaults"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/facts-long.txt
	msgFactsLongRaw string
	MsgFactsLong    = strings.TrimSpace(msgFactsLongRaw)

	//go:embed msgs/facts-example.txt
	msgFactsExampleRaw string
	MsgFactsExample    = strings.TrimRight(msgFactsExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
