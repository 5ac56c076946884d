// Package paths resolves where kifetch reads its configuration and logos.
//
// # Resolution
//
// The configuration file is, in order:
//
//   - the path given with --config
//   - kifetch.toml in the working directory, if present
//   - $XDG_CONFIG_HOME/kifetch/config.toml
//
// The config directory (which holds logos/) is the directory of that file,
// except that KIFETCH_CONFIG_DIR always wins when set.
package paths
