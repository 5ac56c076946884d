// Package config loads kifetch's TOML configuration.
//
// Values are layered, later layers winning:
//
//  1. the embedded defaults (embedded/defaults.toml)
//  2. the configuration file, when it exists
//  3. KIFETCH_<SECTION>__<KEY> environment variables, for example
//     KIFETCH_GENERAL__PADDING=4 or KIFETCH_MODULES__ENABLED=os,cpu
//
// Tables such as [colors] merge key by key; lists such as layout.lines are
// replaced wholesale.
package config
