// Package registry provides a generic, type-safe registry keyed by name.
// kifetch uses it for the process-wide collector table, populated once
// through init() functions and read-only afterwards.
package registry
