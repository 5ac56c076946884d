// Package dispatcher turns the configured module list into one facts.Table.
//
// Built-in modules are looked up by name in a collector registry and run in
// the configured order; names with no collector are skipped. Custom modules
// are shell commands whose trimmed standard output becomes the fact
// custom_<key>. They run after the built-ins, in ascending key order, and a
// command that fails contributes nothing.
//
// Nothing here returns an error: every failure degrades to a missing or
// defaulted fact so a fetch always produces output.
package dispatcher
