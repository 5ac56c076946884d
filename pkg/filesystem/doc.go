// Package filesystem provides the small file abstraction kifetch reads logos
// and writes configuration through.
//
// NewOS talks to the real filesystem; NewAferoFS wraps any afero.Fs, which
// tests use with an in-memory filesystem.
package filesystem
