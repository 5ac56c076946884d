// Package testutil provides utilities for testing kifetch components.
//
// Key components:
//   - Environment: isolated XDG directories and working directory for tests
//     that resolve configuration and logos from disk
//   - File helpers: CreateFile, CreateDir and ReadFile fail the test on error
//   - Runner: scripted command results for dispatcher and collector tests
//
// Usage guidelines:
//   - Tests that only need an in-memory filesystem use filesystem.NewMemory
//   - Tests that go through the CLI or os.Getwd use NewEnvironment
//   - No test should depend on the host's hardware or installed tools
package testutil
