package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
)

// Environment isolates a test from the user's configuration: XDG
// directories point into a temp dir, KIFETCH_* variables are cleared, and
// the working directory is a fresh empty directory.
type Environment struct {
	// Root contains everything below
	Root string

	// WorkDir is the process working directory for the test
	WorkDir string

	// ConfigHome is XDG_CONFIG_HOME
	ConfigHome string

	// StateHome is XDG_STATE_HOME, where the log file goes
	StateHome string

	t *testing.T
}

// NewEnvironment sets up an isolated environment. Everything is restored
// when the test completes. Tests using it must not run in parallel since
// the working directory and environment are process-wide.
func NewEnvironment(t *testing.T) *Environment {
	t.Helper()

	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to resolve temp dir: %v", err)
	}

	env := &Environment{
		Root:       root,
		WorkDir:    CreateDir(t, root, "work"),
		ConfigHome: CreateDir(t, root, "config"),
		StateHome:  CreateDir(t, root, "state"),
		t:          t,
	}

	clearPrefixed(t, "KIFETCH_")
	t.Setenv("NO_COLOR", "")
	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(env.WorkDir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(prev)
	})

	return env
}

// UserConfigDir is $XDG_CONFIG_HOME/kifetch
func (e *Environment) UserConfigDir() string {
	return filepath.Join(e.ConfigHome, "kifetch")
}

// WriteUserConfig writes config.toml into the user config directory.
func (e *Environment) WriteUserConfig(content string) string {
	e.t.Helper()
	return CreateFile(e.t, e.UserConfigDir(), "config.toml", content)
}

// WriteLocalConfig writes kifetch.toml into the working directory.
func (e *Environment) WriteLocalConfig(content string) string {
	e.t.Helper()
	return CreateFile(e.t, e.WorkDir, "kifetch.toml", content)
}

// WriteLogo writes logos/<name>.txt under dir.
func (e *Environment) WriteLogo(dir, name, content string) string {
	e.t.Helper()
	return CreateFile(e.t, filepath.Join(dir, "logos"), name+".txt", content)
}

// clearPrefixed unsets every variable starting with prefix for the test.
func clearPrefixed(t *testing.T, prefix string) {
	t.Helper()
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, prefix) {
			// Setenv registers the restore, Unsetenv removes it for the test
			t.Setenv(key, "")
			_ = os.Unsetenv(key)
		}
	}
}
