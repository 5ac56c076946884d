package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/kifetch/pkg/filesystem"
)

func setConfigHome(t *testing.T, dir string) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		local     bool
		explicit  string
		envDir    string
		wantFile  func(work, home string) string
		wantDir   func(work, home string) string
		wantLocal bool
	}{
		{
			name:     "user config by default",
			wantFile: func(_, home string) string { return filepath.Join(home, "kifetch", "config.toml") },
			wantDir:  func(_, home string) string { return filepath.Join(home, "kifetch") },
		},
		{
			name:      "local kifetch.toml",
			local:     true,
			wantFile:  func(work, _ string) string { return filepath.Join(work, "kifetch.toml") },
			wantDir:   func(work, _ string) string { return work },
			wantLocal: true,
		},
		{
			name:     "explicit path beats local file",
			local:    true,
			explicit: "/opt/kf/custom.toml",
			wantFile: func(_, _ string) string { return "/opt/kf/custom.toml" },
			wantDir:  func(_, _ string) string { return "/opt/kf" },
		},
		{
			name:     "config dir override",
			envDir:   "/srv/kifetch",
			wantFile: func(_, _ string) string { return filepath.Join("/srv/kifetch", "config.toml") },
			wantDir:  func(_, _ string) string { return "/srv/kifetch" },
		},
		{
			name:      "config dir override with local file",
			local:     true,
			envDir:    "/srv/kifetch",
			wantFile:  func(work, _ string) string { return filepath.Join(work, "kifetch.toml") },
			wantDir:   func(_, _ string) string { return "/srv/kifetch" },
			wantLocal: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			work := t.TempDir()
			setConfigHome(t, home)
			t.Setenv(EnvConfigDir, tt.envDir)

			fs := filesystem.NewOS()
			if tt.local {
				require.NoError(t, os.WriteFile(filepath.Join(work, LocalConfigFile), []byte(""), 0644))
			}

			p, err := New(fs, work, tt.explicit)
			require.NoError(t, err)

			assert.Equal(t, tt.wantFile(work, home), p.ConfigFile())
			assert.Equal(t, tt.wantDir(work, home), p.ConfigDir())
			assert.Equal(t, filepath.Join(tt.wantDir(work, home), "logos"), p.LogosDir())
			assert.Equal(t, tt.wantLocal, p.UsingLocalConfig())
			assert.Equal(t, work, p.WorkDir())
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, expandHome("~"))
	assert.Equal(t, filepath.Join(home, "cfg", "k.toml"), expandHome("~/cfg/k.toml"))
	assert.Equal(t, "/abs/path", expandHome("/abs/path"))
	assert.Equal(t, "~user/x", expandHome("~user/x"))
	assert.Equal(t, "", expandHome(""))
}

func TestLogFile(t *testing.T) {
	state := t.TempDir()
	t.Setenv("XDG_STATE_HOME", state)
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	path, err := LogFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(state, "kifetch", "kifetch.log"), path)

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
