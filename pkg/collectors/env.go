package collectors

import (
	"os"
	"runtime"
	"strings"

	"github.com/arthur-debert/kifetch/pkg/facts"
)

type envCollector struct {
	goos     string
	goarch   string
	lookupFn func(string) (string, bool)
}

func (envCollector) Name() string { return "env" }

func (c envCollector) Collect(t *facts.Table) {
	get := func(key string) string {
		if v, ok := c.lookupFn(key); ok {
			return v
		}
		return unknownLower
	}
	windows := c.goos == "windows"

	shellVar, userVar := "SHELL", "USER"
	if windows {
		shellVar, userVar = "ComSpec", "USERNAME"
	}

	t.Set("env_shell", baseName(get(shellVar)))
	t.Set("env_username", get(userVar))
	t.Set("env_home", get("HOME"))
	t.Set("env_lang", get("LANG"))
	if !windows {
		t.Set("env_term", get("TERM"))
	}
	t.Set("env_editor", get("EDITOR"))
	if !windows {
		t.Set("env_display", get("DISPLAY"))
	}
	t.Set("env_session", get("XDG_SESSION_DESKTOP"))
	t.Set("env_arch", c.goarch)
	t.Set("env_os", c.goos)
}

// baseName strips directories using both path separators, so a Windows
// ComSpec is handled on any host.
func baseName(p string) string {
	if i := strings.LastIndexAny(p, `/\`); i >= 0 {
		return p[i+1:]
	}
	return p
}

func init() {
	register(envCollector{goos: runtime.GOOS, goarch: runtime.GOARCH, lookupFn: os.LookupEnv})
}
