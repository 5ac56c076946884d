package collectors

import (
	"bufio"
	"runtime"
	"strings"

	"github.com/arthur-debert/kifetch/pkg/facts"
)

// OSInfo describes the operating system and host name.
type OSInfo struct {
	Name     string
	Version  string
	Hostname string
}

func defaultOSInfo() OSInfo {
	return OSInfo{
		Name:     runtime.GOOS + " " + runtime.GOARCH,
		Version:  unknownTitle,
		Hostname: unknownTitle,
	}
}

type osCollector struct {
	read func() OSInfo
}

func (osCollector) Name() string { return "os" }

func (c osCollector) Collect(t *facts.Table) {
	info := c.read()
	t.Set("os_name", info.Name)
	t.Set("os_version", info.Version)
	t.Set("os_hostname", info.Hostname)
}

func init() {
	register(osCollector{read: readOS})
}

// parseOSRelease extracts a field such as PRETTY_NAME from os-release content.
func parseOSRelease(content, field string) string {
	prefix := field + "="
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, prefix) {
			continue
		}
		value := strings.TrimPrefix(line, prefix)
		return strings.Trim(value, `"'`)
	}
	return ""
}
