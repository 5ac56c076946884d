package collectors

import (
	"bytes"
	"strconv"

	"github.com/arthur-debert/kifetch/pkg/facts"
)

// PackageCount is the number of packages one manager reports.
type PackageCount struct {
	Manager string
	Count   int
}

// PackagesInfo lists detected managers in probe order. The first entry is the
// primary manager.
type PackagesInfo struct {
	Managers []PackageCount
}

type packagesCollector struct {
	read func() PackagesInfo
}

func (packagesCollector) Name() string { return "packages" }

func (c packagesCollector) Collect(t *facts.Table) {
	info := c.read()

	primary, manager, total := 0, unknownTitle, 0
	for i, m := range info.Managers {
		if i == 0 {
			primary, manager = m.Count, m.Manager
		}
		total += m.Count
		t.Set("packages_"+m.Manager, strconv.Itoa(m.Count))
	}

	t.Set("packages", strconv.Itoa(primary))
	t.Set("package_manager", manager)
	t.Set("packages_total", strconv.Itoa(total))
}

// packageManager is a listing command printing one package per line.
type packageManager struct {
	name string
	cmd  string
	args []string
}

var unixPackageManagers = []packageManager{
	{name: "dpkg", cmd: "dpkg-query", args: []string{"-f", "${binary:Package}\n", "-W"}},
	{name: "rpm", cmd: "rpm", args: []string{"-qa"}},
	{name: "pacman", cmd: "pacman", args: []string{"-Qq"}},
	{name: "apk", cmd: "apk", args: []string{"info"}},
	{name: "brew", cmd: "brew", args: []string{"list", "-1"}},
}

// probePackageManagers runs each manager's listing command and keeps those
// that succeed.
func probePackageManagers(run CommandRunner, managers []packageManager) PackagesInfo {
	var info PackagesInfo
	for _, m := range managers {
		out, err := run(m.cmd, m.args...)
		if err != nil {
			continue
		}
		info.Managers = append(info.Managers, PackageCount{Manager: m.name, Count: countLines(out)})
	}
	return info
}

func countLines(out []byte) int {
	n := 0
	for _, line := range bytes.Split(out, []byte("\n")) {
		if len(bytes.TrimSpace(line)) > 0 {
			n++
		}
	}
	return n
}

func init() {
	register(packagesCollector{read: readPackages})
}
