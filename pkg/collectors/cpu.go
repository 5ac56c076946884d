package collectors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"

	"github.com/arthur-debert/kifetch/pkg/facts"
)

// CPUInfo describes the first processor package.
type CPUInfo struct {
	Model   string
	Cores   int
	Threads int
	MHz     float64
}

type cpuCollector struct {
	read func() CPUInfo
}

func (cpuCollector) Name() string { return "cpu" }

func (c cpuCollector) Collect(t *facts.Table) {
	info := c.read()
	t.Set("cpu_model", info.Model)
	t.Set("cpu_cores", strconv.Itoa(info.Cores))
	t.Set("cpu_threads", strconv.Itoa(info.Threads))

	mhz, ghz := "", ""
	if info.MHz > 0 {
		whole := uint64(info.MHz)
		mhz = strconv.FormatUint(whole, 10)
		ghz = fmt.Sprintf("%.2f", float64(whole)/1000)
	}
	t.Set("cpu_freq_mhz", mhz)
	t.Set("cpu_freq_ghz", ghz)
}

func readCPU() CPUInfo {
	var info CPUInfo

	if stats, err := cpu.Info(); err == nil && len(stats) > 0 {
		info.Model = strings.TrimSpace(stats[0].ModelName)
		info.MHz = stats[0].Mhz
	}
	if n, err := cpu.Counts(false); err == nil {
		info.Cores = n
	}
	if n, err := cpu.Counts(true); err == nil {
		info.Threads = n
	}
	return info
}

func init() {
	register(cpuCollector{read: readCPU})
}
