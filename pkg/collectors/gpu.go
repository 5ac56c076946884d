package collectors

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/arthur-debert/kifetch/pkg/facts"
)

// GPUInfo describes the primary display adapter.
type GPUInfo struct {
	Model     string
	VRAMBytes uint64
}

type gpuCollector struct {
	read func() GPUInfo
}

func (gpuCollector) Name() string { return "gpu" }

func (c gpuCollector) Collect(t *facts.Table) {
	info := c.read()
	t.Set("gpu_model", info.Model)

	size := facts.SizeOf(float64(info.VRAMBytes))
	t.Set("gpu_vram", fmt.Sprintf("%.2f", size.Value))
	t.Set("gpu_vram_metric", size.Metric)
}

func init() {
	register(gpuCollector{read: readGPU})
}

// parseLspci returns the device name of the first VGA, 3D or Display
// controller in lspci output, or "" when there is none.
func parseLspci(output string) string {
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, "VGA") && !strings.Contains(line, "3D") && !strings.Contains(line, "Display") {
			continue
		}
		parts := strings.SplitN(line, ":", 3)
		if len(parts) < 3 {
			continue
		}
		if name := strings.TrimSpace(parts[2]); name != "" {
			return name
		}
	}
	return ""
}

type videoController struct {
	Name       string `json:"Name"`
	AdapterRAM uint64 `json:"AdapterRAM"`
}

// parseVideoController decodes the JSON emitted by
// Get-CimInstance Win32_VideoController | ConvertTo-Json.
func parseVideoController(data []byte) (GPUInfo, bool) {
	var vc videoController
	if err := json.Unmarshal(data, &vc); err != nil || vc.Name == "" {
		return GPUInfo{}, false
	}
	return GPUInfo{Model: strings.TrimSpace(vc.Name), VRAMBytes: vc.AdapterRAM}, true
}
