//go:build windows

package collectors

const videoControllerQuery = "Get-CimInstance Win32_VideoController | Select-Object -First 1 -Property Name,AdapterRAM | ConvertTo-Json -Compress"

func readGPU() GPUInfo {
	out, err := runPowerShell(videoControllerQuery)
	if err != nil {
		return GPUInfo{Model: unknownTitle}
	}
	if info, ok := parseVideoController(out); ok {
		return info
	}
	return GPUInfo{Model: unknownTitle}
}
