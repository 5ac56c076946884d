//go:build !linux && !windows

package collectors

func readGPU() GPUInfo {
	return GPUInfo{Model: unknownTitle}
}
