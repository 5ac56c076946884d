//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly || windows)

package collectors

import "github.com/shirou/gopsutil/v4/host"

func readKernel() KernelInfo {
	version, err := host.KernelVersion()
	if err != nil || version == "" {
		return KernelInfo{Version: unknownTitle}
	}
	return KernelInfo{Version: version}
}
