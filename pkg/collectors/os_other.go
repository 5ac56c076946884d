//go:build !linux

package collectors

import (
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

func readOS() OSInfo {
	info := defaultOSInfo()

	hi, err := host.Info()
	if err != nil {
		return info
	}

	if name := strings.TrimSpace(hi.Platform + " " + hi.PlatformVersion); name != "" {
		info.Name = name
	}
	if hi.PlatformVersion != "" {
		info.Version = hi.PlatformVersion
	}
	if hi.Hostname != "" {
		info.Hostname = hi.Hostname
	}
	return info
}
