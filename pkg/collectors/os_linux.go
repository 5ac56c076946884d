package collectors

import (
	"os"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

func readOS() OSInfo {
	info := defaultOSInfo()

	if data, err := os.ReadFile("/etc/os-release"); err == nil {
		if name := parseOSRelease(string(data), "PRETTY_NAME"); name != "" {
			info.Name = name
		}
		if version := parseOSRelease(string(data), "VERSION_ID"); version != "" {
			info.Version = version
		}
	}

	if data, err := os.ReadFile("/etc/hostname"); err == nil {
		if hostname := strings.TrimSpace(string(data)); hostname != "" {
			info.Hostname = hostname
		}
	}

	if info.Hostname == unknownTitle || info.Version == unknownTitle {
		if hi, err := host.Info(); err == nil {
			if info.Hostname == unknownTitle && hi.Hostname != "" {
				info.Hostname = hi.Hostname
			}
			if info.Version == unknownTitle && hi.PlatformVersion != "" {
				info.Version = hi.PlatformVersion
			}
		}
	}

	return info
}
