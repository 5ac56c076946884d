//go:build windows

package collectors

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func readKernel() KernelInfo {
	v := windows.RtlGetVersion()
	if v == nil {
		return KernelInfo{Version: unknownTitle}
	}
	return KernelInfo{Version: fmt.Sprintf("%d.%d.%d", v.MajorVersion, v.MinorVersion, v.BuildNumber)}
}
