//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package collectors

import "golang.org/x/sys/unix"

func readKernel() KernelInfo {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return KernelInfo{Version: unknownTitle}
	}
	release := unix.ByteSliceToString(uts.Release[:])
	if release == "" {
		release = unknownTitle
	}
	return KernelInfo{Version: release}
}
