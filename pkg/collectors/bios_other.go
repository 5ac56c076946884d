//go:build !linux && !windows

package collectors

func readBIOS() BIOSInfo {
	return BIOSInfo{}
}
