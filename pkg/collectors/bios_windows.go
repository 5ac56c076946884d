//go:build windows

package collectors

import "golang.org/x/sys/windows/registry"

const biosKey = `HARDWARE\DESCRIPTION\System\BIOS`

func readBIOS() BIOSInfo {
	return BIOSInfo{
		Vendor:      getRegistryString(registry.LOCAL_MACHINE, biosKey, "BIOSVendor"),
		Version:     getRegistryString(registry.LOCAL_MACHINE, biosKey, "BIOSVersion"),
		Motherboard: getRegistryString(registry.LOCAL_MACHINE, biosKey, "BaseBoardProduct"),
	}
}
