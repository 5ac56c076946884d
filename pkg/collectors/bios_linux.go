package collectors

import "github.com/zcalusic/sysinfo"

func readBIOS() BIOSInfo {
	var si sysinfo.SysInfo
	si.GetSysInfo()

	return BIOSInfo{
		Vendor:      si.BIOS.Vendor,
		Version:     si.BIOS.Version,
		Motherboard: si.Board.Name,
	}
}
