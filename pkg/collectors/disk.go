package collectors

import (
	"strings"

	"github.com/shirou/gopsutil/v4/disk"

	"github.com/arthur-debert/kifetch/pkg/facts"
)

// DiskInfo is the sum over all physical mounts, in bytes.
type DiskInfo struct {
	Total uint64
	Free  uint64
}

type diskCollector struct {
	read func() DiskInfo
}

func (diskCollector) Name() string { return "disk" }

func (c diskCollector) Collect(t *facts.Table) {
	info := c.read()
	t.SetSize("disk", info.Free, saturatingSub(info.Total, info.Free), info.Total)
}

// virtualFilesystems never hold user data and are left out of the disk sum.
var virtualFilesystems = map[string]bool{
	"sysfs":           true,
	"proc":            true,
	"devpts":          true,
	"tmpfs":           true,
	"devtmpfs":        true,
	"debugfs":         true,
	"securityfs":      true,
	"cgroup":          true,
	"cgroup2":         true,
	"pstore":          true,
	"autofs":          true,
	"mqueue":          true,
	"hugetlbfs":       true,
	"fusectl":         true,
	"fuse.gvfsd-fuse": true,
	"overlay":         true,
	"squashfs":        true,
	"tracefs":         true,
	"bpf":             true,
	"configfs":        true,
}

// physicalPartitions drops virtual filesystems and "none" devices and keeps
// the first mount of each device.
func physicalPartitions(parts []disk.PartitionStat) []disk.PartitionStat {
	seen := make(map[string]bool)
	var out []disk.PartitionStat
	for _, p := range parts {
		if virtualFilesystems[p.Fstype] || strings.HasPrefix(p.Device, "none") {
			continue
		}
		if seen[p.Device] {
			continue
		}
		seen[p.Device] = true
		out = append(out, p)
	}
	return out
}

func readDisk() DiskInfo {
	var info DiskInfo

	parts, err := disk.Partitions(false)
	if err != nil {
		return info
	}
	for _, p := range physicalPartitions(parts) {
		usage, err := disk.Usage(p.Mountpoint)
		if err != nil || usage.Total == 0 {
			continue
		}
		info.Total += usage.Total
		info.Free += usage.Free
	}
	return info
}

func init() {
	register(diskCollector{read: readDisk})
}
