package collectors

import "github.com/arthur-debert/kifetch/pkg/facts"

// BIOSInfo identifies the firmware and motherboard.
type BIOSInfo struct {
	Vendor      string
	Version     string
	Motherboard string
}

type biosCollector struct {
	read func() BIOSInfo
}

func (biosCollector) Name() string { return "bios" }

func (c biosCollector) Collect(t *facts.Table) {
	info := c.read()
	t.Set("bios_vendor", orUnknown(info.Vendor))
	t.Set("bios_version", orUnknown(info.Version))
	t.Set("bios_motherboard", orUnknown(info.Motherboard))
}

func orUnknown(s string) string {
	if s == "" {
		return unknownLower
	}
	return s
}

func init() {
	register(biosCollector{read: readBIOS})
}
