package collectors

import (
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/arthur-debert/kifetch/pkg/facts"
)

// MemoryInfo holds physical memory figures in bytes. Available is nil when
// the platform does not report it.
type MemoryInfo struct {
	Total     uint64
	Free      uint64
	Available *uint64
}

type memoryCollector struct {
	read func() MemoryInfo
}

func (memoryCollector) Name() string { return "memory" }

func (c memoryCollector) Collect(t *facts.Table) {
	info := c.read()
	t.SetSize("memory", info.Free, saturatingSub(info.Total, info.Free), info.Total)

	if info.Available == nil {
		t.Set("memory_available_free", notAvailable)
		t.Set("memory_available_used", notAvailable)
		t.Set("memory_available_total", notAvailable)
		return
	}
	avail := *info.Available
	t.SetSize("memory_available", avail, saturatingSub(info.Total, avail), info.Total)
}

func readMemory() MemoryInfo {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return MemoryInfo{}
	}
	info := MemoryInfo{Total: vm.Total, Free: vm.Free}
	if vm.Available > 0 {
		avail := vm.Available
		info.Available = &avail
	}
	return info
}

// SwapInfo holds swap space figures in bytes.
type SwapInfo struct {
	Total uint64
	Free  uint64
}

type swapCollector struct {
	read func() SwapInfo
}

func (swapCollector) Name() string { return "swap" }

func (c swapCollector) Collect(t *facts.Table) {
	info := c.read()
	t.SetSize("swap", info.Free, saturatingSub(info.Total, info.Free), info.Total)
}

func readSwap() SwapInfo {
	sm, err := mem.SwapMemory()
	if err != nil {
		return SwapInfo{}
	}
	return SwapInfo{Total: sm.Total, Free: sm.Free}
}

func saturatingSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}

func init() {
	register(memoryCollector{read: readMemory})
	register(swapCollector{read: readSwap})
}
