package collectors

import "github.com/arthur-debert/kifetch/pkg/facts"

// KernelInfo holds the running kernel release.
type KernelInfo struct {
	Version string
}

type kernelCollector struct {
	read func() KernelInfo
}

func (kernelCollector) Name() string { return "kernel" }

func (c kernelCollector) Collect(t *facts.Table) {
	t.Set("kernel_version", c.read().Version)
}

func init() {
	register(kernelCollector{read: readKernel})
}
