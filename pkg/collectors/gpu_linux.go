package collectors

func readGPU() GPUInfo {
	info := GPUInfo{Model: unknownTitle}

	out, err := runCommand("lspci", "-v")
	if err != nil {
		return info
	}
	if model := parseLspci(string(out)); model != "" {
		info.Model = model
	}
	return info
}
