//go:build !windows

package collectors

func readPackages() PackagesInfo {
	return probePackageManagers(runCommand, unixPackageManagers)
}
