//go:build !linux && !windows

package collectors

func readWifi(string) (ssid, signal string) {
	return "", ""
}
