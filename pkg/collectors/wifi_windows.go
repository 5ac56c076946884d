//go:build windows

package collectors

func readWifi(string) (ssid, signal string) {
	out, err := runCommand("netsh", "wlan", "show", "interfaces")
	if err != nil {
		return "", ""
	}
	return parseNetshInterfaces(string(out))
}
