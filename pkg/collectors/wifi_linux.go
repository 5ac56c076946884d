package collectors

import "strings"

func readWifi(iface string) (ssid, signal string) {
	if !strings.HasPrefix(iface, "wl") {
		return "", ""
	}
	if out, err := runCommand("iwgetid", "-r", iface); err == nil {
		ssid = strings.TrimSpace(string(out))
	}
	if out, err := runCommand("iwconfig", iface); err == nil {
		signal = parseIwconfigSignal(string(out))
	}
	return ssid, signal
}
