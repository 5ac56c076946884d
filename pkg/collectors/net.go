package collectors

import (
	"bufio"
	"net/netip"
	"strings"

	psnet "github.com/shirou/gopsutil/v4/net"

	"github.com/arthur-debert/kifetch/pkg/facts"
)

// NetInfo describes the primary network interface.
type NetInfo struct {
	IP         string
	MAC        string
	Iface      string
	WifiSSID   string
	WifiSignal string
}

func defaultNetInfo() NetInfo {
	return NetInfo{
		IP:         unknownLower,
		MAC:        unknownLower,
		Iface:      unknownLower,
		WifiSSID:   unknownLower,
		WifiSignal: unknownLower,
	}
}

type netCollector struct {
	read func() NetInfo
}

func (netCollector) Name() string { return "net" }

func (c netCollector) Collect(t *facts.Table) {
	info := c.read()
	t.Set("net_ip", info.IP)
	t.Set("net_mac", info.MAC)
	t.Set("net_iface", info.Iface)
	t.Set("net_wifi_ssid", info.WifiSSID)
	t.Set("net_wifi_signal", info.WifiSignal)
}

func init() {
	register(netCollector{read: readNet})
}

func readNet() NetInfo {
	info := defaultNetInfo()

	ifaces, err := psnet.Interfaces()
	if err != nil {
		return info
	}
	primary, ok := primaryInterface(ifaces)
	if !ok {
		return info
	}
	info.IP, info.MAC, info.Iface = primary.IP, primary.MAC, primary.Iface

	if ssid, signal := readWifi(info.Iface); ssid != "" {
		info.WifiSSID = ssid
		if signal != "" {
			info.WifiSignal = signal
		}
	}
	return info
}

// primaryInterface picks the first interface that is up, not loopback, has a
// non-zero hardware address and carries an IPv4 address. Only IP, MAC and
// Iface are filled in the result.
func primaryInterface(ifaces []psnet.InterfaceStat) (NetInfo, bool) {
	for _, iface := range ifaces {
		if !hasFlag(iface.Flags, "up") || hasFlag(iface.Flags, "loopback") {
			continue
		}
		if isZeroMAC(iface.HardwareAddr) {
			continue
		}
		for _, a := range iface.Addrs {
			ip, ok := ipv4Of(a.Addr)
			if !ok {
				continue
			}
			return NetInfo{IP: ip, MAC: iface.HardwareAddr, Iface: iface.Name}, true
		}
	}
	return NetInfo{}, false
}

func hasFlag(flags []string, want string) bool {
	for _, f := range flags {
		if f == want {
			return true
		}
	}
	return false
}

func isZeroMAC(mac string) bool {
	return strings.Trim(mac, "0:-") == ""
}

// ipv4Of accepts either a bare address or CIDR notation.
func ipv4Of(addr string) (string, bool) {
	var ip netip.Addr
	if prefix, err := netip.ParsePrefix(addr); err == nil {
		ip = prefix.Addr()
	} else if parsed, err := netip.ParseAddr(addr); err == nil {
		ip = parsed
	} else {
		return "", false
	}
	if !ip.Is4() {
		return "", false
	}
	return ip.String(), true
}

// parseIwconfigSignal extracts the value after "Signal level=" up to the
// next space, e.g. "-52" from "Signal level=-52 dBm".
func parseIwconfigSignal(output string) string {
	const marker = "Signal level="
	i := strings.Index(output, marker)
	if i < 0 {
		return ""
	}
	rest := output[i+len(marker):]
	if end := strings.IndexAny(rest, " \n"); end >= 0 {
		return rest[:end]
	}
	return ""
}

// parseNetshInterfaces reads SSID and Signal from
// `netsh wlan show interfaces` output.
func parseNetshInterfaces(output string) (ssid, signal string) {
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		key, value, found := strings.Cut(scanner.Text(), ":")
		if !found {
			continue
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		switch key {
		case "SSID":
			if ssid == "" {
				ssid = value
			}
		case "Signal":
			if signal == "" {
				signal = value
			}
		}
	}
	return ssid, signal
}
