package collectors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v4/host"

	"github.com/arthur-debert/kifetch/pkg/facts"
)

// UptimeInfo is the time since boot in whole seconds.
type UptimeInfo struct {
	Seconds uint64
}

type uptimeCollector struct {
	read func() UptimeInfo
}

func (uptimeCollector) Name() string { return "uptime" }

func (c uptimeCollector) Collect(t *facts.Table) {
	total := c.read().Seconds

	days := total / 86400
	hours := total % 86400 / 3600
	mins := total % 3600 / 60
	secs := total % 60

	totalHours := days*24 + hours
	totalMins := totalHours*60 + mins

	t.Set("uptime_days", strconv.FormatUint(days, 10))
	t.Set("uptime_hours", strconv.FormatUint(hours, 10))
	t.Set("uptime_hours_total", strconv.FormatUint(totalHours, 10))
	t.Set("uptime_mins", strconv.FormatUint(mins, 10))
	t.Set("uptime_mins_total", strconv.FormatUint(totalMins, 10))
	t.Set("uptime_secs", strconv.FormatUint(secs, 10))
	t.Set("uptime_secs_total", strconv.FormatUint(total, 10))
	t.Set("uptime", formatUptime(days, hours, mins, secs))
}

// formatUptime renders "1d 2h 3m 4s", omitting zero components.
func formatUptime(days, hours, mins, secs uint64) string {
	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if mins > 0 {
		parts = append(parts, fmt.Sprintf("%dm", mins))
	}
	if secs > 0 {
		parts = append(parts, fmt.Sprintf("%ds", secs))
	}
	return strings.Join(parts, " ")
}

func readUptime() UptimeInfo {
	secs, err := host.Uptime()
	if err != nil {
		return UptimeInfo{}
	}
	return UptimeInfo{Seconds: secs}
}

func init() {
	register(uptimeCollector{read: readUptime})
}
