package collectors

import (
	"bufio"
	"math"
	"strconv"
	"strings"

	"github.com/arthur-debert/kifetch/pkg/facts"
)

// ScreenInfo describes the current mode of the primary display.
type ScreenInfo struct {
	Width       int
	Height      int
	RefreshRate int
}

type screenCollector struct {
	read func() ScreenInfo
}

func (screenCollector) Name() string { return "screen" }

func (c screenCollector) Collect(t *facts.Table) {
	info := c.read()
	t.Set("screen_width", strconv.Itoa(info.Width))
	t.Set("screen_height", strconv.Itoa(info.Height))
	t.Set("screen_refresh_rate", strconv.Itoa(info.RefreshRate))
}

func init() {
	register(screenCollector{read: readScreen})
}

// parseXrandr finds the active mode (marked with '*') of the first connected
// output in `xrandr --current` output. Mode lines look like
// "   1920x1080     59.96*+  60.00".
func parseXrandr(output string) (ScreenInfo, bool) {
	connected := false
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, " connected") {
			connected = true
			continue
		}
		if strings.Contains(line, "disconnected") {
			connected = false
			continue
		}
		if !connected {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 || fields[0][0] < '0' || fields[0][0] > '9' {
			continue
		}
		for _, rate := range fields[1:] {
			if !strings.Contains(rate, "*") {
				continue
			}
			w, h, ok := parseResolution(fields[0])
			if !ok {
				break
			}
			hz, err := strconv.ParseFloat(strings.TrimRight(rate, "*+"), 64)
			if err != nil {
				break
			}
			return ScreenInfo{Width: w, Height: h, RefreshRate: int(math.Round(hz))}, true
		}
	}
	return ScreenInfo{}, false
}

func parseResolution(s string) (int, int, bool) {
	ws, hs, found := strings.Cut(s, "x")
	if !found {
		return 0, 0, false
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, false
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, false
	}
	return w, h, true
}
