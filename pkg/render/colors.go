package render

// ansiCodes maps color keywords to their SGR escape sequences.
var ansiCodes = map[string]string{
	"black":          "\x1b[30m",
	"red":            "\x1b[31m",
	"green":          "\x1b[32m",
	"yellow":         "\x1b[33m",
	"blue":           "\x1b[34m",
	"magenta":        "\x1b[35m",
	"cyan":           "\x1b[36m",
	"white":          "\x1b[37m",
	"bright_black":   "\x1b[90m",
	"bright_red":     "\x1b[91m",
	"bright_green":   "\x1b[92m",
	"bright_yellow":  "\x1b[93m",
	"bright_blue":    "\x1b[94m",
	"bright_magenta": "\x1b[95m",
	"bright_cyan":    "\x1b[96m",
	"bright_white":   "\x1b[97m",
	"reset":          "\x1b[0m",
	"bold":           "\x1b[1m",
	"dim":            "\x1b[2m",
	"italic":         "\x1b[3m",
	"underline":      "\x1b[4m",
	"blink":          "\x1b[5m",
	"reverse":        "\x1b[7m",
	"hidden":         "\x1b[8m",
}

// ANSI returns the escape sequence for a color keyword such as "bright_red".
func ANSI(keyword string) (string, bool) {
	code, ok := ansiCodes[keyword]
	return code, ok
}

// Keywords lists every recognized color keyword.
func Keywords() []string {
	out := make([]string, 0, len(ansiCodes))
	for k := range ansiCodes {
		out = append(out, k)
	}
	return out
}
