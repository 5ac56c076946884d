package collectors

func readScreen() ScreenInfo {
	out, err := runCommand("xrandr", "--current")
	if err != nil {
		return ScreenInfo{}
	}
	info, _ := parseXrandr(string(out))
	return info
}
