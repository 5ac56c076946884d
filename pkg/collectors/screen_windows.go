//go:build windows

package collectors

const (
	smCxScreen = 0
	smCyScreen = 1
	vRefresh   = 116
)

func readScreen() ScreenInfo {
	width, _, _ := procGetSystemMetrics.Call(uintptr(smCxScreen))
	height, _, _ := procGetSystemMetrics.Call(uintptr(smCyScreen))

	info := ScreenInfo{Width: int(width), Height: int(height)}

	hdc, _, _ := procGetDC.Call(0)
	if hdc != 0 {
		rate, _, _ := procGetDeviceCaps.Call(hdc, uintptr(vRefresh))
		info.RefreshRate = int(rate)
		_, _, _ = procReleaseDC.Call(0, hdc)
	}
	return info
}
