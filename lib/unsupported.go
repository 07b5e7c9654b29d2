//go:build !windows

package wallpaperlib

// IDesktopWallpaper only exists on Windows. Everything fails, so the cursor
// never resolves and set reports ErrUnsupportedPlatform.
type nativePlatform struct{}

func NewPlatform() Platform {
	return nativePlatform{}
}

func (nativePlatform) CursorPos() (Point, error) {
	return Point{}, ErrUnsupportedPlatform
}

func (nativePlatform) MonitorFromPoint(Point) MonitorHandle {
	return 0
}

func (nativePlatform) MonitorDeviceName(MonitorHandle) (string, error) {
	return "", ErrUnsupportedPlatform
}

func (nativePlatform) DeviceInterfaceID(string) (string, error) {
	return "", ErrUnsupportedPlatform
}

func (nativePlatform) OpenDesktopWallpaper() (DesktopWallpaper, error) {
	return nil, ErrUnsupportedPlatform
}

func (nativePlatform) SetJPEGImportQuality(uint32) error {
	return ErrUnsupportedPlatform
}

func (nativePlatform) IsLocked() (bool, error) {
	return false, ErrUnsupportedPlatform
}

// No-op
func AttachParentConsole() {}
