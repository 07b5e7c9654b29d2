package wallpaperlib

import "errors"

var ErrUnsupportedPlatform = errors.New("only supported on Windows")

// AllMonitors is the monitor ID that targets every monitor at once.
const AllMonitors = ""

type Point struct {
	X int32
	Y int32
}

// MonitorHandle is an HMONITOR. Only valid for the duration of one call.
type MonitorHandle uintptr

type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

func (r Rect) Width() int {
	return int(r.Right - r.Left)
}

func (r Rect) Height() int {
	return int(r.Bottom - r.Top)
}

// Display covers the user32 calls needed to find the monitor under the cursor.
type Display interface {
	CursorPos() (Point, error)
	// Falls back to the nearest monitor when the point is on none of them.
	// Returns 0 if there are no monitors at all.
	MonitorFromPoint(pt Point) MonitorHandle
	// The GDI device name, e.g. `\\.\DISPLAY1`.
	MonitorDeviceName(h MonitorHandle) (string, error)
	// The device interface name, which is what IDesktopWallpaper uses as its
	// monitor IDs.
	DeviceInterfaceID(deviceName string) (string, error)
}

// DesktopWallpaper wraps an IDesktopWallpaper instance along with the COM
// initialization it depends on. Close releases both.
type DesktopWallpaper interface {
	SetWallpaper(monitorID, wallpaper string) error
	GetWallpaper(monitorID string) (string, error)
	MonitorDevicePathCount() (uint32, error)
	MonitorDevicePathAt(i uint32) (string, error)
	// Reports false for monitors the shell remembers but which aren't attached.
	MonitorRect(monitorID string) (Rect, bool, error)
	SetPosition(pos Position) error
	Close() error
}

type Platform interface {
	Display
	OpenDesktopWallpaper() (DesktopWallpaper, error)
	SetJPEGImportQuality(quality uint32) error
	// True when the input desktop can't be opened, which is overwhelmingly
	// likely to be the lock screen.
	IsLocked() (bool, error)
}
