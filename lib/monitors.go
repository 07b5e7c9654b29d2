package wallpaperlib

import (
	"fmt"

	"go.uber.org/zap"
)

type Monitor struct {
	Index uint32
	// Device path as reported by IDesktopWallpaper
	Path     string
	Rect     Rect
	Attached bool
	// Empty for detached monitors or when it couldn't be read
	Wallpaper   string
	UnderCursor bool
}

// GetMonitors lists every monitor the shell knows about, including ones that
// have been disconnected.
func GetMonitors(p Platform) ([]*Monitor, error) {
	desktop, err := p.OpenDesktopWallpaper()
	if err != nil {
		return nil, fmt.Errorf("Error creating DesktopWallpaper: %w", err)
	}
	defer desktop.Close()

	count, err := desktop.MonitorDevicePathCount()
	if err != nil {
		return nil, fmt.Errorf("GetMonitorDevicePathCount: %w", err)
	}

	cursorID, resolved := DeviceUnderCursor(p)

	monitors := make([]*Monitor, 0, count)
	for i := uint32(0); i < count; i++ {
		path, err := desktop.MonitorDevicePathAt(i)
		if err != nil {
			return nil, fmt.Errorf("GetMonitorDevicePathAt %d: %w", i, err)
		}

		rect, attached, err := desktop.MonitorRect(path)
		if err != nil {
			return nil, fmt.Errorf("GetMonitorRECT [%s]: %w", path, err)
		}

		m := &Monitor{
			Index:       i,
			Path:        path,
			Rect:        rect,
			Attached:    attached,
			UnderCursor: resolved && path == cursorID,
		}

		if attached {
			m.Wallpaper, err = desktop.GetWallpaper(path)
			if err != nil {
				// Only informational, the listing is still useful without it
				zap.S().Debugw("GetWallpaper failed", "monitor", path, "error", err)
				m.Wallpaper = ""
			}
		}

		monitors = append(monitors, m)
	}

	return monitors, nil
}
