package wallpaperlib

import (
	"fmt"

	"go.uber.org/zap"
)

// Confirmation is returned by SetWallpaper on success, including when there
// was nothing to do.
const Confirmation = "ok"

// SetWallpaper sets imagePath as the wallpaper on every monitor, or only on
// the monitor under the cursor.
//
// In Current mode it is not an error if the monitor can't be resolved or
// doesn't match any of the monitors the shell knows about, nothing is changed
// and Confirmation is still returned.
func SetWallpaper(p Platform, imagePath string, mode Mode) (string, error) {
	if !mode.valid() {
		return "", fmt.Errorf("%w %s", ErrInvalidMode, mode)
	}

	log := zap.S()

	desktop, err := p.OpenDesktopWallpaper()
	if err != nil {
		return "", fmt.Errorf("Error creating DesktopWallpaper: %w", err)
	}
	defer func() {
		if err := desktop.Close(); err != nil {
			log.Warnw("Error closing DesktopWallpaper", "error", err)
		}
	}()

	switch mode {
	case Every:
		if err = apply(p, desktop, AllMonitors, imagePath); err != nil {
			return "", err
		}
		log.Infow("Set wallpaper on every monitor", "wallpaper", imagePath)
	case Current:
		id, ok := DeviceUnderCursor(p)
		if !ok {
			log.Infow("No monitor resolved under the cursor, nothing changed",
				"wallpaper", imagePath)
			return Confirmation, nil
		}

		path, ok, err := findMonitorPath(desktop, id)
		if err != nil {
			return "", err
		}
		if !ok {
			log.Infow("Monitor under the cursor is unknown to the shell, nothing changed",
				"id", id, "wallpaper", imagePath)
			return Confirmation, nil
		}

		if err = apply(p, desktop, path, imagePath); err != nil {
			return "", err
		}
		log.Infow("Set wallpaper on current monitor", "monitor", path, "wallpaper", imagePath)
	}

	return Confirmation, nil
}

// Writes the configured options and then the wallpaper itself. Nothing is
// touched until a monitor has been chosen.
func apply(p Platform, desktop DesktopWallpaper, monitorID, imagePath string) error {
	if q, ok := configuredJPEGImportQuality(); ok {
		if err := p.SetJPEGImportQuality(q); err != nil {
			return fmt.Errorf("Error setting JPEGImportQuality: %w", err)
		}
	}

	if pos, ok := configuredPosition(); ok {
		if err := desktop.SetPosition(pos); err != nil {
			return fmt.Errorf("SetPosition: %w", err)
		}
	}

	if err := desktop.SetWallpaper(monitorID, imagePath); err != nil {
		return fmt.Errorf("SetWallpaper: %w", err)
	}
	return nil
}

// Returns the first monitor device path equal to id, in the order the shell
// reports them. Stops reading paths as soon as one matches.
func findMonitorPath(desktop DesktopWallpaper, id string) (string, bool, error) {
	count, err := desktop.MonitorDevicePathCount()
	if err != nil {
		return "", false, fmt.Errorf("GetMonitorDevicePathCount: %w", err)
	}

	for i := uint32(0); i < count; i++ {
		path, err := desktop.MonitorDevicePathAt(i)
		if err != nil {
			return "", false, fmt.Errorf("GetMonitorDevicePathAt %d: %w", i, err)
		}

		if path == id {
			return path, true, nil
		}
	}

	return "", false, nil
}
