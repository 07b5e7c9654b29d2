package wallpaperlib

import (
	"unicode/utf16"

	"go.uber.org/zap"
)

// DeviceUnderCursor returns the device interface ID of the monitor containing
// the mouse cursor. Any failure along the way is logged and reported as false.
//
// When the cursor sits exactly on the edge between two monitors whichever one
// MonitorFromPoint picks wins.
func DeviceUnderCursor(d Display) (string, bool) {
	log := zap.S()

	pt, err := d.CursorPos()
	if err != nil {
		log.Debugw("Could not read cursor position", "error", err)
		return "", false
	}

	h := d.MonitorFromPoint(pt)
	if h == 0 {
		log.Debugw("No monitor found near cursor", "x", pt.X, "y", pt.Y)
		return "", false
	}

	name, err := d.MonitorDeviceName(h)
	if err != nil {
		log.Debugw("Could not read monitor info", "x", pt.X, "y", pt.Y, "error", err)
		return "", false
	}

	id, err := d.DeviceInterfaceID(name)
	if err != nil {
		log.Debugw("Could not enumerate display device", "device", name, "error", err)
		return "", false
	}
	if id == "" {
		log.Debugw("Display device has no interface name", "device", name)
		return "", false
	}

	log.Debugw("Resolved monitor under cursor",
		"x", pt.X, "y", pt.Y, "device", name, "id", id)
	return id, true
}

// DecodeUTF16 decodes a fixed size, NUL padded WCHAR buffer. Everything from
// the first NUL onwards is ignored and invalid surrogates become U+FFFD.
func DecodeUTF16(buf []uint16) string {
	for i, c := range buf {
		if c == 0 {
			buf = buf[:i]
			break
		}
	}
	return string(utf16.Decode(buf))
}
