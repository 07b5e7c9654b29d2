package wallpaperlib

import (
	"errors"
	"fmt"
)

var errFake = errors.New("fake failure")

// fakePlatform records every call that reaches the shell so tests can compare
// the exact sequence.
type fakePlatform struct {
	cursor    Point
	cursorErr error
	// MonitorFromPoint result, 0 means no monitors
	monitor     MonitorHandle
	deviceNames map[MonitorHandle]string
	deviceIDs   map[string]string

	openErr  error
	countErr error
	pathErr  error
	setErr   error
	paths    []string
	// Paths that GetMonitorRECT reports as detached
	detached   map[string]bool
	wallpapers map[string]string
	locked     bool

	calls  []string
	opened int
	closed int
}

// A platform with the cursor on the second of three monitors.
func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		cursor:  Point{X: 2000, Y: 500},
		monitor: 2,
		deviceNames: map[MonitorHandle]string{
			1: `\\.\DISPLAY1`,
			2: `\\.\DISPLAY2`,
			3: `\\.\DISPLAY3`,
		},
		deviceIDs: map[string]string{
			`\\.\DISPLAY1`: `\\?\DISPLAY#AAA0001#1`,
			`\\.\DISPLAY2`: `\\?\DISPLAY#BBB0002#2`,
			`\\.\DISPLAY3`: `\\?\DISPLAY#CCC0003#3`,
		},
		paths: []string{
			`\\?\DISPLAY#AAA0001#1`,
			`\\?\DISPLAY#BBB0002#2`,
			`\\?\DISPLAY#CCC0003#3`,
		},
		wallpapers: map[string]string{},
	}
}

func (f *fakePlatform) record(format string, args ...interface{}) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakePlatform) CursorPos() (Point, error) {
	return f.cursor, f.cursorErr
}

func (f *fakePlatform) MonitorFromPoint(Point) MonitorHandle {
	return f.monitor
}

func (f *fakePlatform) MonitorDeviceName(h MonitorHandle) (string, error) {
	name, ok := f.deviceNames[h]
	if !ok {
		return "", errFake
	}
	return name, nil
}

func (f *fakePlatform) DeviceInterfaceID(name string) (string, error) {
	id, ok := f.deviceIDs[name]
	if !ok {
		return "", errFake
	}
	return id, nil
}

func (f *fakePlatform) OpenDesktopWallpaper() (DesktopWallpaper, error) {
	if f.openErr != nil {
		return nil, f.openErr
	}
	f.opened++
	return &fakeDesktop{f}, nil
}

func (f *fakePlatform) SetJPEGImportQuality(q uint32) error {
	f.record("SetJPEGImportQuality(%d)", q)
	return nil
}

func (f *fakePlatform) IsLocked() (bool, error) {
	return f.locked, nil
}

// Number of SetWallpaper calls recorded
func (f *fakePlatform) sets() int {
	n := 0
	for _, c := range f.calls {
		if len(c) > 13 && c[:13] == "SetWallpaper(" {
			n++
		}
	}
	return n
}

type fakeDesktop struct {
	f *fakePlatform
}

func (d *fakeDesktop) SetWallpaper(monitorID, wallpaper string) error {
	d.f.record("SetWallpaper(%q, %q)", monitorID, wallpaper)
	if d.f.setErr != nil {
		return d.f.setErr
	}
	if monitorID == AllMonitors {
		for _, p := range d.f.paths {
			d.f.wallpapers[p] = wallpaper
		}
	} else {
		d.f.wallpapers[monitorID] = wallpaper
	}
	return nil
}

func (d *fakeDesktop) GetWallpaper(monitorID string) (string, error) {
	return d.f.wallpapers[monitorID], nil
}

func (d *fakeDesktop) MonitorDevicePathCount() (uint32, error) {
	d.f.record("GetMonitorDevicePathCount")
	if d.f.countErr != nil {
		return 0, d.f.countErr
	}
	return uint32(len(d.f.paths)), nil
}

func (d *fakeDesktop) MonitorDevicePathAt(i uint32) (string, error) {
	d.f.record("GetMonitorDevicePathAt(%d)", i)
	if d.f.pathErr != nil {
		return "", d.f.pathErr
	}
	return d.f.paths[i], nil
}

func (d *fakeDesktop) MonitorRect(monitorID string) (Rect, bool, error) {
	if d.f.detached[monitorID] {
		return Rect{}, false, nil
	}
	for i, p := range d.f.paths {
		if p == monitorID {
			left := int32(i * 1920)
			return Rect{Left: left, Top: 0, Right: left + 1920, Bottom: 1080}, true, nil
		}
	}
	return Rect{}, false, errFake
}

func (d *fakeDesktop) SetPosition(pos Position) error {
	d.f.record("SetPosition(%s)", pos)
	return nil
}

func (d *fakeDesktop) Close() error {
	d.f.closed++
	return nil
}
