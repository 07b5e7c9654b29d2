//go:build windows

package wallpaperlib

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"syscall"
	"unsafe"

	ole "github.com/go-ole/go-ole"
	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

// DesktopWallpaper does not extend IDispatch so this needs to be done manually
type iDesktopWallpaperVtbl struct {
	QueryInterface            uintptr
	AddRef                    uintptr
	Release                   uintptr
	SetWallpaper              uintptr
	GetWallpaper              uintptr
	GetMonitorDevicePathAt    uintptr
	GetMonitorDevicePathCount uintptr
	GetMonitorRECT            uintptr
	SetBackgroundColor        uintptr
	GetBackgroundColor        uintptr
	SetPosition               uintptr
	GetPosition               uintptr
	SetSlideshow              uintptr
	GetSlideshow              uintptr
	SetSlideshowOptions       uintptr
	GetSlideshowOptions       uintptr
	AdvanceSlideshow          uintptr
	GetStatus                 uintptr
	Enable                    uintptr
}

// Pulled from headers
const (
	clsidDesktopWallpaper = "{C2CF3110-460E-4fc1-B9D0-8A1C0C9CC4BD}"
	iidDesktopWallpaper   = "{B92B56A9-8B55-4E14-9A89-0199BBB6F93B}"

	monitorDefaultToNearest   = 2
	eddGetDeviceInterfaceName = 1

	sFalse = 1

	// GetMonitorRECT returns this when the monitor is counted but isn't
	// attached to the computer
	eFail = 0x80004005
)

var (
	moduser32               = windows.NewLazySystemDLL("user32.dll")
	procGetCursorPos        = moduser32.NewProc("GetCursorPos")
	procMonitorFromPoint    = moduser32.NewProc("MonitorFromPoint")
	procGetMonitorInfoW     = moduser32.NewProc("GetMonitorInfoW")
	procEnumDisplayDevicesW = moduser32.NewProc("EnumDisplayDevicesW")
	procOpenInputDesktop    = moduser32.NewProc("OpenInputDesktop")
	procCloseDesktop        = moduser32.NewProc("CloseDesktop")
	modkernel32             = windows.NewLazySystemDLL("kernel32.dll")
	procAttachConsole       = modkernel32.NewProc("AttachConsole")
)

type monitorInfoEx struct {
	Size    uint32
	Monitor Rect
	Work    Rect
	Flags   uint32
	Device  [32]uint16
}

type displayDevice struct {
	Size         uint32
	DeviceName   [32]uint16
	DeviceString [128]uint16
	StateFlags   uint32
	DeviceID     [128]uint16
	DeviceKey    [128]uint16
}

type nativePlatform struct{}

func NewPlatform() Platform {
	return nativePlatform{}
}

func (nativePlatform) CursorPos() (Point, error) {
	var pt Point
	r, _, err := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if r == 0 {
		return Point{}, fmt.Errorf("GetCursorPos: %w", err)
	}
	return pt, nil
}

// POINT is passed by value, which is one register on 64 bit and two
// arguments on 32 bit.
func pointArgs(pt Point) []uintptr {
	if unsafe.Sizeof(uintptr(0)) == 8 {
		return []uintptr{uintptr(uint64(uint32(pt.X)) | uint64(uint32(pt.Y))<<32)}
	}
	return []uintptr{uintptr(pt.X), uintptr(pt.Y)}
}

func (nativePlatform) MonitorFromPoint(pt Point) MonitorHandle {
	args := append(pointArgs(pt), monitorDefaultToNearest)
	r, _, _ := procMonitorFromPoint.Call(args...)
	return MonitorHandle(r)
}

func (nativePlatform) MonitorDeviceName(h MonitorHandle) (string, error) {
	var mi monitorInfoEx
	mi.Size = uint32(unsafe.Sizeof(mi))

	r, _, err := procGetMonitorInfoW.Call(uintptr(h), uintptr(unsafe.Pointer(&mi)))
	if r == 0 {
		return "", fmt.Errorf("GetMonitorInfoW: %w", err)
	}
	return DecodeUTF16(mi.Device[:]), nil
}

func (nativePlatform) DeviceInterfaceID(deviceName string) (string, error) {
	name, err := windows.UTF16PtrFromString(deviceName)
	if err != nil {
		return "", err
	}

	var dd displayDevice
	dd.Size = uint32(unsafe.Sizeof(dd))

	r, _, err := procEnumDisplayDevicesW.Call(
		uintptr(unsafe.Pointer(name)),
		0,
		uintptr(unsafe.Pointer(&dd)),
		eddGetDeviceInterfaceName)
	if r == 0 {
		return "", fmt.Errorf("EnumDisplayDevicesW [%s]: %w", deviceName, err)
	}
	return DecodeUTF16(dd.DeviceID[:]), nil
}

func isSFalse(err error) bool {
	var oleErr *ole.OleError
	return errors.As(err, &oleErr) && oleErr.Code() == sFalse
}

type desktopWallpaper struct {
	unknown *ole.IUnknown
	vtable  *iDesktopWallpaperVtbl
}

// The COM apartment belongs to the OS thread, so the goroutine stays locked
// to it until Close.
func (nativePlatform) OpenDesktopWallpaper() (DesktopWallpaper, error) {
	runtime.LockOSThread()

	// S_FALSE means COM was already initialized on this thread, it still needs
	// a matching CoUninitialize
	err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED)
	if err != nil && !isSFalse(err) {
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("CoInitializeEx: %w", err)
	}

	unknown, err := ole.CreateInstance(
		ole.NewGUID(clsidDesktopWallpaper),
		ole.NewGUID(iidDesktopWallpaper))
	if err != nil {
		ole.CoUninitialize()
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("CoCreateInstance: %w", err)
	}

	return &desktopWallpaper{
		unknown: unknown,
		vtable:  (*iDesktopWallpaperVtbl)(unsafe.Pointer(unknown.RawVTable)),
	}, nil
}

func (d *desktopWallpaper) Close() error {
	if d.unknown == nil {
		return nil
	}
	d.unknown.Release()
	d.unknown = nil
	ole.CoUninitialize()
	runtime.UnlockOSThread()
	return nil
}

func (d *desktopWallpaper) this() uintptr {
	return uintptr(unsafe.Pointer(d.unknown))
}

// nil for AllMonitors
func monitorIDArg(monitorID string) (*uint16, error) {
	if monitorID == AllMonitors {
		return nil, nil
	}
	return windows.UTF16PtrFromString(monitorID)
}

// Frees a string allocated by the shell after copying it
func takeCoTaskString(p *uint16) string {
	if p == nil {
		return ""
	}
	s := windows.UTF16PtrToString(p)
	ole.CoTaskMemFree(uintptr(unsafe.Pointer(p)))
	return s
}

func (d *desktopWallpaper) SetWallpaper(monitorID, wallpaper string) error {
	mon, err := monitorIDArg(monitorID)
	if err != nil {
		return err
	}
	w, err := windows.UTF16PtrFromString(wallpaper)
	if err != nil {
		return err
	}

	hr, _, _ := syscall.SyscallN(d.vtable.SetWallpaper,
		d.this(),
		uintptr(unsafe.Pointer(mon)),
		uintptr(unsafe.Pointer(w)))
	if hr != 0 {
		return ole.NewError(hr)
	}
	return nil
}

func (d *desktopWallpaper) GetWallpaper(monitorID string) (string, error) {
	mon, err := monitorIDArg(monitorID)
	if err != nil {
		return "", err
	}

	var out *uint16
	hr, _, _ := syscall.SyscallN(d.vtable.GetWallpaper,
		d.this(),
		uintptr(unsafe.Pointer(mon)),
		uintptr(unsafe.Pointer(&out)))
	if hr != 0 {
		return "", ole.NewError(hr)
	}
	return takeCoTaskString(out), nil
}

func (d *desktopWallpaper) MonitorDevicePathCount() (uint32, error) {
	var count uint32
	hr, _, _ := syscall.SyscallN(d.vtable.GetMonitorDevicePathCount,
		d.this(),
		uintptr(unsafe.Pointer(&count)))
	if hr != 0 {
		return 0, ole.NewError(hr)
	}
	return count, nil
}

func (d *desktopWallpaper) MonitorDevicePathAt(i uint32) (string, error) {
	var out *uint16
	hr, _, _ := syscall.SyscallN(d.vtable.GetMonitorDevicePathAt,
		d.this(),
		uintptr(i),
		uintptr(unsafe.Pointer(&out)))
	if hr != 0 {
		return "", ole.NewError(hr)
	}
	return takeCoTaskString(out), nil
}

func (d *desktopWallpaper) MonitorRect(monitorID string) (Rect, bool, error) {
	mon, err := monitorIDArg(monitorID)
	if err != nil {
		return Rect{}, false, err
	}

	var r Rect
	hr, _, _ := syscall.SyscallN(d.vtable.GetMonitorRECT,
		d.this(),
		uintptr(unsafe.Pointer(mon)),
		uintptr(unsafe.Pointer(&r)))
	switch hr {
	case 0:
		return r, true, nil
	case sFalse, eFail:
		return Rect{}, false, nil
	}
	return Rect{}, false, ole.NewError(hr)
}

func (d *desktopWallpaper) SetPosition(pos Position) error {
	hr, _, _ := syscall.SyscallN(d.vtable.SetPosition, d.this(), uintptr(pos))
	if hr != 0 {
		return ole.NewError(hr)
	}
	return nil
}

func (nativePlatform) SetJPEGImportQuality(quality uint32) error {
	k, err := registry.OpenKey(
		registry.CURRENT_USER, `Control Panel\Desktop`, registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer k.Close()

	return k.SetDWordValue("JPEGImportQuality", quality)
}

func (nativePlatform) IsLocked() (bool, error) {
	desktop, _, _ := procOpenInputDesktop.Call(0, 0, 0)
	if desktop == 0 {
		// Failure here means that the user is on a desktop we cannot access
		// That is overwhelmingly likely to be the lock screen
		return true, nil
	}
	ret, _, _ := procCloseDesktop.Call(desktop)
	if ret == 0 {
		// If we can open the desktop, not being able to close it is a problem.
		return true, errors.New("Failed to close desktop handle")
	}

	return false, nil
}

const attachParentProcess = uintptr(^uint32(0)) // (DWORD)-1

// Attempts to attach to the parent console if one exists so we can get stdout
// when built as a GUI application.
// See https://stackoverflow.com/questions/23743217/
func AttachParentConsole() {
	r, _, _ := procAttachConsole.Call(attachParentProcess)
	if r == 0 {
		return
	}

	hout, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil {
		return
	}
	herr, err := windows.GetStdHandle(windows.STD_ERROR_HANDLE)
	if err != nil {
		return
	}

	os.Stdout = os.NewFile(uintptr(hout), "/dev/stdout")
	os.Stderr = os.NewFile(uintptr(herr), "/dev/stderr")
}
