//go:build windows

package vjoy

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/ardnew/softjoy/joy/hal"
	"github.com/ardnew/softjoy/pkg"
)

var (
	dll = windows.NewLazySystemDLL("vJoyInterface.dll")

	procEnabled            = dll.NewProc("vJoyEnabled")
	procManufacturerString = dll.NewProc("GetvJoyManufacturerString")
	procProductString      = dll.NewProc("GetvJoyProductString")
	procSerialNumberString = dll.NewProc("GetvJoySerialNumberString")
	procDriverMatch        = dll.NewProc("DriverMatch")
	procMaxDevices         = dll.NewProc("GetvJoyMaxDevices")
	procNumberExisting     = dll.NewProc("GetNumberExistingVJD")
	procGetStatus          = dll.NewProc("GetVJDStatus")
	procExists             = dll.NewProc("isVJDExists")
	procAcquire            = dll.NewProc("AcquireVJD")
	procRelinquish         = dll.NewProc("RelinquishVJD")
	procAxisMin            = dll.NewProc("GetVJDAxisMin")
	procAxisMax            = dll.NewProc("GetVJDAxisMax")
	procButtonNumber       = dll.NewProc("GetVJDButtonNumber")
	procContPovNumber      = dll.NewProc("GetVJDContPovNumber")
	procDiscPovNumber      = dll.NewProc("GetVJDDiscPovNumber")
	procUpdate             = dll.NewProc("UpdateVJD")
)

// Driver calls the native vJoyInterface.dll.
//
// The shared library keeps static mutable state, so a Driver must only be
// used through the core library's single-thread guard.
type Driver struct{}

// New returns a driver backed by the installed vJoyInterface.dll.
// The library is loaded lazily on first call.
func New() *Driver {
	return &Driver{}
}

// Enabled implements [hal.Driver].
func (*Driver) Enabled() bool {
	if err := dll.Load(); err != nil {
		pkg.LogWarn(pkg.ComponentHAL, "native library unavailable", "error", err)
		return false
	}
	r, _, _ := procEnabled.Call()
	return r != 0
}

// Manufacturer implements [hal.Driver].
func (*Driver) Manufacturer() ([]uint16, bool) {
	r, _, _ := procManufacturerString.Call()
	return stringUnits(r)
}

// Product implements [hal.Driver].
func (*Driver) Product() ([]uint16, bool) {
	r, _, _ := procProductString.Call()
	return stringUnits(r)
}

// Serial implements [hal.Driver].
func (*Driver) Serial() ([]uint16, bool) {
	r, _, _ := procSerialNumberString.Call()
	return stringUnits(r)
}

// stringUnits copies a nul-terminated UTF-16 string out of library-owned
// memory. The native signature is PVOID, so a nil return means the string
// is unavailable.
func stringUnits(p uintptr) ([]uint16, bool) {
	if p == 0 {
		return nil, false
	}
	var units []uint16
	for {
		u := *(*uint16)(unsafe.Pointer(p))
		if u == 0 {
			return units, true
		}
		units = append(units, u)
		p += 2
	}
}

// Versions implements [hal.Driver].
func (*Driver) Versions() (iface, driver uint16) {
	// DriverMatch reports whether the two versions agree; the out-params are
	// filled either way.
	procDriverMatch.Call(
		uintptr(unsafe.Pointer(&iface)),
		uintptr(unsafe.Pointer(&driver)),
	)
	return iface, driver
}

// MaxSlots implements [hal.Driver].
func (*Driver) MaxSlots() (int, bool) {
	var n int32
	r, _, _ := procMaxDevices.Call(uintptr(unsafe.Pointer(&n)))
	return int(n), r != 0
}

// ExistingDevices implements [hal.Driver].
func (*Driver) ExistingDevices() (int, bool) {
	var n int32
	r, _, _ := procNumberExisting.Call(uintptr(unsafe.Pointer(&n)))
	return int(n), r != 0
}

// SlotStatus implements [hal.Driver].
func (*Driver) SlotStatus(slot uint8) uint32 {
	r, _, _ := procGetStatus.Call(uintptr(slot))
	return uint32(r)
}

// SlotExists implements [hal.Driver].
func (*Driver) SlotExists(slot uint8) bool {
	r, _, _ := procExists.Call(uintptr(slot))
	return r != 0
}

// Acquire implements [hal.Driver].
func (*Driver) Acquire(slot uint8) bool {
	r, _, _ := procAcquire.Call(uintptr(slot))
	return r != 0
}

// Relinquish implements [hal.Driver].
func (*Driver) Relinquish(slot uint8) {
	procRelinquish.Call(uintptr(slot))
}

// AxisMin implements [hal.Driver].
func (*Driver) AxisMin(slot uint8, usage uint32) (int32, bool) {
	var v int32
	r, _, _ := procAxisMin.Call(
		uintptr(slot), uintptr(usage), uintptr(unsafe.Pointer(&v)))
	return v, r != 0
}

// AxisMax implements [hal.Driver].
func (*Driver) AxisMax(slot uint8, usage uint32) (int32, bool) {
	var v int32
	r, _, _ := procAxisMax.Call(
		uintptr(slot), uintptr(usage), uintptr(unsafe.Pointer(&v)))
	return v, r != 0
}

// ButtonCount implements [hal.Driver].
func (*Driver) ButtonCount(slot uint8) (int, bool) {
	n, _, _ := procButtonNumber.Call(uintptr(slot))
	return int(int32(n)), int32(n) >= 0
}

// ContPOVCount implements [hal.Driver].
func (*Driver) ContPOVCount(slot uint8) (int, bool) {
	n, _, _ := procContPovNumber.Call(uintptr(slot))
	return int(int32(n)), int32(n) >= 0
}

// DiscPOVCount implements [hal.Driver].
func (*Driver) DiscPOVCount(slot uint8) (int, bool) {
	n, _, _ := procDiscPovNumber.Call(uintptr(slot))
	return int(int32(n)), int32(n) >= 0
}

// Update implements [hal.Driver].
func (*Driver) Update(slot uint8, report *hal.Report) bool {
	var buf [hal.ReportSize]byte
	report.MarshalTo(buf[:])
	r, _, _ := procUpdate.Call(uintptr(slot), uintptr(unsafe.Pointer(&buf[0])))
	return r != 0
}

var _ hal.Driver = (*Driver)(nil)
