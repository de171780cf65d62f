package joy

import (
	"unicode/utf16"

	"github.com/ardnew/softjoy/joy/hal"
	"github.com/ardnew/softjoy/pkg"
)

// Interface is the entry point to the virtual joystick driver.
//
// Opening an interface mints the process-wide confinement guard, so at most
// one interface session exists at a time and all driver interaction through
// it stays on the opening thread. Slot handles produced by an interface
// borrow its guard and become unusable once the interface is closed;
// acquired devices hold their own guard clones and survive it.
type Interface struct {
	guard *Guard
	drv   hal.Driver
}

// Open opens the driver interface.
//
// Returns [pkg.ErrInterfaceBusy] if a guard lineage is already live in this
// process, and [pkg.ErrDriverDisabled] if the driver reports itself disabled
// (in which case the lineage is released again).
func Open(drv hal.Driver) (*Interface, error) {
	guard, ok := OpenGuard()
	if !ok {
		return nil, pkg.ErrInterfaceBusy
	}

	if !drv.Enabled() {
		_ = guard.Close()
		return nil, pkg.ErrDriverDisabled
	}

	pkg.LogDebug(pkg.ComponentInterface, "interface opened")
	return &Interface{guard: guard, drv: drv}, nil
}

// Close releases the interface's guard. Devices acquired through this
// interface remain valid until closed themselves.
func (i *Interface) Close() error {
	return i.guard.Close()
}

// Manufacturer returns the driver's manufacturer string.
func (i *Interface) Manufacturer() (string, error) {
	return i.metadata(i.drv.Manufacturer)
}

// Product returns the driver's product string.
func (i *Interface) Product() (string, error) {
	return i.metadata(i.drv.Product)
}

// Serial returns the driver's serial number string.
func (i *Interface) Serial() (string, error) {
	return i.metadata(i.drv.Serial)
}

func (i *Interface) metadata(query func() ([]uint16, bool)) (string, error) {
	if err := i.guard.check(); err != nil {
		return "", err
	}
	units, ok := query()
	if !ok {
		return "", pkg.ErrStringUnavailable
	}
	return decodeUTF16(units)
}

// Versions returns the version numbers reported by the driver match query.
func (i *Interface) Versions() (Versions, error) {
	if err := i.guard.check(); err != nil {
		return Versions{}, err
	}
	iface, driver := i.drv.Versions()
	return Versions{iface: iface, driver: driver}, nil
}

// NumSlots returns the number of device slots the driver supports.
// The count is queried from the driver on every call, never cached.
func (i *Interface) NumSlots() (int, error) {
	if err := i.guard.check(); err != nil {
		return 0, err
	}
	n, ok := i.drv.MaxSlots()
	if !ok || n < 0 || n > 255 {
		return 0, pkg.ErrSlotCountQuery
	}
	return n, nil
}

// NumDevices returns the number of slots with an installed device.
func (i *Interface) NumDevices() (int, error) {
	if err := i.guard.check(); err != nil {
		return 0, err
	}
	n, ok := i.drv.ExistingDevices()
	if !ok || n < 0 {
		return 0, pkg.ErrDeviceCountQuery
	}
	return n, nil
}

// Slots returns handles for every slot the driver currently reports.
// The slot count is re-queried on each call, so two calls may observe
// different counts if the driver configuration changed between them.
func (i *Interface) Slots() ([]Slot, error) {
	n, err := i.NumSlots()
	if err != nil {
		return nil, err
	}
	slots := make([]Slot, n)
	for idx := range slots {
		id, err := SlotIDFromIndex(idx)
		if err != nil {
			return nil, err
		}
		slots[idx] = Slot{id: id, drv: i.drv, guard: i.guard}
	}
	return slots, nil
}

// Slot returns a handle for the slot with the given ID.
// ok is false, with no error, if the ID exceeds the current slot count.
func (i *Interface) Slot(id SlotID) (Slot, bool, error) {
	n, err := i.NumSlots()
	if err != nil {
		return Slot{}, false, err
	}
	if int(id.Raw()) > n {
		return Slot{}, false, nil
	}
	return Slot{id: id, drv: i.drv, guard: i.guard}, true, nil
}

// decodeUTF16 converts raw code units to a string, rejecting unpaired
// surrogates rather than substituting replacement characters.
func decodeUTF16(units []uint16) (string, error) {
	for idx := 0; idx < len(units); idx++ {
		switch u := units[idx]; {
		case u >= 0xD800 && u < 0xDC00:
			if idx+1 >= len(units) || units[idx+1] < 0xDC00 || units[idx+1] >= 0xE000 {
				return "", pkg.ErrInvalidUTF16
			}
			idx++
		case u >= 0xDC00 && u < 0xE000:
			return "", pkg.ErrInvalidUTF16
		}
	}
	return string(utf16.Decode(units)), nil
}
