package joy

import (
	"fmt"

	"github.com/ardnew/softjoy/joy/hal"
	"github.com/ardnew/softjoy/pkg"
)

// Status describes who, if anyone, owns a device slot.
type Status uint8

// Slot status values.
const (
	StatusFree    Status = iota // Installed and unowned
	StatusOwned                 // Owned by this process
	StatusBusy                  // Owned by another process
	StatusMissing               // Not installed
	StatusUnknown               // Driver cannot determine status
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusFree:
		return "free"
	case StatusOwned:
		return "owned"
	case StatusBusy:
		return "busy"
	case StatusMissing:
		return "missing"
	case StatusUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("invalid(%d)", uint8(s))
	}
}

// AxisRange is the inclusive value range of an axis channel.
type AxisRange struct {
	Min int32
	Max int32
}

// Contains reports whether v lies within the range.
func (r AxisRange) Contains(v int32) bool {
	return v >= r.Min && v <= r.Max
}

// Span returns the width of the range (Max - Min) without overflow.
func (r AxisRange) Span() uint32 {
	return uint32(int64(r.Max) - int64(r.Min))
}

// Slot is a handle to a device slot without exclusive ownership.
//
// Slots are lightweight values; any number may coexist for the same ID.
// They support read-only capability queries and the acquisition exchange.
// A Slot borrows the guard of the interface that produced it, so its
// methods fail with [pkg.ErrGuardReleased] after the interface closes.
type Slot struct {
	id    SlotID
	drv   hal.Driver
	guard *Guard
}

// ID returns the slot's numeric ID.
func (s Slot) ID() SlotID {
	return s.id
}

// Index returns the slot's 0-based index.
func (s Slot) Index() int {
	return s.id.Index()
}

// Exists reports whether a device is installed in this slot.
func (s Slot) Exists() (bool, error) {
	if err := s.guard.check(); err != nil {
		return false, err
	}
	return s.drv.SlotExists(s.id.Raw()), nil
}

// Status returns the slot's ownership status.
//
// A raw status code outside the driver's documented set is a contract
// violation and panics rather than being coerced into a valid status.
func (s Slot) Status() (Status, error) {
	if err := s.guard.check(); err != nil {
		return 0, err
	}
	switch code := s.drv.SlotStatus(s.id.Raw()); code {
	case hal.StatusCodeOwned:
		return StatusOwned, nil
	case hal.StatusCodeFree:
		return StatusFree, nil
	case hal.StatusCodeBusy:
		return StatusBusy, nil
	case hal.StatusCodeMissing:
		return StatusMissing, nil
	case hal.StatusCodeUnknown:
		return StatusUnknown, nil
	default:
		panic(fmt.Sprintf("softjoy: driver returned invalid status code %d for slot %s", code, s.id))
	}
}

// HasAxis reports whether the slot is configured with the given axis.
//
// The driver's dedicated axis-exists query reports true for axes that do
// not exist, so presence is derived from the axis-minimum query instead,
// which does fail for absent axes.
func (s Slot) HasAxis(axis Axis) (bool, error) {
	if err := s.guard.check(); err != nil {
		return false, err
	}
	if !axis.Valid() {
		return false, nil
	}
	_, ok := s.drv.AxisMin(s.id.Raw(), axis.Usage())
	return ok, nil
}

// Axes returns the axis channels configured for this slot.
func (s Slot) Axes() ([]Axis, error) {
	var axes []Axis
	for _, axis := range Axes() {
		has, err := s.HasAxis(axis)
		if err != nil {
			return nil, err
		}
		if has {
			axes = append(axes, axis)
		}
	}
	return axes, nil
}

// AxisRange returns the inclusive value range of the given axis.
//
// Returns [pkg.ErrAxisMinQuery] or [pkg.ErrAxisMaxQuery] if the driver
// cannot report the corresponding bound, and [pkg.ErrAxisRangeInvalid] if
// it reports min > max; an inconsistent range is surfaced, never repaired.
func (s Slot) AxisRange(axis Axis) (AxisRange, error) {
	if err := s.guard.check(); err != nil {
		return AxisRange{}, err
	}

	min, ok := s.drv.AxisMin(s.id.Raw(), axis.Usage())
	if !ok {
		return AxisRange{}, pkg.ErrAxisMinQuery
	}
	max, ok := s.drv.AxisMax(s.id.Raw(), axis.Usage())
	if !ok {
		return AxisRange{}, pkg.ErrAxisMaxQuery
	}
	if min > max {
		return AxisRange{}, pkg.ErrAxisRangeInvalid
	}
	return AxisRange{Min: min, Max: max}, nil
}

// NumButtons returns the number of buttons configured for this slot.
func (s Slot) NumButtons() (int, error) {
	if err := s.guard.check(); err != nil {
		return 0, err
	}
	n, ok := s.drv.ButtonCount(s.id.Raw())
	if !ok || n < 0 {
		return 0, pkg.ErrButtonCountQuery
	}
	return n, nil
}

// NumContPOV returns the number of continuous POV hats for this slot.
func (s Slot) NumContPOV() (int, error) {
	if err := s.guard.check(); err != nil {
		return 0, err
	}
	n, ok := s.drv.ContPOVCount(s.id.Raw())
	if !ok || n < 0 {
		return 0, pkg.ErrPOVCountQuery
	}
	return n, nil
}

// NumDiscPOV returns the number of discrete POV hats for this slot.
func (s Slot) NumDiscPOV() (int, error) {
	if err := s.guard.check(); err != nil {
		return 0, err
	}
	n, ok := s.drv.DiscPOVCount(s.id.Raw())
	if !ok || n < 0 {
		return 0, pkg.ErrPOVCountQuery
	}
	return n, nil
}

// Acquire attempts to take exclusive ownership of the slot.
//
// Ownership is arbitrated by the driver, not locally: another process or a
// later lineage may own the slot, and Acquire simply reports the driver's
// decision as [pkg.ErrSlotBusy]. The Slot value itself is unaffected by a
// failed acquisition and remains usable for queries and retries. No state
// buffer is created unless acquisition succeeds.
func (s Slot) Acquire() (*Device, error) {
	if err := s.guard.check(); err != nil {
		return nil, err
	}
	if !s.drv.Acquire(s.id.Raw()) {
		return nil, pkg.ErrSlotBusy
	}

	g := s.guard.Clone()
	d := &Device{Slot: Slot{id: s.id, drv: s.drv, guard: g}}
	d.state.Device = s.id.Raw()

	pkg.LogDebug(pkg.ComponentSlot, "slot acquired", "slot", s.id)
	return d, nil
}
