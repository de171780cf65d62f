package sim

import (
	"sync"
	"unicode/utf16"

	"github.com/ardnew/softjoy/joy/hal"
	"github.com/ardnew/softjoy/pkg"
)

// AxisConfig describes one axis channel of a simulated slot.
type AxisConfig struct {
	Min int32
	Max int32

	// BrokenMax makes the maximum query fail while the minimum succeeds,
	// reproducing a driver that reports half a range.
	BrokenMax bool
}

// SlotConfig describes one simulated device slot.
type SlotConfig struct {
	// Axes maps HID usage codes to axis configurations.
	Axes map[uint32]AxisConfig

	Buttons int
	ContPOV int
	DiscPOV int

	// Missing marks the slot as having no installed device.
	Missing bool

	// ExternallyOwned marks the slot as acquired by another process.
	ExternallyOwned bool

	// StatusOverride, if set, is returned verbatim by the status query,
	// letting tests inject codes outside the documented set.
	StatusOverride *uint32

	// RejectUpdates makes every state push fail.
	RejectUpdates bool
}

// Config describes a simulated driver.
type Config struct {
	Disabled bool

	Manufacturer string
	Product      string
	Serial       string

	// Raw UTF-16 overrides for the metadata strings. When non-nil they take
	// precedence over the string fields and may be deliberately malformed.
	ManufacturerUnits []uint16
	ProductUnits      []uint16
	SerialUnits       []uint16

	InterfaceVersion uint16
	DriverVersion    uint16

	Slots []SlotConfig

	// Count query fault injection.
	FailSlotCount   bool
	FailDeviceCount bool
	FailCounts      bool // button and POV count queries
}

// DefaultSlot returns a slot with the standard eight desktop axes spanning
// [0, 32767] and 32 buttons.
func DefaultSlot() SlotConfig {
	axes := make(map[uint32]AxisConfig, 8)
	for _, usage := range []uint32{0x30, 0x31, 0x32, 0x33, 0x34, 0x35, 0x36, 0x37} {
		axes[usage] = AxisConfig{Min: 0, Max: 32767}
	}
	return SlotConfig{Axes: axes, Buttons: 32, ContPOV: 0, DiscPOV: 1}
}

// NewBasic returns a driver with n default slots.
func NewBasic(n int) *Driver {
	cfg := Config{
		Manufacturer:     "softjoy",
		Product:          "simulated joystick bus",
		Serial:           "0000",
		InterfaceVersion: 0x219,
		DriverVersion:    0x219,
	}
	for i := 0; i < n; i++ {
		cfg.Slots = append(cfg.Slots, DefaultSlot())
	}
	return New(cfg)
}

// Driver is an in-memory implementation of [hal.Driver].
//
// It arbitrates slot ownership, serves axis and capability queries from its
// configuration, and records every state push for inspection. Unlike the
// real driver it synchronizes internally, so confinement violations that
// escape the core library's guard surface as test failures instead of
// corruption.
type Driver struct {
	mu  sync.Mutex
	cfg Config

	owned   []bool
	updates []int
	last    []hal.Report
}

// New creates a simulated driver from cfg.
func New(cfg Config) *Driver {
	return &Driver{
		cfg:     cfg,
		owned:   make([]bool, len(cfg.Slots)),
		updates: make([]int, len(cfg.Slots)),
		last:    make([]hal.Report, len(cfg.Slots)),
	}
}

// slot returns the configuration index for a 1-based slot ID.
func (d *Driver) slot(id uint8) (int, bool) {
	idx := int(id) - 1
	if id == 0 || idx >= len(d.cfg.Slots) {
		return 0, false
	}
	return idx, true
}

// Enabled implements [hal.Driver].
func (d *Driver) Enabled() bool {
	return !d.cfg.Disabled
}

// Manufacturer implements [hal.Driver].
func (d *Driver) Manufacturer() ([]uint16, bool) {
	return metadataUnits(d.cfg.ManufacturerUnits, d.cfg.Manufacturer)
}

// Product implements [hal.Driver].
func (d *Driver) Product() ([]uint16, bool) {
	return metadataUnits(d.cfg.ProductUnits, d.cfg.Product)
}

// Serial implements [hal.Driver].
func (d *Driver) Serial() ([]uint16, bool) {
	return metadataUnits(d.cfg.SerialUnits, d.cfg.Serial)
}

func metadataUnits(override []uint16, s string) ([]uint16, bool) {
	if override != nil {
		return override, true
	}
	if s == "" {
		return nil, false
	}
	return utf16.Encode([]rune(s)), true
}

// Versions implements [hal.Driver].
func (d *Driver) Versions() (iface, driver uint16) {
	return d.cfg.InterfaceVersion, d.cfg.DriverVersion
}

// MaxSlots implements [hal.Driver].
func (d *Driver) MaxSlots() (int, bool) {
	if d.cfg.FailSlotCount {
		return 0, false
	}
	return len(d.cfg.Slots), true
}

// ExistingDevices implements [hal.Driver].
func (d *Driver) ExistingDevices() (int, bool) {
	if d.cfg.FailDeviceCount {
		return 0, false
	}
	n := 0
	for _, s := range d.cfg.Slots {
		if !s.Missing {
			n++
		}
	}
	return n, true
}

// SlotStatus implements [hal.Driver].
func (d *Driver) SlotStatus(id uint8) uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	idx, ok := d.slot(id)
	if !ok {
		return hal.StatusCodeMissing
	}
	cfg := d.cfg.Slots[idx]
	switch {
	case cfg.StatusOverride != nil:
		return *cfg.StatusOverride
	case cfg.Missing:
		return hal.StatusCodeMissing
	case d.owned[idx]:
		return hal.StatusCodeOwned
	case cfg.ExternallyOwned:
		return hal.StatusCodeBusy
	default:
		return hal.StatusCodeFree
	}
}

// SlotExists implements [hal.Driver].
func (d *Driver) SlotExists(id uint8) bool {
	idx, ok := d.slot(id)
	return ok && !d.cfg.Slots[idx].Missing
}

// Acquire implements [hal.Driver].
func (d *Driver) Acquire(id uint8) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	idx, ok := d.slot(id)
	if !ok {
		return false
	}
	cfg := d.cfg.Slots[idx]
	if cfg.Missing || cfg.ExternallyOwned || d.owned[idx] {
		// The native driver also refuses re-acquisition by the owner;
		// callers hold at most one handle per slot.
		return false
	}
	d.owned[idx] = true
	pkg.LogDebug(pkg.ComponentSim, "slot acquired", "slot", id)
	return true
}

// Relinquish implements [hal.Driver].
func (d *Driver) Relinquish(id uint8) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if idx, ok := d.slot(id); ok {
		d.owned[idx] = false
		pkg.LogDebug(pkg.ComponentSim, "slot relinquished", "slot", id)
	}
}

// AxisMin implements [hal.Driver].
func (d *Driver) AxisMin(id uint8, usage uint32) (int32, bool) {
	idx, ok := d.slot(id)
	if !ok {
		return 0, false
	}
	axis, ok := d.cfg.Slots[idx].Axes[usage]
	if !ok {
		return 0, false
	}
	return axis.Min, true
}

// AxisMax implements [hal.Driver].
func (d *Driver) AxisMax(id uint8, usage uint32) (int32, bool) {
	idx, ok := d.slot(id)
	if !ok {
		return 0, false
	}
	axis, ok := d.cfg.Slots[idx].Axes[usage]
	if !ok || axis.BrokenMax {
		return 0, false
	}
	return axis.Max, true
}

// ButtonCount implements [hal.Driver].
func (d *Driver) ButtonCount(id uint8) (int, bool) {
	idx, ok := d.slot(id)
	if !ok || d.cfg.FailCounts {
		return 0, false
	}
	return d.cfg.Slots[idx].Buttons, true
}

// ContPOVCount implements [hal.Driver].
func (d *Driver) ContPOVCount(id uint8) (int, bool) {
	idx, ok := d.slot(id)
	if !ok || d.cfg.FailCounts {
		return 0, false
	}
	return d.cfg.Slots[idx].ContPOV, true
}

// DiscPOVCount implements [hal.Driver].
func (d *Driver) DiscPOVCount(id uint8) (int, bool) {
	idx, ok := d.slot(id)
	if !ok || d.cfg.FailCounts {
		return 0, false
	}
	return d.cfg.Slots[idx].DiscPOV, true
}

// Update implements [hal.Driver].
// The push is rejected unless the slot is owned and the report carries the
// slot's own tag.
func (d *Driver) Update(id uint8, report *hal.Report) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	idx, ok := d.slot(id)
	if !ok || !d.owned[idx] || d.cfg.Slots[idx].RejectUpdates {
		return false
	}
	if report.Device != id {
		pkg.LogWarn(pkg.ComponentSim, "report tag mismatch",
			"slot", id, "tag", report.Device)
		return false
	}
	d.updates[idx]++
	d.last[idx] = *report
	return true
}

// Acquired reports whether the given slot is currently owned.
func (d *Driver) Acquired(id uint8) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	idx, ok := d.slot(id)
	return ok && d.owned[idx]
}

// UpdateCount returns how many state pushes the slot has accepted.
func (d *Driver) UpdateCount(id uint8) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	idx, ok := d.slot(id)
	if !ok {
		return 0
	}
	return d.updates[idx]
}

var _ hal.Driver = (*Driver)(nil)

// LastReport returns a copy of the most recently accepted report.
func (d *Driver) LastReport(id uint8) (hal.Report, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	idx, ok := d.slot(id)
	if !ok || d.updates[idx] == 0 {
		return hal.Report{}, false
	}
	return d.last[idx], true
}
