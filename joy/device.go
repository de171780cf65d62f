package joy

import (
	"math"

	"github.com/ardnew/softjoy/joy/hal"
	"github.com/ardnew/softjoy/pkg"
)

// Device is an exclusively acquired device slot.
//
// It owns a packed state report, zeroed at acquisition except for the slot
// tag, and the right to push it to the driver. All Set and button/hat calls
// mutate only the local report; [Device.Apply] is the single operation with
// an externally visible effect, pushing the complete report in one call.
//
// The embedded [Slot] keeps the read-only queries available, backed by the
// device's own guard clone, so a Device outlives the interface that
// produced it. Close releases exclusive ownership exactly once.
type Device struct {
	Slot

	state  hal.Report
	closed bool
}

// SetAxis sets an axis from a normalized value in [0.0, 1.0].
//
// The value is mapped linearly onto the axis range as
// round(min + value*(max-min)) and stored in the local report.
func (d *Device) SetAxis(axis Axis, value float32) error {
	if err := d.use(); err != nil {
		return err
	}
	if !(value >= 0 && value <= 1) { // also rejects NaN
		return pkg.ErrValueOutOfRange
	}

	rng, err := d.AxisRange(axis)
	if err != nil {
		return err
	}
	// Sum in 64 bits: Span() can exceed MaxInt32 for a full-range axis.
	raw := int32(int64(rng.Min) + int64(math.Round(float64(rng.Span())*float64(value))))
	*reportAxis(&d.state, axis) = raw
	return nil
}

// SetAxisRaw sets an axis to a raw value, which must lie within the axis range.
// Values outside the range are rejected, never clamped.
func (d *Device) SetAxisRaw(axis Axis, value int32) error {
	if err := d.use(); err != nil {
		return err
	}

	rng, err := d.AxisRange(axis)
	if err != nil {
		return err
	}
	if !rng.Contains(value) {
		return pkg.ErrValueOutOfRange
	}
	*reportAxis(&d.state, axis) = value
	return nil
}

// Axis returns the normalized value of an axis from the local report.
//
// Returns [pkg.ErrAxisValueCorrupt] if the stored raw value lies outside
// the axis range, which indicates the report was corrupted.
func (d *Device) Axis(axis Axis) (float32, error) {
	if err := d.use(); err != nil {
		return 0, err
	}

	rng, err := d.AxisRange(axis)
	if err != nil {
		return 0, err
	}
	raw := *reportAxis(&d.state, axis)
	if !rng.Contains(raw) {
		return 0, pkg.ErrAxisValueCorrupt
	}
	span := rng.Span()
	if span == 0 {
		return 0, nil
	}
	return float32(uint32(int64(raw)-int64(rng.Min))) / float32(span), nil
}

// AxisRaw returns the raw value of an axis from the local report.
func (d *Device) AxisRaw(axis Axis) int32 {
	return *reportAxis(&d.state, axis)
}

// SetButton sets a button flag in the local report.
// Valid indices are [0, 128).
func (d *Device) SetButton(index int, pressed bool) error {
	if err := d.use(); err != nil {
		return err
	}
	if index < 0 || index >= hal.NumButtons {
		return pkg.ErrNoSuchButton
	}

	word, bit := index/32, uint(index%32)
	if pressed {
		d.state.Buttons[word] |= 1 << bit
	} else {
		d.state.Buttons[word] &^= 1 << bit
	}
	return nil
}

// Button returns a button flag from the local report.
// ok is false for indices outside [0, 128); probing absent buttons is a
// normal query pattern, not an error.
func (d *Device) Button(index int) (pressed, ok bool) {
	if index < 0 || index >= hal.NumButtons {
		return false, false
	}
	word, bit := index/32, uint(index%32)
	return d.state.Buttons[word]&(1<<bit) != 0, true
}

// SetHat sets a POV hat value in the local report.
// The value is passed through to the driver unmodified.
func (d *Device) SetHat(index int, value uint32) error {
	if err := d.use(); err != nil {
		return err
	}
	if index < 0 || index >= hal.NumHats {
		return pkg.ErrNoSuchHat
	}
	d.state.Hats[index] = value
	return nil
}

// Hat returns a POV hat value from the local report.
// ok is false for indices outside the hat bank.
func (d *Device) Hat(index int) (value uint32, ok bool) {
	if index < 0 || index >= hal.NumHats {
		return 0, false
	}
	return d.state.Hats[index], true
}

// Apply pushes the complete state report to the driver in one call.
//
// Exactly one full-report push happens per invocation, regardless of how
// many Set calls preceded it. Returns [pkg.ErrUpdateRejected] if the driver
// refuses the update, e.g. because the slot is no longer owned.
func (d *Device) Apply() error {
	if err := d.use(); err != nil {
		return err
	}
	if !d.drv.Update(d.id.Raw(), &d.state) {
		return pkg.ErrUpdateRejected
	}
	return nil
}

// Close relinquishes exclusive ownership of the slot and releases the
// device's guard clone. The slot can be re-acquired only after Close
// returns. Ownership is released exactly once, even if prior operations
// failed; a second Close returns [pkg.ErrDeviceClosed].
func (d *Device) Close() error {
	if d.closed {
		return pkg.ErrDeviceClosed
	}
	if err := d.guard.check(); err != nil {
		return err
	}
	d.closed = true

	d.drv.Relinquish(d.id.Raw())
	pkg.LogDebug(pkg.ComponentDevice, "slot relinquished", "slot", d.id)
	return d.guard.Close()
}

func (d *Device) use() error {
	if d.closed {
		return pkg.ErrDeviceClosed
	}
	return d.guard.check()
}
