// Package joy provides safe, single-threaded access to a virtual joystick
// driver through the [hal.Driver] capability surface.
//
// # Architecture
//
// The package is organized around ownership transfer:
//
//   - [Guard] confines all driver access to one OS thread at a time
//   - [Interface] is the per-session entry point and slot enumerator
//   - [Slot] is a read-only handle to one numbered device slot
//   - [Device] is an exclusively acquired slot with a mutable state report
//   - [Axis] is the closed enumeration of the 16 axis channels
//
// # Thread Confinement
//
// The native driver keeps static mutable state and corrupts it if touched
// from two threads concurrently. [Open] therefore mints a process-wide
// guard lineage: it pins the opening goroutine to its OS thread, refuses a
// second concurrent session, and panics on any use from a foreign thread.
// After the session and all its devices close, a new session may begin,
// possibly on a different thread, but never concurrently.
//
// # State Model
//
// An acquired [Device] owns a packed [hal.Report]: 16 signed 32-bit axis
// values, 128 button flags in four words, and four POV hat values, tagged
// with the owning slot ID. All mutation is local; [Device.Apply] publishes
// the whole report to the driver atomically in a single call.
//
// Axis values can be written raw, checked against the slot's inclusive
// range, or normalized, mapping [0.0, 1.0] linearly onto the range.
//
// # Example
//
//	vj, err := joy.Open(drv)
//	if err != nil {
//	    return err
//	}
//	defer vj.Close()
//
//	slots, err := vj.Slots()
//	if err != nil {
//	    return err
//	}
//	for _, slot := range slots {
//	    dev, err := slot.Acquire()
//	    if errors.Is(err, pkg.ErrSlotBusy) {
//	        continue
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    defer dev.Close()
//
//	    dev.SetAxis(joy.AxisX, 0.5)
//	    dev.SetButton(0, true)
//	    return dev.Apply()
//	}
package joy
