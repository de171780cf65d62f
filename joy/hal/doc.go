// Package hal defines the driver abstraction layer for the softjoy library.
//
// The [Driver] interface is a one-to-one mapping of the native virtual
// joystick driver's entry points: global enable and metadata queries,
// version matching, slot counts, and per-slot status, acquisition, axis
// range, capability count, and full-state update operations. The core
// library implements all policy (confinement, ownership transfer, value
// mapping) on top of this surface; a backend implements only the raw calls.
//
// Two backends are provided:
//
//   - [github.com/ardnew/softjoy/joy/hal/vjoy] binds the real driver DLL
//     on Windows.
//   - [github.com/ardnew/softjoy/joy/hal/sim] simulates a configurable
//     driver in memory for tests and examples on any platform.
//
// # State Reports
//
// [Report] is the packed per-slot state record pushed atomically by
// Driver.Update. Its wire form (produced by [Report.MarshalTo]) is the
// native position structure: slot tag, 16 axes plus two velocity
// placeholders, and 128 button flags in four words split around the 4 POV
// hat values.
//
// # Thread Safety
//
// The native driver is not thread-safe. Backends are not required to add
// synchronization; the core library guarantees single-thread access through
// its confinement guard.
package hal
