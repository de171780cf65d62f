// Package pkg provides shared utilities for the softjoy joystick interface.
//
// This package contains common functionality used across the core library,
// the driver backends, and the example programs, including:
//
//   - Structured logging via Go's standard [log/slog] package
//   - Sentinel error values for driver interface failures
//   - Component identifiers for log filtering
//
// # Logging
//
// The logging subsystem wraps [log/slog] with interface-specific context:
//
//	pkg.SetLogLevel(slog.LevelDebug)
//	pkg.LogInfo(pkg.ComponentDevice, "slot acquired", "slot", 1)
//
// # Errors
//
// Every discriminated failure outcome of the driver interface is defined as
// a sentinel value and matched with [errors.Is]:
//
//	if errors.Is(err, pkg.ErrSlotBusy) {
//	    // Slot is owned elsewhere; skip it and scan the next one.
//	}
package pkg
