package pkg

import "errors"

// Driver interface errors.
var (
	// ErrInterfaceBusy indicates another interface handle is already open in this process.
	ErrInterfaceBusy = errors.New("interface already open")

	// ErrDriverDisabled indicates the driver reports itself disabled or absent.
	ErrDriverDisabled = errors.New("driver disabled")

	// ErrGuardReleased indicates use of a confinement guard after its lineage closed.
	ErrGuardReleased = errors.New("guard released")

	// ErrSlotBusy indicates the slot is exclusively owned elsewhere.
	ErrSlotBusy = errors.New("slot busy")

	// ErrSlotMissing indicates the slot is not installed in the driver.
	ErrSlotMissing = errors.New("slot missing")

	// ErrInvalidSlotID indicates a slot ID of zero or outside the 8-bit range.
	ErrInvalidSlotID = errors.New("invalid slot ID")

	// ErrSlotCountQuery indicates the driver failed to report the slot count.
	ErrSlotCountQuery = errors.New("slot count query failed")

	// ErrDeviceCountQuery indicates the driver failed to report the existing device count.
	ErrDeviceCountQuery = errors.New("device count query failed")

	// ErrAxisMinQuery indicates the driver failed to report an axis minimum.
	ErrAxisMinQuery = errors.New("axis minimum query failed")

	// ErrAxisMaxQuery indicates the driver failed to report an axis maximum.
	ErrAxisMaxQuery = errors.New("axis maximum query failed")

	// ErrAxisRangeInvalid indicates the driver reported min > max for an axis.
	ErrAxisRangeInvalid = errors.New("axis range invalid")

	// ErrValueOutOfRange indicates a value outside the valid axis range.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrAxisValueCorrupt indicates a stored raw axis value outside its valid range.
	ErrAxisValueCorrupt = errors.New("axis value corrupt")

	// ErrNoSuchButton indicates a button index outside the supported bank.
	ErrNoSuchButton = errors.New("no such button")

	// ErrNoSuchHat indicates a hat index outside the supported bank.
	ErrNoSuchHat = errors.New("no such hat")

	// ErrButtonCountQuery indicates the driver failed to report the button count.
	ErrButtonCountQuery = errors.New("button count query failed")

	// ErrPOVCountQuery indicates the driver failed to report a POV hat count.
	ErrPOVCountQuery = errors.New("POV count query failed")

	// ErrUpdateRejected indicates the driver rejected a full-state update.
	ErrUpdateRejected = errors.New("state update rejected")

	// ErrDeviceClosed indicates use of a device handle after Close.
	ErrDeviceClosed = errors.New("device closed")

	// ErrVersionUnavailable indicates the driver did not return a version number.
	ErrVersionUnavailable = errors.New("version unavailable")

	// ErrInvalidUTF16 indicates a metadata string that is not valid UTF-16.
	ErrInvalidUTF16 = errors.New("invalid UTF-16 string")

	// ErrStringUnavailable indicates the driver returned no metadata string.
	ErrStringUnavailable = errors.New("metadata string unavailable")
)
