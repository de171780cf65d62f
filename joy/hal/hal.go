package hal

// Raw slot status codes reported by the driver.
//
// The core library maps these to its own status enumeration and treats any
// other value as a driver contract violation.
const (
	StatusCodeOwned   uint32 = iota // Owned by this process
	StatusCodeFree                  // Installed and unowned
	StatusCodeBusy                  // Owned by another process
	StatusCodeMissing               // Not installed
	StatusCodeUnknown               // Driver cannot determine status
)

// Driver defines the capability surface of the virtual joystick driver.
//
// Each method corresponds to exactly one native entry point. Boolean ok
// results mirror the native BOOL returns: false means the driver reported
// failure, and the core library maps each failure to one sentinel error.
//
// The driver's native implementation keeps static mutable state and is not
// safe for concurrent use. Implementations are NOT required to synchronize;
// the core library confines all calls to a single OS thread through its
// guard. Test implementations may synchronize anyway so that misuse shows
// up as a test failure rather than corruption.
type Driver interface {
	// Enabled reports whether the driver is installed and enabled.
	Enabled() bool

	// Manufacturer returns the manufacturer string as raw UTF-16 code units
	// without the nul terminator. ok is false if the driver has no string.
	// The returned units are not guaranteed to be valid UTF-16.
	Manufacturer() (units []uint16, ok bool)

	// Product returns the product string as raw UTF-16 code units.
	Product() (units []uint16, ok bool)

	// Serial returns the serial number string as raw UTF-16 code units.
	Serial() (units []uint16, ok bool)

	// Versions returns the interface library and driver version numbers as
	// packed BCD (nibbles major:minor:patch, low nibble patch). A zero value
	// means the corresponding version is unavailable.
	Versions() (iface, driver uint16)

	// MaxSlots returns the number of device slots the driver supports.
	MaxSlots() (n int, ok bool)

	// ExistingDevices returns the number of slots with an installed device.
	ExistingDevices() (n int, ok bool)

	// SlotStatus returns the raw status code for the given slot.
	SlotStatus(slot uint8) uint32

	// SlotExists reports whether the given slot has an installed device.
	SlotExists(slot uint8) bool

	// Acquire attempts to take exclusive ownership of the given slot.
	// Returns false if the slot is owned elsewhere or missing.
	Acquire(slot uint8) bool

	// Relinquish releases exclusive ownership of the given slot.
	Relinquish(slot uint8)

	// AxisMin returns the minimum value of the axis with the given HID usage.
	// ok is false if the slot has no such axis.
	AxisMin(slot uint8, usage uint32) (min int32, ok bool)

	// AxisMax returns the maximum value of the axis with the given HID usage.
	AxisMax(slot uint8, usage uint32) (max int32, ok bool)

	// ButtonCount returns the number of buttons configured for the slot.
	ButtonCount(slot uint8) (n int, ok bool)

	// ContPOVCount returns the number of continuous POV hats for the slot.
	ContPOVCount(slot uint8) (n int, ok bool)

	// DiscPOVCount returns the number of discrete POV hats for the slot.
	DiscPOVCount(slot uint8) (n int, ok bool)

	// Update pushes a complete state report to the slot in one call.
	// Returns false if the driver rejected the update (e.g. the slot is
	// no longer owned).
	Update(slot uint8, report *Report) bool
}
