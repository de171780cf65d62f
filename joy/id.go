package joy

import (
	"strconv"

	"github.com/ardnew/softjoy/pkg"
)

// SlotID is the numeric ID of a device slot.
//
// IDs are 1-based and never zero. A standard driver exposes at most 16
// slots, but the ID space spans the full 8-bit range; [Interface.Slot]
// will not produce handles for IDs beyond what the driver reports.
type SlotID uint8

// NewSlotID validates a raw slot ID. Zero is not a valid ID.
func NewSlotID(raw uint8) (SlotID, error) {
	if raw == 0 {
		return 0, pkg.ErrInvalidSlotID
	}
	return SlotID(raw), nil
}

// SlotIDFromIndex converts a 0-based index to a slot ID.
// The conversion is checked, not wrapping.
func SlotIDFromIndex(index int) (SlotID, error) {
	if index < 0 || index > 254 {
		return 0, pkg.ErrInvalidSlotID
	}
	return SlotID(index + 1), nil
}

// Raw returns the 1-based numeric ID.
func (id SlotID) Raw() uint8 {
	return uint8(id)
}

// Index returns the 0-based index of the slot.
func (id SlotID) Index() int {
	return int(id) - 1
}

// String returns the decimal form of the ID.
func (id SlotID) String() string {
	return strconv.Itoa(int(id))
}
