package joy

import (
	"fmt"

	"github.com/ardnew/softjoy/pkg"
)

// Version is a packed BCD version number: one nibble each for major, minor,
// and patch, with patch in the low nibble. A Version is never zero; zero raw
// values mean the driver did not return a version.
type Version uint16

// SDKVersion is the version of the interface definition this library was
// written against.
const SDKVersion Version = 0x219

// ParseVersion converts a raw version number. ok is false for zero.
func ParseVersion(raw uint16) (Version, bool) {
	if raw == 0 {
		return 0, false
	}
	return Version(raw), true
}

// Raw returns the packed representation.
func (v Version) Raw() uint16 {
	return uint16(v)
}

// Major returns the major version nibble.
func (v Version) Major() uint8 {
	return uint8(v>>8) & 0xF
}

// Minor returns the minor version nibble.
func (v Version) Minor() uint8 {
	return uint8(v>>4) & 0xF
}

// Patch returns the patch version nibble.
func (v Version) Patch() uint8 {
	return uint8(v) & 0xF
}

// String returns the dotted form, e.g. "2.1.9".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}

// Versions holds the version numbers reported by the driver match query.
// The interface and driver values are fallible independently: either side
// may be unavailable while the other is reported.
type Versions struct {
	iface  uint16
	driver uint16
}

// Interface returns the interface library version.
func (v Versions) Interface() (Version, error) {
	ver, ok := ParseVersion(v.iface)
	if !ok {
		return 0, pkg.ErrVersionUnavailable
	}
	return ver, nil
}

// Driver returns the driver version.
func (v Versions) Driver() (Version, error) {
	ver, ok := ParseVersion(v.driver)
	if !ok {
		return 0, pkg.ErrVersionUnavailable
	}
	return ver, nil
}

// SDK returns the version this library was written against.
func (v Versions) SDK() Version {
	return SDKVersion
}
