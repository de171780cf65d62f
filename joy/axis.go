package joy

import (
	"fmt"

	"github.com/ardnew/softjoy/joy/hal"
)

// Axis identifies one of the 16 axis channels of a device slot.
type Axis uint8

// Axis channels. The first eight are the positional channels of the
// generic desktop usage page; the rest are simulation controls.
const (
	AxisX Axis = iota
	AxisY
	AxisZ
	AxisRX
	AxisRY
	AxisRZ
	AxisSlider
	AxisDial

	AxisAccelerator
	AxisAileron
	AxisBrake
	AxisClutch
	AxisRudder
	AxisSteering
	AxisThrottle
	AxisWheel
)

// NumAxes is the number of axis channels.
const NumAxes = 16

// axisTable is the closed mapping from axis channel to its fixed HID usage
// code and name. It is total over all Axis values and never changes at
// runtime; init verifies both.
var axisTable = [NumAxes]struct {
	usage uint32
	name  string
}{
	AxisX:      {0x30, "X"},
	AxisY:      {0x31, "Y"},
	AxisZ:      {0x32, "Z"},
	AxisRX:     {0x33, "RX"},
	AxisRY:     {0x34, "RY"},
	AxisRZ:     {0x35, "RZ"},
	AxisSlider: {0x36, "Slider"},
	AxisDial:   {0x37, "Dial"},

	AxisAccelerator: {0xC4, "Accelerator"},
	AxisAileron:     {0xB0, "Aileron"},
	AxisBrake:       {0xC5, "Brake"},
	AxisClutch:      {0xC6, "Clutch"},
	AxisRudder:      {0xBA, "Rudder"},
	AxisSteering:    {0xC8, "Steering"},
	AxisThrottle:    {0xBB, "Throttle"},
	AxisWheel:       {0x38, "Wheel"},
}

func init() {
	var r hal.Report
	seen := make(map[uint32]Axis, NumAxes)
	for _, a := range Axes() {
		entry := axisTable[a]
		if entry.usage == 0 || entry.name == "" || reportAxis(&r, a) == nil {
			panic(fmt.Sprintf("softjoy: axis table incomplete at %d", a))
		}
		if prev, dup := seen[entry.usage]; dup {
			panic(fmt.Sprintf("softjoy: axis table usage 0x%02X duplicated by %s and %s",
				entry.usage, axisTable[prev].name, entry.name))
		}
		seen[entry.usage] = a
	}
}

// Axes returns all axis channels in order.
func Axes() []Axis {
	axes := make([]Axis, NumAxes)
	for i := range axes {
		axes[i] = Axis(i)
	}
	return axes
}

// Valid reports whether a is one of the defined axis channels.
func (a Axis) Valid() bool {
	return a < NumAxes
}

// Usage returns the HID usage code of the axis.
func (a Axis) Usage() uint32 {
	if !a.Valid() {
		return 0
	}
	return axisTable[a].usage
}

// String returns the axis name.
func (a Axis) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Unknown(%d)", uint8(a))
	}
	return axisTable[a].name
}

// reportAxis returns the report field holding the given axis channel.
// Returns nil for values outside the closed enumeration.
func reportAxis(r *hal.Report, a Axis) *int32 {
	switch a {
	case AxisX:
		return &r.AxisX
	case AxisY:
		return &r.AxisY
	case AxisZ:
		return &r.AxisZ
	case AxisRX:
		return &r.AxisRX
	case AxisRY:
		return &r.AxisRY
	case AxisRZ:
		return &r.AxisRZ
	case AxisSlider:
		return &r.Slider
	case AxisDial:
		return &r.Dial
	case AxisAccelerator:
		return &r.Accelerator
	case AxisAileron:
		return &r.Aileron
	case AxisBrake:
		return &r.Brake
	case AxisClutch:
		return &r.Clutch
	case AxisRudder:
		return &r.Rudder
	case AxisSteering:
		return &r.Steering
	case AxisThrottle:
		return &r.Throttle
	case AxisWheel:
		return &r.Wheel
	}
	return nil
}
