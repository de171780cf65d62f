package hal

import "encoding/binary"

// NumAxes is the number of addressable axis channels in a state report.
const NumAxes = 16

// NumButtons is the number of button flags in a state report.
const NumButtons = 128

// NumHats is the number of POV hat values in a state report.
const NumHats = 4

// ReportSize is the size in bytes of a marshaled state report:
// device tag byte, three bytes of padding, 16 axes, 2 velocity
// placeholders, and the button words split around the 4 hat words,
// all little-endian.
const ReportSize = 4 + (NumAxes+2)*4 + 4 + NumHats*4 + 3*4

// Report is the packed state record for one device slot.
//
// Field order mirrors the driver's native position structure, which UpdateVJD
// consumes directly: the simulation axes Throttle, Rudder, and Aileron come
// first, then the positional axes, then the remaining simulation axes, two
// velocity placeholder fields, the first button word, the four POV hat
// values, and the three extended button words. The Device byte tags the
// report with its owning slot so a stale report can never be applied to the
// wrong slot.
//
// A Report is exclusively owned by one acquired device handle and is never
// shared. All mutation is local; only Driver.Update makes it visible.
type Report struct {
	Device uint8 // Owning slot ID (1-based)

	// Axis channels, in the fixed wire order.
	Throttle    int32
	Rudder      int32
	Aileron     int32
	AxisX       int32
	AxisY       int32
	AxisZ       int32
	AxisRX      int32
	AxisRY      int32
	AxisRZ      int32
	Slider      int32
	Dial        int32
	Wheel       int32
	Accelerator int32
	Brake       int32
	Clutch      int32
	Steering    int32

	// Velocity axis fields. Present in the native record but not reachable
	// through any axis channel; marshaled in place, always zero.
	AxisVX int32
	AxisVY int32

	// Button flags: bit (i % 32) of word (i / 32) holds button i. On the
	// wire, word 0 precedes the hat block and words 1..3 follow it.
	Buttons [4]uint32

	// POV hat values, passed through to the driver unmodified.
	Hats [NumHats]uint32
}

// MarshalTo writes the report to buf in the native wire layout.
// Returns the number of bytes written (ReportSize), or 0 if buf is too small.
func (r *Report) MarshalTo(buf []byte) int {
	if len(buf) < ReportSize {
		return 0
	}

	buf[0] = r.Device
	buf[1] = 0
	buf[2] = 0
	buf[3] = 0

	axes := [NumAxes + 2]int32{
		r.Throttle, r.Rudder, r.Aileron,
		r.AxisX, r.AxisY, r.AxisZ,
		r.AxisRX, r.AxisRY, r.AxisRZ,
		r.Slider, r.Dial, r.Wheel,
		r.Accelerator, r.Brake, r.Clutch, r.Steering,
		r.AxisVX, r.AxisVY,
	}

	off := 4
	for _, v := range axes {
		binary.LittleEndian.PutUint32(buf[off:], uint32(v))
		off += 4
	}

	binary.LittleEndian.PutUint32(buf[off:], r.Buttons[0])
	off += 4
	for _, h := range r.Hats {
		binary.LittleEndian.PutUint32(buf[off:], h)
		off += 4
	}
	for _, w := range r.Buttons[1:] {
		binary.LittleEndian.PutUint32(buf[off:], w)
		off += 4
	}
	return off
}
