package joy

import (
	"errors"
	"math"
	"testing"

	"github.com/ardnew/softjoy/joy/hal"
	"github.com/ardnew/softjoy/joy/hal/sim"
	"github.com/ardnew/softjoy/pkg"
)

// acquireFirst opens ifc's slot 1 and acquires it, closing the device when
// the test ends.
func acquireFirst(t *testing.T, ifc *Interface) *Device {
	t.Helper()
	dev, err := firstSlot(t, ifc).Acquire()
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	t.Cleanup(func() { _ = dev.Close() })
	return dev
}

func TestDevice_SetAxisNormalization(t *testing.T) {
	ifc := openSim(t, sim.NewBasic(1))
	dev := acquireFirst(t, ifc)

	tests := []struct {
		value float32
		raw   int32
	}{
		{0, 0},
		{1, 32767},
		{0.5, 16384}, // round(16383.5)
		{0.25, 8192},
	}
	for _, tt := range tests {
		if err := dev.SetAxis(AxisX, tt.value); err != nil {
			t.Fatalf("SetAxis(X, %v) failed: %v", tt.value, err)
		}
		if got := dev.AxisRaw(AxisX); got != tt.raw {
			t.Errorf("AxisRaw(X) after SetAxis(%v) = %d, want %d", tt.value, got, tt.raw)
		}
	}
}

func TestDevice_AxisRoundTrip(t *testing.T) {
	ifc := openSim(t, sim.NewBasic(1))
	dev := acquireFirst(t, ifc)

	for _, value := range []float32{0, 0.125, 0.5, 0.875, 1} {
		if err := dev.SetAxis(AxisY, value); err != nil {
			t.Fatalf("SetAxis(Y, %v) failed: %v", value, err)
		}
		got, err := dev.Axis(AxisY)
		if err != nil {
			t.Fatalf("Axis(Y) failed: %v", err)
		}
		// Rounding to the 0..32767 grid costs at most half a step.
		if diff := math.Abs(float64(got - value)); diff > 1.0/32767 {
			t.Errorf("Axis(Y) = %v after SetAxis(%v), diff %v", got, value, diff)
		}
	}
}

func TestDevice_AxisGridIdempotent(t *testing.T) {
	ifc := openSim(t, sim.NewBasic(1))
	dev := acquireFirst(t, ifc)

	// A raw value already on the normalization grid must survive a
	// normalize/denormalize cycle unchanged.
	for _, raw := range []int32{0, 1, 4096, 16384, 32766, 32767} {
		if err := dev.SetAxisRaw(AxisZ, raw); err != nil {
			t.Fatalf("SetAxisRaw(Z, %d) failed: %v", raw, err)
		}
		value, err := dev.Axis(AxisZ)
		if err != nil {
			t.Fatalf("Axis(Z) failed: %v", err)
		}
		if err := dev.SetAxis(AxisZ, value); err != nil {
			t.Fatalf("SetAxis(Z, %v) failed: %v", value, err)
		}
		if got := dev.AxisRaw(AxisZ); got != raw {
			t.Errorf("AxisRaw(Z) after round trip = %d, want %d", got, raw)
		}
	}
}

func TestDevice_SetAxisFullInt32Range(t *testing.T) {
	// A span of MaxUint32 does not fit in int32, so the min + offset sum
	// must happen in 64 bits.
	slot := sim.SlotConfig{Axes: map[uint32]sim.AxisConfig{
		0x30: {Min: math.MinInt32, Max: math.MaxInt32},
	}}
	ifc := openSim(t, sim.New(sim.Config{Slots: []sim.SlotConfig{slot}}))
	dev := acquireFirst(t, ifc)

	tests := []struct {
		value float32
		want  int32
	}{
		{0, math.MinInt32},
		{0.75, 1073741823},
		{1, math.MaxInt32},
	}
	for _, tt := range tests {
		if err := dev.SetAxis(AxisX, tt.value); err != nil {
			t.Fatalf("SetAxis(X, %v) failed: %v", tt.value, err)
		}
		if got := dev.AxisRaw(AxisX); got != tt.want {
			t.Errorf("AxisRaw(X) after SetAxis(%v) = %d, want %d",
				tt.value, got, tt.want)
		}
	}
}

func TestDevice_SetAxisRejectsOutOfRange(t *testing.T) {
	ifc := openSim(t, sim.NewBasic(1))
	dev := acquireFirst(t, ifc)

	for _, value := range []float32{float32(math.NaN()), -0.001, 1.001, float32(math.Inf(1))} {
		if err := dev.SetAxis(AxisX, value); !errors.Is(err, pkg.ErrValueOutOfRange) {
			t.Errorf("SetAxis(X, %v) error = %v, want ErrValueOutOfRange", value, err)
		}
	}
}

func TestDevice_SetAxisRaw(t *testing.T) {
	slot := sim.SlotConfig{Axes: map[uint32]sim.AxisConfig{
		0x30: {Min: -1000, Max: 1000},
	}}
	ifc := openSim(t, sim.New(sim.Config{Slots: []sim.SlotConfig{slot}}))
	dev := acquireFirst(t, ifc)

	if err := dev.SetAxisRaw(AxisX, -1000); err != nil {
		t.Fatalf("SetAxisRaw(X, -1000) failed: %v", err)
	}
	if got := dev.AxisRaw(AxisX); got != -1000 {
		t.Errorf("AxisRaw(X) = %d, want -1000", got)
	}

	// Out of range is rejected, never clamped.
	for _, raw := range []int32{-1001, 1001} {
		if err := dev.SetAxisRaw(AxisX, raw); !errors.Is(err, pkg.ErrValueOutOfRange) {
			t.Errorf("SetAxisRaw(X, %d) error = %v, want ErrValueOutOfRange", raw, err)
		}
	}
	if got := dev.AxisRaw(AxisX); got != -1000 {
		t.Errorf("AxisRaw(X) after rejected set = %d, want -1000", got)
	}

	if err := dev.SetAxisRaw(AxisY, 0); !errors.Is(err, pkg.ErrAxisMinQuery) {
		t.Errorf("SetAxisRaw on absent axis error = %v, want ErrAxisMinQuery", err)
	}
}

func TestDevice_AxisCorrupt(t *testing.T) {
	slot := sim.SlotConfig{Axes: map[uint32]sim.AxisConfig{
		0x30: {Min: 0, Max: 100},
	}}
	ifc := openSim(t, sim.New(sim.Config{Slots: []sim.SlotConfig{slot}}))
	dev := acquireFirst(t, ifc)

	// Corrupt the report behind the accessors' backs.
	*reportAxis(&dev.state, AxisX) = 101

	if _, err := dev.Axis(AxisX); !errors.Is(err, pkg.ErrAxisValueCorrupt) {
		t.Errorf("Axis(X) error = %v, want ErrAxisValueCorrupt", err)
	}
}

func TestDevice_AxisZeroSpan(t *testing.T) {
	slot := sim.SlotConfig{Axes: map[uint32]sim.AxisConfig{
		0x30: {Min: 7, Max: 7},
	}}
	ifc := openSim(t, sim.New(sim.Config{Slots: []sim.SlotConfig{slot}}))
	dev := acquireFirst(t, ifc)

	if err := dev.SetAxis(AxisX, 0.3); err != nil {
		t.Fatalf("SetAxis failed: %v", err)
	}
	if got := dev.AxisRaw(AxisX); got != 7 {
		t.Errorf("AxisRaw(X) = %d, want 7", got)
	}
	got, err := dev.Axis(AxisX)
	if err != nil {
		t.Fatalf("Axis(X) failed: %v", err)
	}
	if got != 0 {
		t.Errorf("Axis(X) on degenerate range = %v, want 0", got)
	}
}

func TestDevice_Buttons(t *testing.T) {
	ifc := openSim(t, sim.NewBasic(1))
	dev := acquireFirst(t, ifc)

	// One button in each of the four words.
	for _, index := range []int{0, 31, 32, 95, 127} {
		if err := dev.SetButton(index, true); err != nil {
			t.Fatalf("SetButton(%d) failed: %v", index, err)
		}
	}
	for _, index := range []int{0, 31, 32, 95, 127} {
		if pressed, ok := dev.Button(index); !ok || !pressed {
			t.Errorf("Button(%d) = %v, %v, want true", index, pressed, ok)
		}
	}
	// Neighbors must be untouched.
	for _, index := range []int{1, 30, 33, 94, 96, 126} {
		if pressed, ok := dev.Button(index); !ok || pressed {
			t.Errorf("Button(%d) = %v, %v, want false", index, pressed, ok)
		}
	}

	if err := dev.SetButton(31, false); err != nil {
		t.Fatalf("SetButton(31, false) failed: %v", err)
	}
	if pressed, _ := dev.Button(31); pressed {
		t.Error("Button(31) still pressed after clear")
	}
	if pressed, _ := dev.Button(32); !pressed {
		t.Error("clearing button 31 disturbed button 32")
	}

	for _, index := range []int{-1, 128} {
		if err := dev.SetButton(index, true); !errors.Is(err, pkg.ErrNoSuchButton) {
			t.Errorf("SetButton(%d) error = %v, want ErrNoSuchButton", index, err)
		}
		if _, ok := dev.Button(index); ok {
			t.Errorf("Button(%d) ok = true, want false", index)
		}
	}
}

func TestDevice_Hats(t *testing.T) {
	ifc := openSim(t, sim.NewBasic(1))
	dev := acquireFirst(t, ifc)

	if err := dev.SetHat(2, 27000); err != nil {
		t.Fatalf("SetHat(2) failed: %v", err)
	}
	if got, ok := dev.Hat(2); !ok || got != 27000 {
		t.Errorf("Hat(2) = %d, %v, want 27000", got, ok)
	}
	if got, ok := dev.Hat(0); !ok || got != 0 {
		t.Errorf("Hat(0) = %d, %v, want 0", got, ok)
	}

	if err := dev.SetHat(hal.NumHats, 0); !errors.Is(err, pkg.ErrNoSuchHat) {
		t.Errorf("SetHat(%d) error = %v, want ErrNoSuchHat", hal.NumHats, err)
	}
	if _, ok := dev.Hat(-1); ok {
		t.Error("Hat(-1) ok = true, want false")
	}
}

func TestDevice_Apply(t *testing.T) {
	drv := sim.NewBasic(1)
	ifc := openSim(t, drv)
	dev := acquireFirst(t, ifc)

	if err := dev.SetAxisRaw(AxisX, 12345); err != nil {
		t.Fatalf("SetAxisRaw failed: %v", err)
	}
	if err := dev.SetButton(5, true); err != nil {
		t.Fatalf("SetButton failed: %v", err)
	}

	// Local mutation is invisible until Apply.
	if got := drv.UpdateCount(1); got != 0 {
		t.Fatalf("UpdateCount before Apply = %d, want 0", got)
	}

	if err := dev.Apply(); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if got := drv.UpdateCount(1); got != 1 {
		t.Errorf("UpdateCount after Apply = %d, want 1", got)
	}

	report, ok := drv.LastReport(1)
	if !ok {
		t.Fatal("LastReport(1) ok = false, want true")
	}
	if report.Device != 1 {
		t.Errorf("report Device = %d, want 1", report.Device)
	}
	if report.AxisX != 12345 {
		t.Errorf("report AxisX = %d, want 12345", report.AxisX)
	}
	if report.Buttons[0] != 1<<5 {
		t.Errorf("report Buttons[0] = %#x, want %#x", report.Buttons[0], uint32(1)<<5)
	}

	// Each Apply is exactly one push, no batching or deduplication.
	if err := dev.Apply(); err != nil {
		t.Fatalf("second Apply failed: %v", err)
	}
	if got := drv.UpdateCount(1); got != 2 {
		t.Errorf("UpdateCount after second Apply = %d, want 2", got)
	}
}

func TestDevice_ApplyRejected(t *testing.T) {
	slot := sim.DefaultSlot()
	slot.RejectUpdates = true
	ifc := openSim(t, sim.New(sim.Config{Slots: []sim.SlotConfig{slot}}))
	dev := acquireFirst(t, ifc)

	if err := dev.Apply(); !errors.Is(err, pkg.ErrUpdateRejected) {
		t.Errorf("Apply() error = %v, want ErrUpdateRejected", err)
	}
}

func TestDevice_CloseOnce(t *testing.T) {
	drv := sim.NewBasic(1)
	ifc := openSim(t, drv)
	dev, err := firstSlot(t, ifc).Acquire()
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}

	if err := dev.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if drv.Acquired(1) {
		t.Error("driver still reports slot acquired after Close")
	}
	if err := dev.Close(); !errors.Is(err, pkg.ErrDeviceClosed) {
		t.Errorf("second Close error = %v, want ErrDeviceClosed", err)
	}

	if err := dev.SetButton(0, true); !errors.Is(err, pkg.ErrDeviceClosed) {
		t.Errorf("SetButton after Close error = %v, want ErrDeviceClosed", err)
	}
	if err := dev.Apply(); !errors.Is(err, pkg.ErrDeviceClosed) {
		t.Errorf("Apply after Close error = %v, want ErrDeviceClosed", err)
	}
}

func TestDevice_SurvivesInterfaceClose(t *testing.T) {
	drv := sim.NewBasic(1)
	ifc := openSim(t, drv)
	slot := firstSlot(t, ifc)
	dev, err := slot.Acquire()
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}

	if err := ifc.Close(); err != nil {
		t.Fatalf("interface Close failed: %v", err)
	}

	// The slot handle borrowed the interface guard and died with it; the
	// device holds its own clone and keeps working.
	if _, err := slot.NumButtons(); !errors.Is(err, pkg.ErrGuardReleased) {
		t.Errorf("slot NumButtons() error = %v, want ErrGuardReleased", err)
	}
	if err := dev.SetButton(3, true); err != nil {
		t.Errorf("device SetButton after interface Close failed: %v", err)
	}
	if err := dev.Apply(); err != nil {
		t.Errorf("device Apply after interface Close failed: %v", err)
	}
	if got, err := dev.NumButtons(); err != nil || got != 32 {
		t.Errorf("device NumButtons() = %d, %v, want 32", got, err)
	}

	// The lineage stays live until the device closes.
	if _, err := Open(drv); !errors.Is(err, pkg.ErrInterfaceBusy) {
		t.Errorf("Open while device live error = %v, want ErrInterfaceBusy", err)
	}
	if err := dev.Close(); err != nil {
		t.Fatalf("device Close failed: %v", err)
	}

	ifc2, err := Open(drv)
	if err != nil {
		t.Fatalf("Open after device Close failed: %v", err)
	}
	if err := ifc2.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

func TestDevice_ReportTag(t *testing.T) {
	drv := sim.NewBasic(3)
	ifc := openSim(t, drv)

	id, _ := NewSlotID(3)
	s, ok, err := ifc.Slot(id)
	if err != nil || !ok {
		t.Fatalf("Slot(3) = ok %v, err %v", ok, err)
	}
	dev, err := s.Acquire()
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	defer dev.Close()

	if err := dev.Apply(); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	report, ok := drv.LastReport(3)
	if !ok {
		t.Fatal("LastReport(3) ok = false, want true")
	}
	if report.Device != 3 {
		t.Errorf("report Device = %d, want 3", report.Device)
	}
}
