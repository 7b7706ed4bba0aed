package controls

import (
	"reflect"
	"testing"
)

func rawPot(hal *fakeHAL, resolution int) *Potentiometer {
	return NewPotentiometer(hal, 26, PotentiometerConfig{Resolution: resolution, ReadCount: 1})
}

func TestPotentiometerQuantizationHidesSubStepJitter(t *testing.T) {
	hal := newFakeHAL().at(0)
	hal.analog[26] = 500
	p := rawPot(hal, 128)
	p.Begin()
	if p.Value() != 63 || p.RawValue() != 500 {
		t.Fatalf("value=%d raw=%d", p.Value(), p.RawValue())
	}

	hal.analog[26] = 504
	if readAt(hal, p, 10) {
		t.Fatal("500 -> 504 reported a change at resolution 128")
	}
	if p.RawValue() != 504 || p.Value() != 63 {
		t.Fatalf("value=%d raw=%d", p.Value(), p.RawValue())
	}

	hal.analog[26] = 520
	if !readAt(hal, p, 20) {
		t.Fatal("504 -> 520 should change bucket")
	}
	if p.Value() != 65 || p.LastChange() != 20 {
		t.Fatalf("value=%d lastChange=%d", p.Value(), p.LastChange())
	}
}

func TestPotentiometerUnscaled(t *testing.T) {
	hal := newFakeHAL().at(0)
	hal.analog[26] = 100
	p := rawPot(hal, 0)
	p.Begin()
	hal.analog[26] = 101
	if !readAt(hal, p, 5) || p.Value() != 101 {
		t.Fatalf("unscaled change not reported, value=%d", p.Value())
	}
	p.SetResolution(-4)
	if p.Value() != 101 {
		t.Fatalf("negative resolution should disable scaling, got %d", p.Value())
	}
}

func TestPotentiometerFullScale(t *testing.T) {
	hal := newFakeHAL().at(0)
	hal.analog[26] = 1023
	p := rawPot(hal, 127)
	p.Begin()
	if p.Value() != 127 {
		t.Fatalf("full scale=%d", p.Value())
	}
	p.SetResolution(100)
	p.cfg.Max = 4095
	if p.Value() != 25 {
		t.Fatalf("12-bit ceiling value=%d want 25", p.Value())
	}
}

func TestPotentiometerMultiSampleKeepsLast(t *testing.T) {
	hal := newFakeHAL().at(0)
	p := NewPotentiometer(hal, 26, PotentiometerConfig{ReadCount: 3, ReadDelayUs: 7})
	p.Begin()
	hal.resetOps()
	hal.analogSeq[26] = []int{10, 20, 900}

	readAt(hal, p, 1)
	if p.RawValue() != 900 {
		t.Fatalf("raw=%d want last sample 900", p.RawValue())
	}
	if !reflect.DeepEqual(hal.delays, []uint32{7, 7, 7}) {
		t.Fatalf("delays=%v", hal.delays)
	}
	if n := len(hal.ops); n != 3 {
		t.Fatalf("ops=%v want 3 reads", hal.ops)
	}
}

func TestPotentiometerZeroReadCountStillSamples(t *testing.T) {
	hal := newFakeHAL().at(0)
	p := NewPotentiometer(hal, 26, PotentiometerConfig{})
	p.Begin()
	hal.analog[26] = 42
	readAt(hal, p, 1)
	if p.RawValue() != 42 {
		t.Fatalf("raw=%d", p.RawValue())
	}
	if len(hal.delays) != 0 {
		t.Fatalf("unexpected delays %v", hal.delays)
	}
}

func TestPotentiometerSmoothingConverges(t *testing.T) {
	hal := newFakeHAL().at(0)
	p := NewPotentiometer(hal, 26, PotentiometerConfig{Smoothing: Divisor(4), ReadCount: 1})
	p.Begin()
	hal.analog[26] = 800
	for i := uint32(1); i <= 100; i++ {
		readAt(hal, p, i)
	}
	if p.RawValue() != 800 {
		t.Fatalf("raw=%d want 800", p.RawValue())
	}
	if readAt(hal, p, 101) {
		t.Fatal("steady input reported a change")
	}

	p.SetSmoothing(EMA(1))
	hal.analog[26] = 20
	readAt(hal, p, 102)
	if p.RawValue() != 20 {
		t.Fatalf("alpha=1 should track exactly, got %d", p.RawValue())
	}
}

func TestPotentiometerResetChanged(t *testing.T) {
	hal := newFakeHAL().at(0)
	p := rawPot(hal, 0)
	p.Begin()
	hal.analog[26] = 300
	readAt(hal, p, 1)
	if !p.Changed() {
		t.Fatal("expected change")
	}
	p.ResetChanged()
	if p.Changed() {
		t.Fatal("ResetChanged did not clear")
	}
}

func TestPotentiometerThroughMultiplexer(t *testing.T) {
	hal := newFakeHAL().at(0)
	mux := NewMultiplexer(hal, 1, 2, 3, 4, NoPin)
	hal.mux = mux
	hal.byChannel[26] = map[uint8]int{4: 700, 5: 100}
	p := rawPot(hal, 0)
	p.SetMultiplexer(mux, 4)
	p.Begin()
	if p.RawValue() != 700 {
		t.Fatalf("raw=%d want 700 from channel 4", p.RawValue())
	}
	mux.SetChannel(5)
	readAt(hal, p, 1)
	if p.RawValue() != 700 || mux.Channel() != 4 {
		t.Fatalf("raw=%d channel=%d", p.RawValue(), mux.Channel())
	}
}
