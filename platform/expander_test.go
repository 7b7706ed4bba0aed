package platform

import (
	"errors"
	"testing"
	"time"

	"controls-go/controls"
	"controls-go/drivers/ads1115"
	"controls-go/errcode"
)

// fakeADS answers every conversion with a fixed per-channel value.
type fakeADS struct {
	config uint16
	values [4]uint16
	fail   bool
	busy   bool // never report conversion done
}

func (f *fakeADS) Tx(_ uint16, w, r []byte) error {
	if f.fail {
		return errors.New("nack")
	}
	if len(w) == 3 {
		f.config = uint16(w[1])<<8 | uint16(w[2])
		return nil
	}
	if len(w) == 1 && len(r) == 2 {
		v := f.config | 0x8000
		if f.busy {
			v = f.config &^ 0x8000
		}
		if w[0] == 0x00 {
			v = f.values[(f.config>>12)&0x3]
		}
		r[0], r[1] = byte(v>>8), byte(v)
	}
	return nil
}

func TestExpanderRoutesBlock(t *testing.T) {
	sim := NewSim()
	sim.SetAnalog(26, 300)
	bus := &fakeADS{values: [4]uint16{0, 32767, 16384, 0}}
	e := NewExpander(sim, ads1115.New(bus), 100)

	if got := e.AnalogRead(26); got != 300 {
		t.Fatalf("pass-through read %d", got)
	}
	if got := e.AnalogRead(101); got != 1023 {
		t.Fatalf("AIN1=%d want 1023", got)
	}
	if got := e.AnalogRead(102); got != 512 {
		t.Fatalf("AIN2=%d want 512", got)
	}

	e.ConfigurePin(100, controls.PinInput)
	if _, ok := sim.Mode(100); ok {
		t.Fatal("expander pin configured on the board")
	}
	e.ConfigurePin(5, controls.PinOutput)
	if m, _ := sim.Mode(5); m != controls.PinOutput {
		t.Fatal("board pin not configured")
	}
}

func TestExpanderHoldsLastValueOnError(t *testing.T) {
	bus := &fakeADS{values: [4]uint16{0, 0, 0, 8000}}
	e := NewExpander(NewSim(), ads1115.New(bus), 40)
	if got := e.AnalogRead(43); got != 250 {
		t.Fatalf("AIN3=%d want 250", got)
	}
	bus.fail = true
	if got := e.AnalogRead(43); got != 250 {
		t.Fatalf("after error got %d want last good 250", got)
	}
	if e.Errors() != 1 {
		t.Fatalf("Errors=%d", e.Errors())
	}
	if got := errcode.Of(e.Err()); got != errcode.BusError {
		t.Fatalf("Err code=%s", got)
	}

	bus.fail = false
	e.AnalogRead(43)
	if e.Err() != nil {
		t.Fatalf("Err after good read: %v", e.Err())
	}
}

func TestExpanderReportsTimeout(t *testing.T) {
	bus := &fakeADS{values: [4]uint16{16000}, busy: true}
	adc := ads1115.New(bus)
	adc.Configure(ads1115.Config{Timeout: time.Millisecond, PollInterval: 100 * time.Microsecond})
	e := NewExpander(NewSim(), adc, 100)

	if got := e.AnalogRead(100); got != 0 {
		t.Fatalf("no good sample yet, got %d", got)
	}
	err := e.Err()
	if errcode.Of(err) != errcode.Timeout || !errors.Is(err, ads1115.ErrTimeout) {
		t.Fatalf("Err=%v", err)
	}
}

func TestPotentiometerOnExpander(t *testing.T) {
	bus := &fakeADS{values: [4]uint16{16368, 0, 0, 0}}
	sim := NewSim()
	e := NewExpander(sim, ads1115.New(bus), 100)
	p := controls.NewPotentiometer(e, 100, controls.PotentiometerConfig{Resolution: 127, ReadCount: 1})
	p.Begin()
	if p.RawValue() != 511 || p.Value() != 63 {
		t.Fatalf("raw=%d value=%d", p.RawValue(), p.Value())
	}
}
