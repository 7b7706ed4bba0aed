package controls

import "fmt"

// ---- Test doubles ----

// fakeHAL is an in-memory board. Every pin access is appended to ops so
// tests can check ordering (e.g. mux select writes before a read).
type fakeHAL struct {
	now     uint32
	digital map[int]bool
	analog  map[int]int
	// byChannel, when set for a pin, makes AnalogRead depend on the
	// channel currently driven by mux (keyed by mux channel).
	byChannel map[int]map[uint8]int
	mux       *Multiplexer
	// analogSeq, when non-empty for a pin, is consumed one value per read.
	analogSeq map[int][]int
	modes     map[int]PinMode
	delays    []uint32
	ops       []string
}

func newFakeHAL() *fakeHAL {
	return &fakeHAL{
		digital:   map[int]bool{},
		analog:    map[int]int{},
		byChannel: map[int]map[uint8]int{},
		analogSeq: map[int][]int{},
		modes:     map[int]PinMode{},
	}
}

func (f *fakeHAL) ConfigurePin(pin int, mode PinMode) {
	f.modes[pin] = mode
	f.ops = append(f.ops, fmt.Sprintf("mode %d %s", pin, mode))
}

func (f *fakeHAL) DigitalRead(pin int) bool {
	f.ops = append(f.ops, fmt.Sprintf("dread %d", pin))
	return f.digital[pin]
}

func (f *fakeHAL) DigitalWrite(pin int, level bool) {
	f.digital[pin] = level
	f.ops = append(f.ops, fmt.Sprintf("dwrite %d %t", pin, level))
}

func (f *fakeHAL) AnalogRead(pin int) int {
	f.ops = append(f.ops, fmt.Sprintf("aread %d", pin))
	if seq := f.analogSeq[pin]; len(seq) > 0 {
		f.analogSeq[pin] = seq[1:]
		return seq[0]
	}
	if m, ok := f.byChannel[pin]; ok && f.mux != nil {
		return m[f.mux.Channel()]
	}
	return f.analog[pin]
}

func (f *fakeHAL) AnalogWrite(pin int, value int) {
	f.analog[pin] = value
	f.ops = append(f.ops, fmt.Sprintf("awrite %d %d", pin, value))
}

func (f *fakeHAL) Millis() uint32 { return f.now }

func (f *fakeHAL) DelayMicroseconds(us uint32) { f.delays = append(f.delays, us) }

func (f *fakeHAL) at(ms uint32) *fakeHAL { f.now = ms; return f }

func (f *fakeHAL) resetOps() { f.ops = nil }

// readAt advances the clock and polls in.
func readAt(hal *fakeHAL, in Input, ms uint32) bool {
	hal.at(ms)
	return in.Read()
}
