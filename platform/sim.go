package platform

import (
	"sync"

	"controls-go/controls"
)

// Ensure the simulator satisfies the platform contract at compile time.
var _ controls.Platform = (*Sim)(nil)

// Sim is an in-memory board for host builds, demos and tests. Pin levels
// and analogue values are set by the caller; the clock only moves when
// told to (or by DelayMicroseconds).
//
// A simulated multiplexer can be attached to a signal pin: reads of that
// pin then return whatever is connected to the channel currently encoded
// on the select lines.
type Sim struct {
	mu sync.Mutex

	now uint32
	us  uint32 // sub-millisecond remainder from DelayMicroseconds

	modes   map[int]controls.PinMode
	digital map[int]bool
	analog  map[int]int
	written map[int]int // last AnalogWrite value per pin
	muxes   map[int]*simMux
}

type simMux struct {
	sel     [4]int
	digital [16]bool
	analog  [16]int
}

// NewSim returns an empty board at t=0.
func NewSim() *Sim {
	return &Sim{
		modes:   map[int]controls.PinMode{},
		digital: map[int]bool{},
		analog:  map[int]int{},
		written: map[int]int{},
		muxes:   map[int]*simMux{},
	}
}

// ---- Test/driver side ----

// SetLevel sets the level an input pin reads back.
func (s *Sim) SetLevel(pin int, level bool) {
	s.mu.Lock()
	s.digital[pin] = level
	s.mu.Unlock()
}

// SetAnalog sets the value an analogue pin reads back.
func (s *Sim) SetAnalog(pin, v int) {
	s.mu.Lock()
	s.analog[pin] = v
	s.mu.Unlock()
}

// Advance moves the clock forward by ms.
func (s *Sim) Advance(ms uint32) {
	s.mu.Lock()
	s.now += ms
	s.mu.Unlock()
}

// SetMillis sets the clock.
func (s *Sim) SetMillis(ms uint32) {
	s.mu.Lock()
	s.now = ms
	s.mu.Unlock()
}

// AttachMux wires a 16-channel multiplexer with the given select lines to
// signal.
func (s *Sim) AttachMux(signal int, s0, s1, s2, s3 int) {
	s.mu.Lock()
	s.muxes[signal] = &simMux{sel: [4]int{s0, s1, s2, s3}}
	s.mu.Unlock()
}

// SetMuxLevel sets the level seen on channel ch of the mux at signal.
func (s *Sim) SetMuxLevel(signal int, ch uint8, level bool) {
	s.mu.Lock()
	if m := s.muxes[signal]; m != nil {
		m.digital[ch&0x0F] = level
	}
	s.mu.Unlock()
}

// SetMuxAnalog sets the value seen on channel ch of the mux at signal.
func (s *Sim) SetMuxAnalog(signal int, ch uint8, v int) {
	s.mu.Lock()
	if m := s.muxes[signal]; m != nil {
		m.analog[ch&0x0F] = v
	}
	s.mu.Unlock()
}

// Mode returns the configured mode of pin.
func (s *Sim) Mode(pin int) (controls.PinMode, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.modes[pin]
	return m, ok
}

// Level returns the current digital level of pin (including outputs).
func (s *Sim) Level(pin int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level(pin)
}

// Written returns the last AnalogWrite value for pin.
func (s *Sim) Written(pin int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.written[pin]
}

// ---- controls.Platform ----

func (s *Sim) ConfigurePin(pin int, mode controls.PinMode) {
	s.mu.Lock()
	s.modes[pin] = mode
	s.mu.Unlock()
}

func (s *Sim) DigitalRead(pin int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m := s.muxes[pin]; m != nil {
		return m.digital[s.channel(m)]
	}
	return s.level(pin)
}

func (s *Sim) DigitalWrite(pin int, level bool) {
	s.mu.Lock()
	s.digital[pin] = level
	s.mu.Unlock()
}

func (s *Sim) AnalogRead(pin int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m := s.muxes[pin]; m != nil {
		return m.analog[s.channel(m)]
	}
	return s.analog[pin]
}

func (s *Sim) AnalogWrite(pin int, v int) {
	s.mu.Lock()
	s.written[pin] = v
	s.mu.Unlock()
}

func (s *Sim) Millis() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

func (s *Sim) DelayMicroseconds(us uint32) {
	s.mu.Lock()
	s.us += us
	s.now += s.us / 1000
	s.us %= 1000
	s.mu.Unlock()
}

// caller holds lock
func (s *Sim) level(pin int) bool {
	if v, ok := s.digital[pin]; ok {
		return v
	}
	// An unset pulled-up input floats high.
	return s.modes[pin] == controls.PinInputPullup
}

// caller holds lock
func (s *Sim) channel(m *simMux) uint8 {
	var ch uint8
	for i, p := range m.sel {
		if s.digital[p] {
			ch |= 1 << i
		}
	}
	return ch
}
