package controls

// Multiplexer drives the four select lines (and optional active-low enable
// line) of a 16-way analogue/digital multiplexer such as the CD74HC4067.
type Multiplexer struct {
	hal     Platform
	pins    [4]int
	enable  int
	channel uint8
}

// NewMultiplexer configures the select lines (and enable, unless it is
// NoPin) as outputs, selects channel 0 and enables the chip.
func NewMultiplexer(hal Platform, s0, s1, s2, s3, enable int) *Multiplexer {
	m := &Multiplexer{
		hal:    hal,
		pins:   [4]int{s0, s1, s2, s3},
		enable: enable,
	}
	for _, p := range m.pins {
		hal.ConfigurePin(p, PinOutput)
	}
	m.SetChannel(0)
	if m.HasEnable() {
		hal.ConfigurePin(m.enable, PinOutput)
		m.SetEnabled(true)
	}
	return m
}

// SetChannel writes bit i of ch to select line i. Values outside 0..15
// alias modulo 16.
func (m *Multiplexer) SetChannel(ch int) {
	m.channel = uint8(ch) & 0x0F
	for i, p := range m.pins {
		m.hal.DigitalWrite(p, m.channel&(1<<i) != 0)
	}
}

// Channel returns the currently selected channel.
func (m *Multiplexer) Channel() uint8 { return m.channel }

// HasEnable reports whether an enable line was configured.
func (m *Multiplexer) HasEnable() bool { return m.enable != NoPin }

// SetEnabled drives the enable line (LOW = enabled) and reports whether
// one exists. Without an enable line it does nothing and returns false.
func (m *Multiplexer) SetEnabled(on bool) bool {
	if !m.HasEnable() {
		return false
	}
	m.hal.DigitalWrite(m.enable, !on)
	return true
}
