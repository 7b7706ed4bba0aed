// Package controls conditions raw pin samples into debounced, smoothed and
// change-tracked values for buttons, potentiometers and joysticks, with
// optional routing through a 16-channel multiplexer.
//
// Every control is polled: call Begin once, then Read once per loop
// iteration and query the accessors in between. Controls sharing a
// Multiplexer must be read from the same goroutine.
package controls

import "controls-go/x/timex"

// Input is the polling contract shared by all controls.
type Input interface {
	Begin()
	Read() bool
	Changed() bool
	LastChange() uint32
}

// Control is the mux-aware pin access and change bookkeeping embedded by
// every control type.
type Control struct {
	hal Platform

	mux        *Multiplexer // not owned
	muxChannel uint8

	changed    bool
	time       uint32 // timestamp of the most recent poll (ms)
	lastChange uint32 // timestamp of the last accepted change (ms)
}

// SetMultiplexer routes every pin access of this control through mux on
// the given channel. A nil mux turns routing off.
func (c *Control) SetMultiplexer(mux *Multiplexer, channel uint8) {
	c.mux = mux
	c.muxChannel = channel
}

// Multiplexer returns the bound multiplexer and channel, if any.
func (c *Control) Multiplexer() (*Multiplexer, uint8) { return c.mux, c.muxChannel }

// Changed reports whether the most recent Read saw a change.
func (c *Control) Changed() bool { return c.changed }

// LastChange returns the millisecond timestamp of the last change.
func (c *Control) LastChange() uint32 { return c.lastChange }

// since returns the time between the most recent poll and the last change.
func (c *Control) since() uint32 { return timex.Elapsed(c.time, c.lastChange) }

func (c *Control) applyChannel() {
	if c.mux != nil {
		c.mux.SetChannel(int(c.muxChannel))
	}
}

func (c *Control) digitalRead(pin int) bool {
	c.applyChannel()
	return c.hal.DigitalRead(pin)
}

// digitalWrite and analogWrite complete the mux-aware pin surface for
// controls that drive a pin (LED rings, motor faders). None of the
// built-in controls write.
func (c *Control) digitalWrite(pin int, level bool) {
	c.applyChannel()
	c.hal.DigitalWrite(pin, level)
}

func (c *Control) analogRead(pin int) int {
	c.applyChannel()
	return c.hal.AnalogRead(pin)
}

func (c *Control) analogWrite(pin int, value int) {
	c.applyChannel()
	c.hal.AnalogWrite(pin, value)
}
