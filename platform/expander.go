package platform

import (
	"errors"

	"controls-go/controls"
	"controls-go/drivers/ads1115"
	"controls-go/errcode"
)

// Expander adds four analogue inputs from an ADS1115 to a board. Pins
// Base..Base+3 map to AIN0..AIN3; every other call passes through.
//
// A failed conversion returns the last good value for that channel, so
// a flaky bus looks like a steady signal rather than a jump to zero.
type Expander struct {
	controls.Platform

	adc  *ads1115.Device
	base int
	last [4]int
	errs uint32
	err  error // most recent failure, nil after a good read
}

// Ensure the expander satisfies the platform contract at compile time.
var _ controls.Platform = (*Expander)(nil)

// NewExpander routes pins base..base+3 to adc. Pick a base above the
// board's real pin numbers.
func NewExpander(board controls.Platform, adc *ads1115.Device, base int) *Expander {
	return &Expander{Platform: board, adc: adc, base: base}
}

func (e *Expander) channel(pin int) (uint8, bool) {
	ch := pin - e.base
	if ch < 0 || ch > 3 {
		return 0, false
	}
	return uint8(ch), true
}

// ConfigurePin is a no-op for expander pins.
func (e *Expander) ConfigurePin(pin int, mode controls.PinMode) {
	if _, ok := e.channel(pin); ok {
		return
	}
	e.Platform.ConfigurePin(pin, mode)
}

func (e *Expander) AnalogRead(pin int) int {
	ch, ok := e.channel(pin)
	if !ok {
		return e.Platform.AnalogRead(pin)
	}
	v, err := e.adc.Read10(ch)
	if err != nil {
		e.errs++
		e.err = err
		return e.last[ch]
	}
	e.err = nil
	e.last[ch] = v
	return v
}

// Errors returns the number of failed conversions so far.
func (e *Expander) Errors() uint32 { return e.errs }

// Err reports the most recent conversion failure as errcode.Timeout or
// errcode.BusError, or nil if the last read succeeded.
func (e *Expander) Err() error {
	if e.err == nil {
		return nil
	}
	c := errcode.BusError
	if errors.Is(e.err, ads1115.ErrTimeout) {
		c = errcode.Timeout
	}
	return errcode.Wrap(c, "expander", "ads1115 read", e.err)
}
