package controls

// PinMode selects how a pin is configured.
type PinMode uint8

const (
	PinInput PinMode = iota
	PinInputPullup
	PinOutput
)

func (m PinMode) String() string {
	switch m {
	case PinInputPullup:
		return "input_pullup"
	case PinOutput:
		return "output"
	default:
		return "input"
	}
}

// NoPin marks an optional pin as absent.
const NoPin = -1

// AnalogMax is the ADC ceiling of the reference hardware (10-bit).
const AnalogMax = 1023

// Platform is the pin and clock capability a board provides.
//
// Implementations must not block except in DelayMicroseconds. Nothing here
// reports errors: a miswired or unreachable pin just reads back a stable or
// erratic value.
type Platform interface {
	ConfigurePin(pin int, mode PinMode)
	DigitalRead(pin int) bool
	DigitalWrite(pin int, level bool)
	AnalogRead(pin int) int // [0, AnalogMax] unless the board says otherwise
	AnalogWrite(pin int, value int)
	Millis() uint32 // monotonic, wraps at 2^32
	DelayMicroseconds(us uint32)
}
