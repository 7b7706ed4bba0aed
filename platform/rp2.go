//go:build rp2040 || rp2350

package platform

import (
	"machine"
	"time"

	"controls-go/controls"
	"controls-go/x/mathx"
	"controls-go/x/timex"
)

// Ensure the board satisfies the platform contract at compile time.
var _ controls.Platform = (*RP2)(nil)

// pwmFreqHz is the carrier used by AnalogWrite.
const pwmFreqHz = 1000

// RP2 is the Raspberry Pi Pico board. Pin numbers are GP numbers.
// ADC-capable pins (GP26..GP29) are configured for analogue input on
// first AnalogRead; readings are scaled from 16 to 10 bits.
type RP2 struct {
	start time.Time
	adcs  map[int]machine.ADC
	pwms  map[int]rp2PWM
}

// Local interface to avoid depending on an unexported concrete type in machine.
type pwmCtrl interface {
	Configure(cfg machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

type rp2PWM struct {
	ctrl pwmCtrl
	ch   uint8
}

// NewRP2 initialises the ADC block and starts the millisecond clock.
func NewRP2() *RP2 {
	machine.InitADC()
	return &RP2{
		start: time.Now(),
		adcs:  map[int]machine.ADC{},
		pwms:  map[int]rp2PWM{},
	}
}

func (b *RP2) ConfigurePin(pin int, mode controls.PinMode) {
	var m machine.PinMode
	switch mode {
	case controls.PinOutput:
		m = machine.PinOutput
	case controls.PinInputPullup:
		m = machine.PinInputPullup
	default:
		m = machine.PinInput
	}
	machine.Pin(pin).Configure(machine.PinConfig{Mode: m})
}

func (b *RP2) DigitalRead(pin int) bool { return machine.Pin(pin).Get() }

func (b *RP2) DigitalWrite(pin int, level bool) { machine.Pin(pin).Set(level) }

func (b *RP2) AnalogRead(pin int) int {
	if pin < 26 || pin > 29 {
		return 0
	}
	adc, ok := b.adcs[pin]
	if !ok {
		adc = machine.ADC{Pin: machine.Pin(pin)}
		adc.Configure(machine.ADCConfig{})
		b.adcs[pin] = adc
	}
	return int(adc.Get() >> 6)
}

// AnalogWrite drives a 1 kHz PWM duty cycle, value in [0, 255].
func (b *RP2) AnalogWrite(pin int, value int) {
	p, ok := b.pwms[pin]
	if !ok {
		ctrl := pwmGroupBySlice(uint8(pin/2) % 8)
		if err := ctrl.Configure(machine.PWMConfig{Period: timex.PeriodFromHz(pwmFreqHz)}); err != nil {
			return
		}
		ch, err := ctrl.Channel(machine.Pin(pin))
		if err != nil {
			return
		}
		p = rp2PWM{ctrl: ctrl, ch: ch}
		b.pwms[pin] = p
	}
	value = mathx.Clamp(value, 0, 255)
	p.ctrl.Set(p.ch, p.ctrl.Top()*uint32(value)/255)
}

func (b *RP2) Millis() uint32 { return timex.MillisSince(b.start) }

func (b *RP2) DelayMicroseconds(us uint32) {
	time.Sleep(time.Duration(us) * time.Microsecond)
}

// Select controller handle for a given slice number (0..7).
func pwmGroupBySlice(slice uint8) pwmCtrl {
	switch slice {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	default:
		return machine.PWM7
	}
}
