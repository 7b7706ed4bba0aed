package controls

import "controls-go/x/mathx"

// PotentiometerConfig holds sampling, smoothing and scaling settings.
type PotentiometerConfig struct {
	Resolution  int       // >0 rescales Value to [0, Resolution]
	Smoothing   Smoothing // nil disables smoothing
	ReadCount   uint8     // samples per Read; only the last is kept (0 acts as 1)
	ReadDelayUs uint32    // settle delay before each sample
	Max         int       // ADC ceiling; 0 means AnalogMax
}

// DefaultPotentiometerConfig returns an unscaled, lightly smoothed config.
func DefaultPotentiometerConfig() PotentiometerConfig {
	return PotentiometerConfig{
		Smoothing:   EMA(0.6),
		ReadCount:   1,
		ReadDelayUs: 1,
		Max:         AnalogMax,
	}
}

// Potentiometer is a smoothed, optionally quantized analogue input.
// Change detection compares quantized values, so jitter below one
// resolution step never registers.
type Potentiometer struct {
	Control

	pin int
	cfg PotentiometerConfig

	value     int // smoothed raw
	lastValue int
}

// NewPotentiometer returns a potentiometer on pin. Call Begin before the
// first Read.
func NewPotentiometer(hal Platform, pin int, cfg PotentiometerConfig) *Potentiometer {
	return &Potentiometer{Control: Control{hal: hal}, pin: pin, cfg: cfg}
}

func (p *Potentiometer) SetResolution(r int) { p.cfg.Resolution = r }
func (p *Potentiometer) SetSmoothing(s Smoothing) { p.cfg.Smoothing = s }
func (p *Potentiometer) SetReadCount(n uint8) { p.cfg.ReadCount = n }
func (p *Potentiometer) SetReadDelay(us uint32) { p.cfg.ReadDelayUs = us }
func (p *Potentiometer) Pin() int { return p.pin }
func (p *Potentiometer) Config() PotentiometerConfig { return p.cfg }

// Begin takes one unsmoothed sample as the starting value.
func (p *Potentiometer) Begin() {
	p.hal.ConfigurePin(p.pin, PinInput)
	p.value = p.analogRead(p.pin)
	p.lastValue = p.value
	p.time = p.hal.Millis()
	p.lastChange = p.time
	p.changed = false
}

// Read samples the pin, smooths the result and reports whether the
// quantized value changed.
func (p *Potentiometer) Read() bool {
	p.time = p.hal.Millis()
	p.lastValue = p.value

	raw := 0
	for i := 0; i < int(mathx.Max(p.cfg.ReadCount, 1)); i++ {
		if p.cfg.ReadDelayUs > 0 {
			p.hal.DelayMicroseconds(p.cfg.ReadDelayUs)
		}
		raw = p.analogRead(p.pin)
	}
	if p.cfg.Smoothing != nil {
		p.value = p.cfg.Smoothing.Step(p.value, raw)
	} else {
		p.value = raw
	}

	p.changed = p.quantize(p.value) != p.quantize(p.lastValue)
	if p.changed {
		p.lastChange = p.time
	}
	return p.changed
}

// ResetChanged clears the changed flag until the next Read.
func (p *Potentiometer) ResetChanged() { p.changed = false }

// Value returns the smoothed value, rescaled when a resolution is set.
func (p *Potentiometer) Value() int { return p.quantize(p.value) }

// RawValue returns the smoothed value without rescaling.
func (p *Potentiometer) RawValue() int { return p.value }

func (p *Potentiometer) quantize(v int) int {
	if p.cfg.Resolution <= 0 {
		return v
	}
	top := p.cfg.Max
	if top <= 0 {
		top = AnalogMax
	}
	return mathx.MapRound(v, 0, top, 0, p.cfg.Resolution)
}
