package panel

import (
	"controls-go/controls"
	"controls-go/errcode"
	"controls-go/services/panel/internal/util"
	"controls-go/types"
)

const (
	defaultAlpha   = 0.6
	defaultDivisor = 4
)

func init() {
	RegisterBuilder(types.KindButton, buttonBuilder{})
	RegisterBuilder(types.KindPotentiometer, potBuilder{})
	RegisterBuilder(types.KindJoystick, joystickBuilder{})
}

// mux resolves a multiplexer reference; nil means a direct pin. Channels
// above 15 alias modulo 16 in the multiplexer itself.
func (in BuildInput) mux(ref types.MuxRef) (*controls.Multiplexer, error) {
	if ref.Mux == "" {
		return nil, nil
	}
	m, ok := in.Muxes[ref.Mux]
	if !ok {
		return nil, errcode.Wrap(errcode.UnknownMux, in.ID, ref.Mux, nil)
	}
	return m, nil
}

func badParams(id, msg string, err error) error {
	return errcode.Wrap(errcode.InvalidParams, id, msg, err)
}

// ---- button ----

type buttonBuilder struct{}

func (buttonBuilder) Build(in BuildInput) (controls.Input, error) {
	var p types.ButtonParams
	if err := util.DecodeJSON(in.Params, &p); err != nil {
		return nil, badParams(in.ID, "button params", err)
	}
	if p.Pin < 0 {
		return nil, badParams(in.ID, "pin", nil)
	}
	m, err := in.mux(p.MuxRef)
	if err != nil {
		return nil, err
	}

	def := controls.DefaultButtonConfig()
	b := controls.NewButton(in.HAL, p.Pin, controls.ButtonConfig{
		DebounceMs: util.Or(p.DebounceMs, def.DebounceMs),
		Pullup:     util.Or(p.Pullup, def.Pullup),
		Invert:     util.Or(p.Invert, def.Invert),
	})
	if m != nil {
		b.SetMultiplexer(m, p.Channel)
	}
	return b, nil
}

// ---- potentiometer ----

type potBuilder struct{}

func (potBuilder) Build(in BuildInput) (controls.Input, error) {
	var p types.PotentiometerParams
	if err := util.DecodeJSON(in.Params, &p); err != nil {
		return nil, badParams(in.ID, "potentiometer params", err)
	}
	if p.Pin < 0 {
		return nil, badParams(in.ID, "pin", nil)
	}
	m, err := in.mux(p.MuxRef)
	if err != nil {
		return nil, err
	}

	cfg := controls.DefaultPotentiometerConfig()
	cfg.Resolution = p.Resolution
	if p.ReadCount > 0 {
		cfg.ReadCount = p.ReadCount
	}
	cfg.ReadDelayUs = util.Or(p.ReadDelayUs, cfg.ReadDelayUs)
	if p.Max > 0 {
		cfg.Max = p.Max
	}
	switch p.Smoothing {
	case "", "ema":
		a := p.Alpha
		if a == 0 {
			a = defaultAlpha
		}
		cfg.Smoothing = controls.EMA(a)
	case "divisor":
		n := p.Divisor
		if n == 0 {
			n = defaultDivisor
		}
		cfg.Smoothing = controls.Divisor(n)
	case "none":
		cfg.Smoothing = nil
	default:
		return nil, badParams(in.ID, "smoothing: "+p.Smoothing, nil)
	}

	pot := controls.NewPotentiometer(in.HAL, p.Pin, cfg)
	if m != nil {
		pot.SetMultiplexer(m, p.Channel)
	}
	return pot, nil
}

// ---- joystick ----

type joystickBuilder struct{}

func (joystickBuilder) Build(in BuildInput) (controls.Input, error) {
	var p types.JoystickParams
	if err := util.DecodeJSON(in.Params, &p); err != nil {
		return nil, badParams(in.ID, "joystick params", err)
	}
	th := util.Or(p.Threshold, controls.DefaultThreshold)

	if p.Mux == "" {
		if p.PinX < 0 || p.PinY < 0 {
			return nil, badParams(in.ID, "pin_x/pin_y", nil)
		}
		return controls.NewJoystick(in.HAL, p.PinX, p.PinY, th), nil
	}

	m, err := in.mux(types.MuxRef{Mux: p.Mux})
	if err != nil {
		return nil, err
	}
	if p.Signal < 0 {
		return nil, badParams(in.ID, "signal", nil)
	}
	return controls.NewMultiplexedJoystick(in.HAL, p.Signal, m, p.ChannelX, p.ChannelY, th), nil
}
