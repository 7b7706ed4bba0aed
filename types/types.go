package types

// ---- Control kinds ----

type Kind string

const (
	KindButton        Kind = "button"
	KindPotentiometer Kind = "potentiometer"
	KindJoystick      Kind = "joystick"
)

// ---- Panel configuration ----

type PanelConfig struct {
	Multiplexers []MuxSpec     `json:"multiplexers,omitempty"`
	Controls     []ControlSpec `json:"controls"`
}

// MuxSpec describes a 16-channel multiplexer shared by controls.
type MuxSpec struct {
	ID     string `json:"id"`
	Select [4]int `json:"select"`           // S0..S3
	Enable *int   `json:"enable,omitempty"` // nil => always enabled
}

type ControlSpec struct {
	ID     string `json:"id"`     // logical control id
	Type   Kind   `json:"type"`   // "button" | "potentiometer" | "joystick"
	Params any    `json:"params"` // type-specific params (JSON-like)
}

// MuxRef routes a control through a configured multiplexer channel.
type MuxRef struct {
	Mux     string `json:"mux,omitempty"`
	Channel uint8  `json:"channel,omitempty"`
}

type ButtonParams struct {
	Pin        int     `json:"pin"`
	DebounceMs *uint32 `json:"debounce_ms,omitempty"` // default 25
	Pullup     *bool   `json:"pullup,omitempty"`      // default true
	Invert     *bool   `json:"invert,omitempty"`      // default true
	MuxRef
}

type PotentiometerParams struct {
	Pin         int     `json:"pin"`
	Resolution  int     `json:"resolution,omitempty"`
	Smoothing   string  `json:"smoothing,omitempty"` // "ema" (default), "divisor", "none"
	Alpha       float32 `json:"alpha,omitempty"`     // ema weight, default 0.6
	Divisor     uint8   `json:"divisor,omitempty"`   // divisor form, default 4
	ReadCount   uint8   `json:"read_count,omitempty"`
	ReadDelayUs *uint32 `json:"read_delay_us,omitempty"` // default 1
	Max         int     `json:"max,omitempty"`           // ADC ceiling, default 1023
	MuxRef
}

type JoystickParams struct {
	PinX      int    `json:"pin_x"`
	PinY      int    `json:"pin_y"`
	Signal    int    `json:"signal,omitempty"` // shared pin when Mux is set
	Mux       string `json:"mux,omitempty"`
	ChannelX  uint8  `json:"channel_x,omitempty"`
	ChannelY  uint8  `json:"channel_y,omitempty"`
	Threshold *int   `json:"threshold,omitempty"` // default 150
}

// ---- Values ----

type ButtonValue struct {
	Pressed bool `json:"pressed"`
}

type PotentiometerValue struct {
	Value int `json:"value"` // quantized
	Raw   int `json:"raw"`   // smoothed, unscaled
}

type JoystickValue struct {
	X          int    `json:"x"`
	Y          int    `json:"y"`
	DX         int    `json:"dx"`
	DY         int    `json:"dy"`
	Directions string `json:"directions"` // e.g. "left+up", "none"
}

// Change is one control whose Read reported a change during a poll.
type Change struct {
	ID      string `json:"id"`
	Kind    Kind   `json:"kind"`
	TSms    uint32 `json:"ts_ms"`
	Payload any    `json:"payload"` // one of the *Value types above
}
