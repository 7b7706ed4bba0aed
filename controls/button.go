package controls

// DefaultDebounceMs is the debounce window used by DefaultButtonConfig.
const DefaultDebounceMs = 25

// ButtonConfig holds the wiring and timing of a momentary button.
type ButtonConfig struct {
	DebounceMs uint32 // minimum time between accepted state changes
	Pullup     bool   // enable the internal pull-up resistor
	Invert     bool   // true if a LOW level means pressed
}

// DefaultButtonConfig suits a switch wired to ground with the internal
// pull-up enabled.
func DefaultButtonConfig() ButtonConfig {
	return ButtonConfig{DebounceMs: DefaultDebounceMs, Pullup: true, Invert: true}
}

// Button is a debounced digital input.
type Button struct {
	Control

	pin int
	cfg ButtonConfig

	state     bool // true = pressed
	lastState bool
}

// NewButton returns a button on pin. Call Begin before the first Read.
func NewButton(hal Platform, pin int, cfg ButtonConfig) *Button {
	return &Button{Control: Control{hal: hal}, pin: pin, cfg: cfg}
}

func (b *Button) SetPin(pin int) { b.pin = pin }
func (b *Button) SetDebounceTime(ms uint32) { b.cfg.DebounceMs = ms }
func (b *Button) SetPullup(on bool) { b.cfg.Pullup = on }
func (b *Button) SetInverted(on bool) { b.cfg.Invert = on }
func (b *Button) Pin() int { return b.pin }
func (b *Button) Config() ButtonConfig { return b.cfg }

// Begin configures the pin and takes the initial state from one sample.
func (b *Button) Begin() {
	mode := PinInput
	if b.cfg.Pullup {
		mode = PinInputPullup
	}
	b.hal.ConfigurePin(b.pin, mode)
	b.state = b.sample()
	b.lastState = b.state
	b.time = b.hal.Millis()
	b.lastChange = b.time
	b.changed = false
}

// Read samples the pin once and reports whether the debounced state
// changed. Samples taken within the debounce window of the last accepted
// change are dropped.
func (b *Button) Read() bool {
	ms := b.hal.Millis()
	level := b.sample()
	b.time = ms
	if b.since() < b.cfg.DebounceMs {
		b.changed = false
		return false
	}
	b.lastState = b.state
	b.state = level
	b.changed = b.state != b.lastState
	if b.changed {
		b.lastChange = ms
	}
	return b.changed
}

func (b *Button) sample() bool {
	level := b.digitalRead(b.pin)
	if b.cfg.Invert {
		return !level
	}
	return level
}

// State returns the debounced state, true for pressed.
func (b *Button) State() bool { return b.state }

// IsPressed reports the state seen by the last Read.
func (b *Button) IsPressed() bool { return b.state }

// IsReleased reports the state seen by the last Read.
func (b *Button) IsReleased() bool { return !b.state }

// WasPressed reports a released-to-pressed change on the last Read.
func (b *Button) WasPressed() bool { return b.state && b.changed }

// WasReleased reports a pressed-to-released change on the last Read.
func (b *Button) WasReleased() bool { return !b.state && b.changed }

// PressedFor reports whether the button has been pressed for at least ms
// as of the last Read.
func (b *Button) PressedFor(ms uint32) bool { return b.state && b.since() >= ms }

// ReleasedFor reports whether the button has been released for at least ms
// as of the last Read.
func (b *Button) ReleasedFor(ms uint32) bool { return !b.state && b.since() >= ms }
