package controls

import "strings"

// DefaultThreshold is the dead band around the centre, in ADC counts.
const DefaultThreshold = 150

// Direction is a set of joystick direction flags.
type Direction uint8

const (
	Left Direction = 1 << iota
	Right
	Up
	Down
)

// Has reports whether all of d's flags are in set.
func (set Direction) Has(d Direction) bool { return d != 0 && set&d == d }

func (set Direction) String() string {
	if set == 0 {
		return "none"
	}
	var parts []string
	for _, d := range []struct {
		f    Direction
		name string
	}{{Left, "left"}, {Right, "right"}, {Up, "up"}, {Down, "down"}} {
		if set&d.f != 0 {
			parts = append(parts, d.name)
		}
	}
	return strings.Join(parts, "+")
}

// Joystick is a two-axis analogue stick with a calibrated centre and a
// threshold band per axis. It does not handle the stick's push button;
// wire that as a Button.
type Joystick struct {
	Control

	pinX, pinY int

	// Multiplexed variant: both axes share signalPin through the mux.
	multiplexed        bool
	signalPin          int
	channelX, channelY uint8

	threshold int

	x, y             int
	centreX, centreY int
	flags, lastFlags Direction
}

// NewJoystick returns a joystick reading X and Y from two analogue pins.
func NewJoystick(hal Platform, pinX, pinY, threshold int) *Joystick {
	return &Joystick{Control: Control{hal: hal}, pinX: pinX, pinY: pinY, threshold: threshold}
}

// NewMultiplexedJoystick returns a joystick whose axes sit on two channels
// of mux, both read through the shared signalPin.
func NewMultiplexedJoystick(hal Platform, signalPin int, mux *Multiplexer, channelX, channelY uint8, threshold int) *Joystick {
	j := &Joystick{
		Control:     Control{hal: hal},
		pinX:        signalPin,
		pinY:        signalPin,
		multiplexed: true,
		signalPin:   signalPin,
		channelX:    channelX,
		channelY:    channelY,
		threshold:   threshold,
	}
	j.SetMultiplexer(mux, channelX)
	return j
}

func (j *Joystick) SetThreshold(t int) { j.threshold = t }
func (j *Joystick) Threshold() int { return j.threshold }

// Begin samples both axes and stores them as the centre. The stick must be
// at rest. The centre is never re-calibrated afterwards.
func (j *Joystick) Begin() {
	j.hal.ConfigurePin(j.pinX, PinInput)
	if j.pinY != j.pinX {
		j.hal.ConfigurePin(j.pinY, PinInput)
	}
	j.lastFlags = 0
	j.flags = 0
	j.time = j.hal.Millis()
	j.lastChange = j.time
	j.changed = false
	j.sample()
	j.centreX, j.centreY = j.x, j.y
}

// Read samples both axes, recomputes the direction flags and reports
// whether they differ from the previous poll.
func (j *Joystick) Read() bool {
	j.time = j.hal.Millis()
	j.lastFlags = j.flags
	j.sample()

	var f Direction
	switch {
	case j.x > j.centreX+j.threshold:
		f |= Right
	case j.x < j.centreX-j.threshold:
		f |= Left
	}
	switch {
	case j.y < j.centreY-j.threshold:
		f |= Up
	case j.y > j.centreY+j.threshold:
		f |= Down
	}
	j.flags = f

	j.changed = j.flags != j.lastFlags
	if j.changed {
		j.lastChange = j.time
	}
	return j.changed
}

// sample reads X then Y. The multiplexed variant switches the mux to each
// axis channel in turn before reading the shared signal pin, then leaves
// the bound channel at X so Multiplexer() reports the constructor's value.
func (j *Joystick) sample() {
	if !j.multiplexed {
		j.x = j.analogRead(j.pinX)
		j.y = j.analogRead(j.pinY)
		return
	}
	j.muxChannel = j.channelX
	j.x = j.analogRead(j.signalPin)
	j.muxChannel = j.channelY
	j.y = j.analogRead(j.signalPin)
	j.muxChannel = j.channelX
}

// Channels returns the X and Y mux channels of a multiplexed joystick.
func (j *Joystick) Channels() (x, y uint8) { return j.channelX, j.channelY }

func (j *Joystick) X() int { return j.x }
func (j *Joystick) Y() int { return j.y }
func (j *Joystick) Centre() (x, y int) { return j.centreX, j.centreY }
func (j *Joystick) DeltaX() int { return j.x - j.centreX }
func (j *Joystick) DeltaY() int { return j.y - j.centreY }
func (j *Joystick) Directions() Direction { return j.flags }
func (j *Joystick) Moving(d Direction) bool { return j.flags.Has(d) }
func (j *Joystick) Moved(d Direction) bool { return j.changed && j.Moving(d) }

// HeldFor reports whether the stick has been moving in d for more than ms
// as of the last Read. Any change of direction restarts the count.
func (j *Joystick) HeldFor(d Direction, ms uint32) bool {
	return j.Moving(d) && j.since() > ms
}

func (j *Joystick) MovingLeft() bool { return j.Moving(Left) }
func (j *Joystick) MovingRight() bool { return j.Moving(Right) }
func (j *Joystick) MovingUp() bool { return j.Moving(Up) }
func (j *Joystick) MovingDown() bool { return j.Moving(Down) }

func (j *Joystick) MovedLeft() bool { return j.Moved(Left) }
func (j *Joystick) MovedRight() bool { return j.Moved(Right) }
func (j *Joystick) MovedUp() bool { return j.Moved(Up) }
func (j *Joystick) MovedDown() bool { return j.Moved(Down) }

func (j *Joystick) HeldLeftFor(ms uint32) bool { return j.HeldFor(Left, ms) }
func (j *Joystick) HeldRightFor(ms uint32) bool { return j.HeldFor(Right, ms) }
func (j *Joystick) HeldUpFor(ms uint32) bool { return j.HeldFor(Up, ms) }
func (j *Joystick) HeldDownFor(ms uint32) bool { return j.HeldFor(Down, ms) }
