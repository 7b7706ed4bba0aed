package controls

import "controls-go/x/mathx"

// Smoothing steps a smoothed value towards a new raw sample.
type Smoothing interface {
	Step(current, raw int) int
}

// Divisor is the integer recursive filter v += (raw-v)/n.
// Zero (or one) disables smoothing.
type Divisor uint8

func (d Divisor) Step(v, raw int) int {
	if d <= 1 {
		return raw
	}
	return approach(v, v+(raw-v)/int(d), raw)
}

// EMA is an exponential moving average with weight alpha on the new sample:
// v = alpha*raw + (1-alpha)*v. Alpha <= 0 disables smoothing, alpha >= 1
// tracks raw exactly.
type EMA float32

func (a EMA) Step(v, raw int) int {
	if a <= 0 || a >= 1 {
		return raw
	}
	f := float32(a)*float32(raw) + (1-float32(a))*float32(v)
	next := int(f + 0.5)
	if f < 0 {
		next = int(f - 0.5)
	}
	return approach(v, next, raw)
}

// approach keeps a filter from stalling short of raw once the arithmetic
// step rounds to zero, so constant input converges exactly.
func approach(v, next, raw int) int {
	if next == v && v != raw {
		return v + mathx.Sign(raw-v)
	}
	return next
}
