package mathx

import "golang.org/x/exp/constraints"

// MapRound maps x in [inMin,inMax] to [outMin,outMax], rounding to the
// nearest output step (halves away from zero). Input outside the range is
// clamped first, so the result never leaves the output range.
// A degenerate input range returns outMin.
func MapRound[T constraints.Signed](x, inMin, inMax, outMin, outMax T) T {
	if inMax == inMin {
		return outMin
	}
	x = Clamp(x, inMin, inMax)
	span := inMax - inMin
	num := (x - inMin) * (outMax - outMin)
	half := Abs(span) / 2
	if (num < 0) != (span < 0) {
		num -= half
	} else {
		num += half
	}
	return outMin + num/span
}
