package timex

import "time"

// MillisSince returns whole milliseconds elapsed since start, truncated to
// 32 bits so it wraps like an MCU millis() counter.
func MillisSince(start time.Time) uint32 { return uint32(time.Since(start).Milliseconds()) }

// Elapsed returns now-since on a wrapping 32-bit millisecond counter.
// Correct across a single wrap.
func Elapsed(now, since uint32) uint32 { return now - since }

// PeriodFromHz returns a nanosecond period for a requested frequency.
// freqHz==0 is coerced to 1 to avoid division by zero.
func PeriodFromHz(freqHz uint32) uint64 {
	if freqHz == 0 {
		freqHz = 1
	}
	return uint64(1_000_000_000 / uint64(freqHz))
}
