package okto8

import "math"

// Timer is one of the two countdown timers. The value is kept as a float so
// the host can decay it on its own cadence (historically 60 Hz) with
// fractional amounts; instruction execution never decrements it.
type Timer struct {
	value float64
}

// Set loads the timer from a register value.
func (t *Timer) Set(v byte) {
	t.value = float64(v)
}

// Decay subtracts amount from the timer, clamping at zero. Negative amounts
// are ignored.
func (t *Timer) Decay(amount float64) {
	if amount < 0 {
		return
	}

	t.value -= amount
	if t.value < 0 {
		t.value = 0
	}
}

// Ceil returns the timer value rounded up, as read by LD Vx, DT.
func (t *Timer) Ceil() byte {
	return byte(math.Ceil(t.value))
}

// IsActive reports whether the timer has not yet reached zero.
func (t *Timer) IsActive() bool {
	return t.value > 0
}

// Reset clears the timer.
func (t *Timer) Reset() {
	t.value = 0
}
